package http

import (
	"dashboard-srv/internal/model"
	"dashboard-srv/internal/preset"
	"dashboard-srv/pkg/paginator"
	"dashboard-srv/pkg/response"
)

type filtersReq struct {
	Platform    string `json:"platform"`
	ContentType string `json:"content_type"`
	Region      string `json:"region"`
	DateStart   string `json:"date_start"`
	DateEnd     string `json:"date_end"`
}

type createReq struct {
	Name    string      `json:"name" form:"name" binding:"required"`
	Filters *filtersReq `json:"filters"`
}

func (r createReq) toInput() preset.CreateInput {
	input := preset.CreateInput{Name: r.Name}
	if r.Filters != nil {
		input.Filters = &model.Filters{
			Platform:    r.Filters.Platform,
			ContentType: r.Filters.ContentType,
			Region:      r.Filters.Region,
			DateStart:   r.Filters.DateStart,
			DateEnd:     r.Filters.DateEnd,
		}
	}
	return input
}

type presetResp struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Filters   model.Filters     `json:"filters"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newPresetResp(p model.FilterPreset) presetResp {
	return presetResp{
		ID:        p.ID,
		Name:      p.Name,
		Filters:   p.Filters,
		CreatedAt: response.DateTime(p.CreatedAt),
		UpdatedAt: response.DateTime(p.UpdatedAt),
	}
}

type listReq struct {
	paginator.PaginateQuery
}

func (r listReq) toInput() preset.ListInput {
	return preset.ListInput{PaginateQuery: r.PaginateQuery}
}

type listResp struct {
	Presets   []presetResp                `json:"presets"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newListResp(o preset.ListOutput) listResp {
	out := listResp{
		Presets:   make([]presetResp, 0, len(o.Presets)),
		Paginator: o.Paginator.ToResponse(),
	}
	for _, p := range o.Presets {
		out.Presets = append(out.Presets, newPresetResp(p))
	}
	return out
}

type applyResp struct {
	Filters   model.Filters     `json:"filters"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newApplyResp(st model.DashboardState) applyResp {
	return applyResp{Filters: st.Filters, UpdatedAt: response.DateTime(st.UpdatedAt)}
}
