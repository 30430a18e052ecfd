package http

import (
	"strconv"
	"strings"

	"dashboard-srv/internal/dashboard"
	"dashboard-srv/internal/model"
)

// =====================================================
// Request DTOs (JSON API)
// =====================================================

type selectScreenReq struct {
	Screen string `json:"screen" binding:"required"`
}

func (r selectScreenReq) toInput() dashboard.SelectScreenInput {
	return dashboard.SelectScreenInput{Screen: model.Screen(r.Screen)}
}

type filtersReq struct {
	Platform    string `json:"platform" form:"platform"`
	ContentType string `json:"content_type" form:"content_type"`
	Region      string `json:"region" form:"region"`
	DateStart   string `json:"date_start" form:"date_start"`
	DateEnd     string `json:"date_end" form:"date_end"`
}

func (r filtersReq) toInput() dashboard.UpdateFiltersInput {
	return dashboard.UpdateFiltersInput{Filters: model.Filters{
		Platform:    r.Platform,
		ContentType: r.ContentType,
		Region:      r.Region,
		DateStart:   r.DateStart,
		DateEnd:     r.DateEnd,
	}}
}

type recommendationReq struct {
	Platform      string `json:"platform" binding:"required"`
	ContentType   string `json:"content_type" binding:"required"`
	Region        string `json:"region" binding:"required"`
	ExpectedViews *int64 `json:"expected_views" binding:"omitempty,min=0"`
}

func (r recommendationReq) toInput() dashboard.UpdateRecommendationFormInput {
	return dashboard.UpdateRecommendationFormInput{
		Platform:      r.Platform,
		ContentType:   r.ContentType,
		Region:        r.Region,
		ExpectedViews: r.ExpectedViews,
	}
}

type platformsReq struct {
	PlatformA string `json:"platform_a" form:"platform_a" binding:"required"`
	PlatformB string `json:"platform_b" form:"platform_b" binding:"required"`
}

func (r platformsReq) toInput() dashboard.SetPlatformsInput {
	return dashboard.SetPlatformsInput{PlatformA: r.PlatformA, PlatformB: r.PlatformB}
}

type toggleRegionReq struct {
	Region string `json:"region" form:"region" binding:"required"`
}

func (r toggleRegionReq) toInput() dashboard.ToggleRegionInput {
	return dashboard.ToggleRegionInput{Region: r.Region}
}

// =====================================================
// Request DTOs (HTML forms)
// =====================================================

type recommendationForm struct {
	Platform      string `form:"platform"`
	ContentType   string `form:"content_type"`
	Region        string `form:"region"`
	ExpectedViews string `form:"expected_views"`
}

func (f recommendationForm) toInput() (dashboard.UpdateRecommendationFormInput, error) {
	views, err := parseExpectedViews(f.ExpectedViews)
	if err != nil {
		return dashboard.UpdateRecommendationFormInput{}, err
	}
	return dashboard.UpdateRecommendationFormInput{
		Platform:      f.Platform,
		ContentType:   f.ContentType,
		Region:        f.Region,
		ExpectedViews: views,
	}, nil
}

// parseExpectedViews maps an empty field to nil and anything else to a non-negative integer.
func parseExpectedViews(s string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return nil, dashboard.ErrInvalidExpectedViews
	}
	return &v, nil
}

// =====================================================
// Response DTOs
// =====================================================

type stateResp struct {
	model.DashboardState
	Loading bool `json:"loading"`
}

func newStateResp(st model.DashboardState) stateResp {
	return stateResp{DashboardState: st, Loading: st.Loading()}
}

type ticketResp struct {
	Operation model.Operation `json:"operation"`
	Token     uint64          `json:"token"`
	Settled   bool            `json:"settled"`
	State     *stateResp      `json:"state,omitempty"`
}

func newTicketResp(t dashboard.Ticket, st *model.DashboardState) ticketResp {
	resp := ticketResp{Operation: t.Operation, Token: t.Token}
	if st != nil {
		s := newStateResp(*st)
		resp.Settled = true
		resp.State = &s
	}
	return resp
}
