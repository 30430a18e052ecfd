package http

import (
	"errors"
	"net/http"

	"dashboard-srv/internal/dashboard"
	"dashboard-srv/internal/model"
	pkgErrors "dashboard-srv/pkg/errors"
	"dashboard-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// Index renders the active screen: the whole page, or the screen fragment for htmx.
func (h *handler) Index(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	st, err := h.uc.GetState(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.Index: usecase GetState failed: %v", err)
		h.renderError(c, err)
		return
	}

	h.render(c, st)
}

// SubmitScreen handles the navigation buttons.
func (h *handler) SubmitScreen(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	st, err := h.uc.SelectScreen(ctx, sc, dashboard.SelectScreenInput{Screen: model.Screen(c.PostForm("screen"))})
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.SubmitScreen: usecase SelectScreen failed: %v", err)
		h.renderError(c, err)
		return
	}

	h.respond(c, st)
}

// SubmitExplore stores the filters and triggers the explore fetch.
func (h *handler) SubmitExplore(c *gin.Context) {
	ctx := c.Request.Context()

	var req filtersReq
	sc, err := h.processFormRequest(c, &req)
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.SubmitExplore: processFormRequest failed: %v", err)
		h.renderBadRequest(c, err)
		return
	}

	if _, err := h.uc.UpdateFilters(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.SubmitExplore: usecase UpdateFilters failed: %v", err)
		h.renderError(c, err)
		return
	}

	h.triggerAndRespond(c, sc, model.OperationExplore)
}

// SubmitRecommend stores the recommendation form and triggers the recommend fetch.
func (h *handler) SubmitRecommend(c *gin.Context) {
	ctx := c.Request.Context()

	var form recommendationForm
	sc, err := h.processFormRequest(c, &form)
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.SubmitRecommend: processFormRequest failed: %v", err)
		h.renderBadRequest(c, err)
		return
	}

	input, err := form.toInput()
	if err != nil {
		h.l.Warnf(ctx, "dashboard.delivery.http.SubmitRecommend: invalid expected_views %q", form.ExpectedViews)
		h.renderError(c, err)
		return
	}

	if _, err := h.uc.UpdateRecommendationForm(ctx, sc, input); err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.SubmitRecommend: usecase UpdateRecommendationForm failed: %v", err)
		h.renderError(c, err)
		return
	}

	h.triggerAndRespond(c, sc, model.OperationRecommend)
}

// SubmitComparePlatforms stores the platform pair and triggers the comparison.
func (h *handler) SubmitComparePlatforms(c *gin.Context) {
	ctx := c.Request.Context()

	var req platformsReq
	sc, err := h.processFormRequest(c, &req)
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.SubmitComparePlatforms: processFormRequest failed: %v", err)
		h.renderBadRequest(c, err)
		return
	}

	if _, err := h.uc.SetPlatforms(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.SubmitComparePlatforms: usecase SetPlatforms failed: %v", err)
		h.renderError(c, err)
		return
	}

	h.triggerAndRespond(c, sc, model.OperationComparePlatforms)
}

// SubmitToggleRegion toggles one region chip. Removing the last region is
// ignored and the unchanged screen is shown again.
func (h *handler) SubmitToggleRegion(c *gin.Context) {
	ctx := c.Request.Context()

	var req toggleRegionReq
	sc, err := h.processFormRequest(c, &req)
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.SubmitToggleRegion: processFormRequest failed: %v", err)
		h.renderBadRequest(c, err)
		return
	}

	st, err := h.uc.ToggleRegion(ctx, sc, req.toInput())
	if errors.Is(err, dashboard.ErrLastRegion) {
		h.l.Debugf(ctx, "dashboard.delivery.http.SubmitToggleRegion: kept last region %s", req.Region)
		st, err = h.uc.GetState(ctx, sc)
	}
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.SubmitToggleRegion: usecase ToggleRegion failed: %v", err)
		h.renderError(c, err)
		return
	}

	h.respond(c, st)
}

// SubmitCompareRegions triggers the region comparison for the current selection.
func (h *handler) SubmitCompareRegions(c *gin.Context) {
	sc := scope.GetScopeFromContext(c.Request.Context())
	h.triggerAndRespond(c, sc, model.OperationCompareRegions)
}

func (h *handler) triggerAndRespond(c *gin.Context, sc model.Scope, op model.Operation) {
	ctx := c.Request.Context()

	if _, err := h.uc.Trigger(ctx, sc, op); err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.triggerAndRespond: usecase Trigger %s failed: %v", op, err)
		h.renderError(c, err)
		return
	}

	st, err := h.uc.GetState(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.triggerAndRespond: usecase GetState failed: %v", err)
		h.renderError(c, err)
		return
	}

	h.respond(c, st)
}

// respond swaps the screen fragment for htmx and redirects plain form posts.
func (h *handler) respond(c *gin.Context, st model.DashboardState) {
	if !isHTMX(c) {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	h.render(c, st)
}

func (h *handler) render(c *gin.Context, st model.DashboardState) {
	name := templatePage
	if isHTMX(c) {
		name = templateScreen
	}
	c.Render(http.StatusOK, render.HTML{
		Template: h.tmpl,
		Name:     name,
		Data:     h.newView(c, st),
	})
}

func (h *handler) newView(c *gin.Context, st model.DashboardState) pageView {
	var presets []model.FilterPreset
	if h.features.Presets && st.Screen == model.ScreenExplore {
		ctx := c.Request.Context()
		list, err := h.presets.List(ctx, scope.GetScopeFromContext(ctx))
		if err != nil {
			h.l.Warnf(ctx, "dashboard.delivery.http.newView: presets List failed: %v", err)
		}
		presets = list
	}
	return newPageView(st, h.features, presets)
}

// renderError writes a usecase error as plain text for the browser.
func (h *handler) renderError(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(h.mapError(err), &httpErr) {
		c.String(httpErr.StatusCode, httpErr.Message)
		return
	}
	c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// renderBadRequest writes a form binding error as plain text for the browser.
func (h *handler) renderBadRequest(c *gin.Context, err error) {
	c.String(http.StatusBadRequest, err.Error())
}
