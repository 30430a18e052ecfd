package http

import (
	"dashboard-srv/pkg/response"
	"dashboard-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// GetState - Current dashboard state of the session
// @Router /api/v1/state [get]
func (h *handler) GetState(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	st, err := h.uc.GetState(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.GetState: usecase GetState failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newStateResp(st))
}

// GetView - Rendered view model of the active screen, chart specs included
// @Router /api/v1/view [get]
func (h *handler) GetView(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	st, err := h.uc.GetState(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.GetView: usecase GetState failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newView(c, st))
}

// SelectScreen - Switch the active screen
// @Router /api/v1/screen [put]
func (h *handler) SelectScreen(c *gin.Context) {
	ctx := c.Request.Context()

	var req selectScreenReq
	sc, err := h.processJSONRequest(c, &req)
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.SelectScreen: processJSONRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	st, err := h.uc.SelectScreen(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.SelectScreen: usecase SelectScreen failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newStateResp(st))
}

// UpdateFilters - Replace the explore filters
// @Router /api/v1/forms/filters [put]
func (h *handler) UpdateFilters(c *gin.Context) {
	ctx := c.Request.Context()

	var req filtersReq
	sc, err := h.processJSONRequest(c, &req)
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.UpdateFilters: processJSONRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	st, err := h.uc.UpdateFilters(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.UpdateFilters: usecase UpdateFilters failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newStateResp(st))
}

// UpdateRecommendationForm - Replace the recommendation form
// @Router /api/v1/forms/recommendation [put]
func (h *handler) UpdateRecommendationForm(c *gin.Context) {
	ctx := c.Request.Context()

	var req recommendationReq
	sc, err := h.processJSONRequest(c, &req)
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.UpdateRecommendationForm: processJSONRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	st, err := h.uc.UpdateRecommendationForm(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.UpdateRecommendationForm: usecase UpdateRecommendationForm failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newStateResp(st))
}

// SetPlatforms - Choose the two platforms to compare
// @Router /api/v1/forms/platforms [put]
func (h *handler) SetPlatforms(c *gin.Context) {
	ctx := c.Request.Context()

	var req platformsReq
	sc, err := h.processJSONRequest(c, &req)
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.SetPlatforms: processJSONRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	st, err := h.uc.SetPlatforms(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.SetPlatforms: usecase SetPlatforms failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newStateResp(st))
}

// ToggleRegion - Add or remove one region from the comparison
// @Router /api/v1/forms/regions/toggle [post]
func (h *handler) ToggleRegion(c *gin.Context) {
	ctx := c.Request.Context()

	var req toggleRegionReq
	sc, err := h.processJSONRequest(c, &req)
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.ToggleRegion: processJSONRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	st, err := h.uc.ToggleRegion(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.ToggleRegion: usecase ToggleRegion failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newStateResp(st))
}

// Trigger - Start one backend fetch; with ?wait=true block until it settles
// @Router /api/v1/actions/{operation} [post]
func (h *handler) Trigger(c *gin.Context) {
	ctx := c.Request.Context()
	op, wait, sc := h.processTriggerRequest(c)

	ticket, err := h.uc.Trigger(ctx, sc, op)
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.Trigger: usecase Trigger failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	if !wait {
		response.Accepted(c, newTicketResp(ticket, nil))
		return
	}

	if err := ticket.Wait(ctx); err != nil {
		h.l.Warnf(ctx, "dashboard.delivery.http.Trigger: wait for %s #%d aborted: %v", op, ticket.Token, err)
		response.Error(c, errWaitCancelled, h.discord)
		return
	}

	st, err := h.uc.GetState(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.Trigger: usecase GetState failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newTicketResp(ticket, &st))
}
