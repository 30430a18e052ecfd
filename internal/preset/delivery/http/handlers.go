package http

import (
	"dashboard-srv/internal/preset"
	"dashboard-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// List - Saved presets, newest first
// @Param page query int false "Page (1-indexed)"
// @Param limit query int false "Items per page"
// @Router /api/v1/presets [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "preset.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	out, err := h.uc.ListPage(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "preset.delivery.http.List: usecase ListPage failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newListResp(out))
}

// Create - Save a preset. Omitted filters snapshot the session's current filters.
// @Router /api/v1/presets [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRequest(c, false)
	if err != nil {
		h.l.Errorf(ctx, "preset.delivery.http.Create: processCreateRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	p, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "preset.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newPresetResp(p))
}

// Apply - Copy a preset's filters into the session
// @Router /api/v1/presets/{id}/apply [post]
func (h *handler) Apply(c *gin.Context) {
	ctx := c.Request.Context()
	id, sc := h.processIDRequest(c)

	st, err := h.uc.Apply(ctx, sc, preset.ApplyInput{ID: id})
	if err != nil {
		h.l.Errorf(ctx, "preset.delivery.http.Apply: usecase Apply failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newApplyResp(st))
}

// Delete - Remove a preset
// @Router /api/v1/presets/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id, sc := h.processIDRequest(c)

	if err := h.uc.Delete(ctx, sc, preset.DeleteInput{ID: id}); err != nil {
		h.l.Errorf(ctx, "preset.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}
