package http

import (
	"errors"
	"net/http"

	"dashboard-srv/internal/preset"
	pkgErrors "dashboard-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// SubmitCreate saves the explore form's current filters under the posted name.
func (h *handler) SubmitCreate(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRequest(c, true)
	if err != nil {
		h.l.Errorf(ctx, "preset.delivery.http.SubmitCreate: processCreateRequest failed: %v", err)
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.uc.Create(ctx, sc, preset.CreateInput{Name: req.Name}); err != nil {
		h.l.Errorf(ctx, "preset.delivery.http.SubmitCreate: usecase Create failed: %v", err)
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// SubmitApply loads a preset into the explore form.
func (h *handler) SubmitApply(c *gin.Context) {
	ctx := c.Request.Context()
	id, sc := h.processIDRequest(c)

	if _, err := h.uc.Apply(ctx, sc, preset.ApplyInput{ID: id}); err != nil {
		h.l.Errorf(ctx, "preset.delivery.http.SubmitApply: usecase Apply failed: %v", err)
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// SubmitDelete removes a preset.
func (h *handler) SubmitDelete(c *gin.Context) {
	ctx := c.Request.Context()
	id, sc := h.processIDRequest(c)

	if err := h.uc.Delete(ctx, sc, preset.DeleteInput{ID: id}); err != nil {
		h.l.Errorf(ctx, "preset.delivery.http.SubmitDelete: usecase Delete failed: %v", err)
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *handler) renderError(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(h.mapError(err), &httpErr) {
		c.String(httpErr.StatusCode, httpErr.Message)
		return
	}
	c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
