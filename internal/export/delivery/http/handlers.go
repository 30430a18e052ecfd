package http

import (
	"errors"
	"net/http"

	pkgErrors "dashboard-srv/pkg/errors"
	"dashboard-srv/pkg/response"
	"dashboard-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// ExportExplore - Export the current explore result as CSV
// @Router /api/v1/exports/explore [post]
func (h *handler) ExportExplore(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	out, err := h.uc.ExportExplore(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.ExportExplore: usecase ExportExplore failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newExportResp(out))
}

// SubmitExportExplore sends the browser to the signed download URL.
func (h *handler) SubmitExportExplore(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	out, err := h.uc.ExportExplore(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.SubmitExportExplore: usecase ExportExplore failed: %v", err)
		var httpErr *pkgErrors.HTTPError
		if errors.As(h.mapError(err), &httpErr) {
			c.String(httpErr.StatusCode, httpErr.Message)
			return
		}
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	c.Redirect(http.StatusSeeOther, out.URL)
}
