package http

import (
	"dashboard-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.POST("/exports/explore", mw.Session(), h.SubmitExportExplore)

	api := r.Group("/api/v1/exports")
	api.Use(mw.Session())
	{
		api.POST("/explore", h.ExportExplore)
	}
}
