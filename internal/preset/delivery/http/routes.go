package http

import (
	"dashboard-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	web := r.Group("/presets")
	web.Use(mw.Session())
	{
		web.POST("", h.SubmitCreate)
		web.POST("/:id/apply", h.SubmitApply)
		web.POST("/:id/delete", h.SubmitDelete)
	}

	api := r.Group("/api/v1/presets")
	api.Use(mw.Session())
	{
		api.GET("", h.List)
		api.POST("", h.Create)
		api.POST("/:id/apply", h.Apply)
		api.DELETE("/:id", h.Delete)
	}
}
