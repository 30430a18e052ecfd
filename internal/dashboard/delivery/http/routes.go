package http

import (
	"dashboard-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	web := r.Group("")
	web.Use(mw.Session())
	{
		web.GET("/", h.Index)
		web.POST("/screen", h.SubmitScreen)
		web.POST("/explore", h.SubmitExplore)
		web.POST("/recommend", h.SubmitRecommend)
		web.POST("/compare/platforms", h.SubmitComparePlatforms)
		web.POST("/compare/regions/toggle", h.SubmitToggleRegion)
		web.POST("/compare/regions", h.SubmitCompareRegions)
	}

	api := r.Group("/api/v1")
	api.Use(mw.Session())
	{
		api.GET("/state", h.GetState)
		api.GET("/view", h.GetView)
		api.PUT("/screen", h.SelectScreen)
		api.PUT("/forms/filters", h.UpdateFilters)
		api.PUT("/forms/recommendation", h.UpdateRecommendationForm)
		api.PUT("/forms/platforms", h.SetPlatforms)
		api.POST("/forms/regions/toggle", h.ToggleRegion)
		api.POST("/actions/:operation", h.Trigger)
	}
}
