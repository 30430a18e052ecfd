package http

import (
	"context"
	"html/template"

	"dashboard-srv/internal/dashboard"
	"dashboard-srv/internal/middleware"
	"dashboard-srv/internal/model"
	"dashboard-srv/pkg/discord"
	"dashboard-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the dashboard HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

// PresetLister lists saved filter presets for the explore screen.
type PresetLister interface {
	List(ctx context.Context, sc model.Scope) ([]model.FilterPreset, error)
}

// Features toggles the optional panels of the page.
type Features struct {
	Presets bool
	Export  bool
}

type handler struct {
	l        log.Logger
	uc       dashboard.UseCase
	presets  PresetLister
	features Features
	discord  discord.IDiscord
	tmpl     *template.Template
}

// New - Factory. presets may be nil when saved presets are disabled.
func New(l log.Logger, uc dashboard.UseCase, presets PresetLister, features Features, discord discord.IDiscord) Handler {
	features.Presets = features.Presets && presets != nil
	return &handler{
		l:        l,
		uc:       uc,
		presets:  presets,
		features: features,
		discord:  discord,
		tmpl:     newTemplates(),
	}
}
