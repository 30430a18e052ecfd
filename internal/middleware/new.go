package middleware

import (
	"dashboard-srv/config"
	"dashboard-srv/internal/dashboard"
	"dashboard-srv/pkg/log"
)

type Middleware struct {
	l           log.Logger
	sessionCfg  config.SessionConfig
	dashboardUC dashboard.UseCase
}

func New(l log.Logger, sessionCfg config.SessionConfig, dashboardUC dashboard.UseCase) Middleware {
	return Middleware{
		l:           l,
		sessionCfg:  sessionCfg,
		dashboardUC: dashboardUC,
	}
}
