package httpserver

import (
	"context"
	"fmt"

	"dashboard-srv/internal/middleware"
)

func (srv *HTTPServer) mapHandlers(ctx context.Context) error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.setupDashboardDomain(ctx); err != nil {
		return fmt.Errorf("failed to setup dashboard domain: %w", err)
	}

	mw := middleware.New(srv.l, srv.config.Session, srv.dashboardUC)
	r := srv.gin.Group("")

	if err := srv.setupPresetDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("failed to setup preset domain: %w", err)
	}
	if err := srv.setupExportDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("failed to setup export domain: %w", err)
	}
	srv.registerDashboardRoutes(ctx, r, mw)

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(middleware.RequestID())
	srv.gin.Use(middleware.CORS(srv.config.CORS))

	ctx := context.Background()
	if len(srv.config.CORS.AllowedOrigins) == 0 {
		srv.l.Infof(ctx, "CORS mode: %s (any origin, no credentials)", srv.environment)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (%d allowed origins)", srv.environment, len(srv.config.CORS.AllowedOrigins))
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}
