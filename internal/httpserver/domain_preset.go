package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"dashboard-srv/internal/middleware"
	presetHTTP "dashboard-srv/internal/preset/delivery/http"
	presetPostgre "dashboard-srv/internal/preset/repository/postgre"
	presetUsecase "dashboard-srv/internal/preset/usecase"
)

func (srv *HTTPServer) setupPresetDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	if srv.postgresDB == nil {
		srv.l.Infof(ctx, "Preset domain disabled (no PostgreSQL)")
		return nil
	}

	repo := presetPostgre.New(srv.postgresDB, srv.l, srv.config.Postgres.Schema)

	srv.presetUC = presetUsecase.New(srv.l, repo, srv.dashboardUC)

	handler := presetHTTP.New(srv.l, srv.presetUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Preset domain registered")
	return nil
}
