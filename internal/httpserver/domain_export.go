package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	exportHTTP "dashboard-srv/internal/export/delivery/http"
	exportUsecase "dashboard-srv/internal/export/usecase"
	"dashboard-srv/internal/middleware"
)

func (srv *HTTPServer) setupExportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	if srv.minioClient == nil {
		srv.l.Infof(ctx, "Export domain disabled (no MinIO)")
		return nil
	}

	uc := exportUsecase.New(srv.l, srv.minioClient, srv.dashboardUC, exportUsecase.Config{
		Bucket:    srv.config.MinIO.Bucket,
		URLExpiry: srv.config.MinIO.URLExpiry,
	})

	handler := exportHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Export domain registered")
	return nil
}
