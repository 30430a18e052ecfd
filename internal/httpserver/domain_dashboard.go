package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"dashboard-srv/config"
	"dashboard-srv/internal/dashboard"
	dashboardHTTP "dashboard-srv/internal/dashboard/delivery/http"
	dashboardProducer "dashboard-srv/internal/dashboard/delivery/kafka/producer"
	"dashboard-srv/internal/dashboard/repository"
	dashboardMemory "dashboard-srv/internal/dashboard/repository/memory"
	dashboardRedis "dashboard-srv/internal/dashboard/repository/redis"
	dashboardUsecase "dashboard-srv/internal/dashboard/usecase"
	"dashboard-srv/internal/middleware"
)

func (srv *HTTPServer) setupDashboardDomain(ctx context.Context) error {
	var repo repository.StateRepository
	if srv.config.Session.Store == config.SessionStoreRedis {
		repo = dashboardRedis.New(srv.redisClient, srv.l)
		srv.l.Infof(ctx, "Dashboard sessions stored in Redis")
	} else {
		repo = dashboardMemory.New()
		srv.l.Infof(ctx, "Dashboard sessions stored in memory")
	}

	var producer dashboard.Producer
	if srv.kafkaProducer != nil {
		producer = dashboardProducer.New(srv.l, srv.kafkaProducer)
	}

	cfg := dashboardUsecase.DefaultConfig()
	if srv.config.Session.TTL > 0 {
		cfg.SessionTTL = srv.config.Session.TTL
	}

	srv.dashboardUC = dashboardUsecase.New(srv.l, srv.statsAPI, repo, producer, cfg)

	srv.l.Infof(ctx, "Dashboard domain initialized")
	return nil
}

func (srv *HTTPServer) registerDashboardRoutes(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	features := dashboardHTTP.Features{
		Presets: srv.presetUC != nil,
		Export:  srv.minioClient != nil,
	}

	var presets dashboardHTTP.PresetLister
	if srv.presetUC != nil {
		presets = srv.presetUC
	}

	handler := dashboardHTTP.New(srv.l, srv.dashboardUC, presets, features, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Dashboard domain registered (presets=%t, export=%t)", features.Presets, features.Export)
}
