package usecase

import (
	"time"

	"dashboard-srv/internal/dashboard"
	"dashboard-srv/internal/export"
	"dashboard-srv/pkg/log"
	"dashboard-srv/pkg/minio"

	"github.com/google/uuid"
)

type Config struct {
	Bucket    string
	URLExpiry time.Duration
}

type implUseCase struct {
	l           log.Logger
	minio       minio.MinIO
	dashboardUC dashboard.UseCase
	config      Config
	newID       func() string
	now         func() time.Time
}

// New - Factory
func New(l log.Logger, minio minio.MinIO, dashboardUC dashboard.UseCase, cfg Config) export.UseCase {
	if cfg.URLExpiry <= 0 {
		cfg.URLExpiry = defaultURLExpiry
	}
	return &implUseCase{
		l:           l,
		minio:       minio,
		dashboardUC: dashboardUC,
		config:      cfg,
		newID:       uuid.NewString,
		now:         time.Now,
	}
}
