package usecase

import (
	"time"

	"dashboard-srv/internal/dashboard"
	"dashboard-srv/internal/preset"
	"dashboard-srv/internal/preset/repository"
	"dashboard-srv/pkg/log"

	"github.com/google/uuid"
)

const maxNameLength = 80

type implUseCase struct {
	l           log.Logger
	repo        repository.PresetRepository
	dashboardUC dashboard.UseCase
	newID       func() string
	now         func() time.Time
}

// New - Factory
func New(l log.Logger, repo repository.PresetRepository, dashboardUC dashboard.UseCase) preset.UseCase {
	return &implUseCase{
		l:           l,
		repo:        repo,
		dashboardUC: dashboardUC,
		newID:       uuid.NewString,
		now:         time.Now,
	}
}
