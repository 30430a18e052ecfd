package memory

import (
	"sync"
	"time"

	"dashboard-srv/internal/dashboard/repository"
	"dashboard-srv/internal/model"
)

type entry struct {
	state     model.DashboardState
	expiresAt time.Time
}

type implStateRepository struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// New - Factory
func New() repository.StateRepository {
	return &implStateRepository{
		entries: map[string]entry{},
		now:     time.Now,
	}
}
