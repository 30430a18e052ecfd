package usecase

import (
	"sync"
	"time"

	"dashboard-srv/internal/dashboard"
	"dashboard-srv/internal/dashboard/repository"
	"dashboard-srv/pkg/log"
	"dashboard-srv/pkg/statsapi"

	"golang.org/x/sync/singleflight"
)

// Config - UseCase configuration
type Config struct {
	FetchTimeout time.Duration // upper bound for one backend call (default 30s)
	SessionTTL   time.Duration // idle time before a session is dropped (default 8h)
}

// DefaultConfig - Default configuration
func DefaultConfig() Config {
	return Config{
		FetchTimeout: 30 * time.Second,
		SessionTTL:   8 * time.Hour,
	}
}

// implUseCase implements dashboard.UseCase
type implUseCase struct {
	l        log.Logger
	api      statsapi.IStatsAPI
	repo     repository.StateRepository
	producer dashboard.Producer
	cfg      Config
	now      func() time.Time

	mu        sync.Mutex
	sessions  map[string]*session
	lastSweep time.Time

	group singleflight.Group
}

// New creates a new dashboard usecase. producer may be nil.
func New(
	l log.Logger,
	api statsapi.IStatsAPI,
	repo repository.StateRepository,
	producer dashboard.Producer,
	cfg Config,
) dashboard.UseCase {
	def := DefaultConfig()
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = def.FetchTimeout
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = def.SessionTTL
	}
	return &implUseCase{
		l:        l,
		api:      api,
		repo:     repo,
		producer: producer,
		cfg:      cfg,
		now:      time.Now,
		sessions: map[string]*session{},
	}
}
