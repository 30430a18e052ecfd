package repository

import (
	"context"

	"dashboard-srv/internal/model"
)

// StateRepository persists session state snapshots between processes.
//
//go:generate mockery --name StateRepository
type StateRepository interface {
	Get(ctx context.Context, sessionID string) (model.DashboardState, error)
	Save(ctx context.Context, opts SaveOptions) error
	Delete(ctx context.Context, sessionID string) error
}
