package preset

import (
	"context"

	"dashboard-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.FilterPreset, error)
	List(ctx context.Context, sc model.Scope) ([]model.FilterPreset, error)
	ListPage(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	// Apply copies the preset's filters into the session. It does not fetch.
	Apply(ctx context.Context, sc model.Scope, input ApplyInput) (model.DashboardState, error)
	Delete(ctx context.Context, sc model.Scope, input DeleteInput) error
}
