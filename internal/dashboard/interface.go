package dashboard

import (
	"context"

	"dashboard-srv/internal/model"
)

// UseCase owns every session's DashboardState. All writes go through it.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Mount returns the session's state, creating it (and loading filter
	// options) when the session is new.
	Mount(ctx context.Context, sc model.Scope) (model.DashboardState, error)
	GetState(ctx context.Context, sc model.Scope) (model.DashboardState, error)

	SelectScreen(ctx context.Context, sc model.Scope, input SelectScreenInput) (model.DashboardState, error)
	UpdateFilters(ctx context.Context, sc model.Scope, input UpdateFiltersInput) (model.DashboardState, error)
	UpdateRecommendationForm(ctx context.Context, sc model.Scope, input UpdateRecommendationFormInput) (model.DashboardState, error)
	SetPlatforms(ctx context.Context, sc model.Scope, input SetPlatformsInput) (model.DashboardState, error)
	ToggleRegion(ctx context.Context, sc model.Scope, input ToggleRegionInput) (model.DashboardState, error)

	// Trigger starts the fetch for op and returns without waiting for it.
	Trigger(ctx context.Context, sc model.Scope, op model.Operation) (Ticket, error)
	LoadFilterOptions(ctx context.Context, sc model.Scope) (Ticket, error)
	ApplyFilters(ctx context.Context, sc model.Scope) (Ticket, error)
	GetRecommendations(ctx context.Context, sc model.Scope) (Ticket, error)
	ComparePlatforms(ctx context.Context, sc model.Scope) (Ticket, error)
	CompareRegions(ctx context.Context, sc model.Scope) (Ticket, error)
}

// Producer publishes fetch activity.
//
//go:generate mockery --name Producer
type Producer interface {
	PublishFetchSettled(ctx context.Context, event FetchSettled) error
}
