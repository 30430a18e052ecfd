package preset

import (
	"dashboard-srv/internal/model"
	"dashboard-srv/pkg/paginator"
)

// CreateInput saves Filters under Name. Nil Filters saves the session's current filters.
type CreateInput struct {
	Name    string
	Filters *model.Filters
}

type ListInput struct {
	PaginateQuery paginator.PaginateQuery
}

type ListOutput struct {
	Presets   []model.FilterPreset
	Paginator paginator.Paginator
}

type ApplyInput struct {
	ID string
}

type DeleteInput struct {
	ID string
}
