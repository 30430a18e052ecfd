package export

import (
	"context"

	"dashboard-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ExportExplore uploads the session's current explore result as CSV and
	// returns a time-limited download link.
	ExportExplore(ctx context.Context, sc model.Scope) (ExportOutput, error)
}
