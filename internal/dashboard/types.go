package dashboard

import (
	"context"
	"time"

	"dashboard-srv/internal/model"
)

// ============================================
// UseCase Input Types
// ============================================

type SelectScreenInput struct {
	Screen model.Screen
}

type UpdateFiltersInput struct {
	Filters model.Filters
}

type UpdateRecommendationFormInput struct {
	Platform      string
	ContentType   string
	Region        string
	ExpectedViews *int64
}

type SetPlatformsInput struct {
	PlatformA string
	PlatformB string
}

type ToggleRegionInput struct {
	Region string
}

// ============================================
// Fetch Types
// ============================================

// Ticket identifies one triggered fetch. Done is closed once it has settled.
type Ticket struct {
	Operation model.Operation
	Token     uint64
	Done      <-chan struct{}
}

// Wait blocks until the fetch settles or ctx is done.
func (t Ticket) Wait(ctx context.Context) error {
	if t.Done == nil {
		return nil
	}
	select {
	case <-t.Done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// FetchSettled describes how one fetch ended.
type FetchSettled struct {
	SessionID string
	Operation model.Operation
	Token     uint64
	Outcome   model.FetchOutcome
	Duration  time.Duration
	Error     string
	SettledAt time.Time
}
