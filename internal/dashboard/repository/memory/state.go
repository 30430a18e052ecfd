package memory

import (
	"context"

	"dashboard-srv/internal/dashboard/repository"
	"dashboard-srv/internal/model"
)

func (r *implStateRepository) Get(ctx context.Context, sessionID string) (model.DashboardState, error) {
	r.mu.RLock()
	e, ok := r.entries[sessionID]
	r.mu.RUnlock()

	if !ok {
		return model.DashboardState{}, repository.ErrStateNotFound
	}
	if !e.expiresAt.IsZero() && r.now().After(e.expiresAt) {
		r.mu.Lock()
		delete(r.entries, sessionID)
		r.mu.Unlock()
		return model.DashboardState{}, repository.ErrStateNotFound
	}
	return e.state.Clone(), nil
}

func (r *implStateRepository) Save(ctx context.Context, opts repository.SaveOptions) error {
	e := entry{state: opts.State.Clone()}
	if opts.TTL > 0 {
		e.expiresAt = r.now().Add(opts.TTL)
	}

	r.mu.Lock()
	r.entries[opts.State.SessionID] = e
	r.mu.Unlock()
	return nil
}

func (r *implStateRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	delete(r.entries, sessionID)
	r.mu.Unlock()
	return nil
}
