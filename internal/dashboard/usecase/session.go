package usecase

import (
	"context"
	"errors"
	"sync"

	"dashboard-srv/internal/dashboard"
	"dashboard-srv/internal/dashboard/repository"
	"dashboard-srv/internal/model"
)

// session serializes every write to one DashboardState.
type session struct {
	mu    sync.Mutex
	state model.DashboardState
}

// Mount returns the session's state, restoring or creating it as needed.
// A new session starts its one filter-options load here.
func (uc *implUseCase) Mount(ctx context.Context, sc model.Scope) (model.DashboardState, error) {
	if sc.SessionID == "" {
		return model.DashboardState{}, dashboard.ErrSessionNotFound
	}
	uc.sweep(ctx)

	sess, created := uc.lookupOrCreate(ctx, sc.SessionID)
	if created {
		if _, err := uc.LoadFilterOptions(ctx, sc); err != nil {
			uc.l.Errorf(ctx, "dashboard.usecase.Mount: LoadFilterOptions failed: %v", err)
		}
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.state.Clone(), nil
}

// GetState returns a snapshot of the session's state.
func (uc *implUseCase) GetState(ctx context.Context, sc model.Scope) (model.DashboardState, error) {
	sess, err := uc.session(ctx, sc)
	if err != nil {
		return model.DashboardState{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.state.Clone(), nil
}

// session finds a live session or restores it from the repository.
func (uc *implUseCase) session(ctx context.Context, sc model.Scope) (*session, error) {
	if sc.SessionID == "" {
		return nil, dashboard.ErrSessionNotFound
	}

	uc.mu.Lock()
	sess, ok := uc.sessions[sc.SessionID]
	uc.mu.Unlock()
	if ok {
		return sess, nil
	}

	st, err := uc.repo.Get(ctx, sc.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrStateNotFound) {
			return nil, dashboard.ErrSessionNotFound
		}
		uc.l.Errorf(ctx, "dashboard.usecase.session: repo.Get failed: %v", err)
		return nil, err
	}
	return uc.adopt(st), nil
}

func (uc *implUseCase) lookupOrCreate(ctx context.Context, sessionID string) (*session, bool) {
	uc.mu.Lock()
	sess, ok := uc.sessions[sessionID]
	uc.mu.Unlock()
	if ok {
		return sess, false
	}

	st, err := uc.repo.Get(ctx, sessionID)
	if err == nil {
		uc.l.Debugf(ctx, "dashboard.usecase.Mount: restored session %s", sessionID)
		return uc.adopt(st), false
	}
	if !errors.Is(err, repository.ErrStateNotFound) {
		uc.l.Warnf(ctx, "dashboard.usecase.Mount: repo.Get failed, starting fresh: %v", err)
	}

	fresh := &session{state: model.NewDashboardState(sessionID, uc.now())}

	uc.mu.Lock()
	if existing, ok := uc.sessions[sessionID]; ok {
		uc.mu.Unlock()
		return existing, false
	}
	uc.sessions[sessionID] = fresh
	uc.mu.Unlock()

	fresh.mu.Lock()
	uc.persist(ctx, fresh.state)
	fresh.mu.Unlock()
	return fresh, true
}

// adopt registers a restored state. Fetches from a previous process never
// settle here, so the in-flight count starts over.
func (uc *implUseCase) adopt(st model.DashboardState) *session {
	st.InFlight = 0
	if st.Tokens == nil {
		st.Tokens = map[model.Operation]uint64{}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if existing, ok := uc.sessions[st.SessionID]; ok {
		return existing
	}
	sess := &session{state: st}
	uc.sessions[st.SessionID] = sess
	return sess
}

// update applies fn to the session's state under its lock and persists the result.
func (uc *implUseCase) update(ctx context.Context, sc model.Scope, fn func(st *model.DashboardState) error) (model.DashboardState, error) {
	sess, err := uc.session(ctx, sc)
	if err != nil {
		return model.DashboardState{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	next := sess.state.Clone()
	if err := fn(&next); err != nil {
		return model.DashboardState{}, err
	}
	next.UpdatedAt = uc.now()
	sess.state = next
	uc.persist(ctx, next)
	return next.Clone(), nil
}

// persist writes a snapshot through to the repository. Must hold the session lock.
func (uc *implUseCase) persist(ctx context.Context, st model.DashboardState) {
	if err := uc.repo.Save(ctx, repository.SaveOptions{State: st, TTL: uc.cfg.SessionTTL}); err != nil {
		uc.l.Errorf(ctx, "dashboard.usecase.persist: repo.Save failed for session %s: %v", st.SessionID, err)
	}
}

// sweep drops idle sessions with nothing in flight, at most once per minute.
func (uc *implUseCase) sweep(ctx context.Context) {
	now := uc.now()

	uc.mu.Lock()
	if now.Sub(uc.lastSweep) < sweepInterval {
		uc.mu.Unlock()
		return
	}
	uc.lastSweep = now
	candidates := make(map[string]*session, len(uc.sessions))
	for id, sess := range uc.sessions {
		candidates[id] = sess
	}
	uc.mu.Unlock()

	var dropped int
	for id, sess := range candidates {
		sess.mu.Lock()
		idle := sess.state.InFlight == 0 && now.Sub(sess.state.UpdatedAt) > uc.cfg.SessionTTL
		sess.mu.Unlock()
		if !idle {
			continue
		}
		uc.mu.Lock()
		if uc.sessions[id] == sess {
			delete(uc.sessions, id)
			dropped++
		}
		uc.mu.Unlock()
	}
	if dropped > 0 {
		uc.l.Debugf(ctx, "dashboard.usecase.sweep: dropped %d idle sessions", dropped)
	}
}
