package usecase

import (
	"context"
	"fmt"

	"dashboard-srv/internal/dashboard"
	"dashboard-srv/internal/model"
)

// fetchFunc performs one backend call and returns how to apply its result.
type fetchFunc func(ctx context.Context) (func(st *model.DashboardState), error)

// Trigger marks the session loading, issues a new token for op and starts the
// fetch in the background. Requests are built from the state at trigger time.
func (uc *implUseCase) Trigger(ctx context.Context, sc model.Scope, op model.Operation) (dashboard.Ticket, error) {
	if !op.IsValid() {
		return dashboard.Ticket{}, dashboard.ErrUnknownOperation
	}

	sess, err := uc.session(ctx, sc)
	if err != nil {
		return dashboard.Ticket{}, err
	}

	sess.mu.Lock()
	next := sess.state.Clone()
	fetch := uc.fetcher(op, next)
	next.InFlight++
	next.Tokens[op]++
	token := next.Tokens[op]
	next.UpdatedAt = uc.now()
	sess.state = next
	uc.persist(ctx, next)
	sess.mu.Unlock()

	uc.l.Debugf(ctx, "dashboard.usecase.Trigger: session %s started %s #%d", sc.SessionID, op, token)

	done := make(chan struct{})
	go uc.run(context.WithoutCancel(ctx), sess, op, token, fetch, done)

	return dashboard.Ticket{Operation: op, Token: token, Done: done}, nil
}

func (uc *implUseCase) LoadFilterOptions(ctx context.Context, sc model.Scope) (dashboard.Ticket, error) {
	return uc.Trigger(ctx, sc, model.OperationFilterOptions)
}

func (uc *implUseCase) ApplyFilters(ctx context.Context, sc model.Scope) (dashboard.Ticket, error) {
	return uc.Trigger(ctx, sc, model.OperationExplore)
}

func (uc *implUseCase) GetRecommendations(ctx context.Context, sc model.Scope) (dashboard.Ticket, error) {
	return uc.Trigger(ctx, sc, model.OperationRecommend)
}

func (uc *implUseCase) ComparePlatforms(ctx context.Context, sc model.Scope) (dashboard.Ticket, error) {
	return uc.Trigger(ctx, sc, model.OperationComparePlatforms)
}

func (uc *implUseCase) CompareRegions(ctx context.Context, sc model.Scope) (dashboard.Ticket, error) {
	return uc.Trigger(ctx, sc, model.OperationCompareRegions)
}

// run settles one fetch. The in-flight count is always decremented and done
// is always closed after the settle event is published.
func (uc *implUseCase) run(ctx context.Context, sess *session, op model.Operation, token uint64, fetch fetchFunc, done chan struct{}) {
	started := uc.now()

	fctx, cancel := context.WithTimeout(ctx, uc.cfg.FetchTimeout)
	apply, err := safeFetch(fctx, fetch)
	cancel()

	sess.mu.Lock()
	next := sess.state.Clone()
	var outcome model.FetchOutcome
	switch {
	case err != nil:
		outcome = model.FetchFailed
		uc.l.Errorf(ctx, "dashboard.usecase.run: %s #%d for session %s failed: %v", op, token, next.SessionID, err)
	case next.Tokens[op] != token:
		outcome = model.FetchDiscarded
		uc.l.Debugf(ctx, "dashboard.usecase.run: discarded stale %s #%d for session %s (latest #%d)", op, token, next.SessionID, next.Tokens[op])
	default:
		outcome = model.FetchApplied
		apply(&next)
	}
	if next.InFlight > 0 {
		next.InFlight--
	}
	next.UpdatedAt = uc.now()
	sess.state = next
	uc.persist(ctx, next)
	sessionID := next.SessionID
	sess.mu.Unlock()

	event := dashboard.FetchSettled{
		SessionID: sessionID,
		Operation: op,
		Token:     token,
		Outcome:   outcome,
		Duration:  uc.now().Sub(started),
		SettledAt: uc.now(),
	}
	if err != nil {
		event.Error = err.Error()
	}
	uc.publish(ctx, event)
	close(done)
}

func safeFetch(ctx context.Context, fetch fetchFunc) (apply func(st *model.DashboardState), err error) {
	defer func() {
		if r := recover(); r != nil {
			apply, err = nil, fmt.Errorf("fetch panicked: %v", r)
		}
	}()
	return fetch(ctx)
}

func (uc *implUseCase) publish(ctx context.Context, event dashboard.FetchSettled) {
	if uc.producer == nil {
		return
	}
	if err := uc.producer.PublishFetchSettled(ctx, event); err != nil {
		uc.l.Warnf(ctx, "dashboard.usecase.publish: PublishFetchSettled failed: %v", err)
	}
}
