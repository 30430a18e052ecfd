package scope

import (
	"context"

	"dashboard-srv/internal/model"
)

type scopeCtxKey struct{}

// NewScope creates a new scope for a session.
func NewScope(sessionID string) model.Scope {
	return model.Scope{SessionID: sessionID}
}

// SetScopeToContext stores the scope in ctx.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the scope stored in ctx, or the zero scope.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, ok := ctx.Value(scopeCtxKey{}).(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
