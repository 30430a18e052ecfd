package usecase

import (
	"context"

	"dashboard-srv/internal/dashboard"
	"dashboard-srv/internal/model"
)

// SelectScreen switches the active screen. It never fetches and never touches other slots.
func (uc *implUseCase) SelectScreen(ctx context.Context, sc model.Scope, input dashboard.SelectScreenInput) (model.DashboardState, error) {
	if !input.Screen.IsValid() {
		return model.DashboardState{}, dashboard.ErrInvalidScreen
	}
	return uc.update(ctx, sc, func(st *model.DashboardState) error {
		st.Screen = input.Screen
		return nil
	})
}
