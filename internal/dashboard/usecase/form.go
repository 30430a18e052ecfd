package usecase

import (
	"context"
	"strings"

	"dashboard-srv/internal/dashboard"
	"dashboard-srv/internal/model"
)

// UpdateFilters replaces the explore filters. Empty fields mean no constraint.
func (uc *implUseCase) UpdateFilters(ctx context.Context, sc model.Scope, input dashboard.UpdateFiltersInput) (model.DashboardState, error) {
	f := model.Filters{
		Platform:    strings.TrimSpace(input.Filters.Platform),
		ContentType: strings.TrimSpace(input.Filters.ContentType),
		Region:      strings.TrimSpace(input.Filters.Region),
		DateStart:   strings.TrimSpace(input.Filters.DateStart),
		DateEnd:     strings.TrimSpace(input.Filters.DateEnd),
	}
	return uc.update(ctx, sc, func(st *model.DashboardState) error {
		st.Filters = f
		return nil
	})
}

// UpdateRecommendationForm replaces the recommendation form.
func (uc *implUseCase) UpdateRecommendationForm(ctx context.Context, sc model.Scope, input dashboard.UpdateRecommendationFormInput) (model.DashboardState, error) {
	if input.ExpectedViews != nil && *input.ExpectedViews < 0 {
		return model.DashboardState{}, dashboard.ErrInvalidExpectedViews
	}

	form := model.RecommendationForm{
		Platform:    strings.TrimSpace(input.Platform),
		ContentType: strings.TrimSpace(input.ContentType),
		Region:      strings.TrimSpace(input.Region),
	}
	if input.ExpectedViews != nil {
		v := *input.ExpectedViews
		form.ExpectedViews = &v
	}

	return uc.update(ctx, sc, func(st *model.DashboardState) error {
		st.RecommendationForm = form
		return nil
	})
}

// SetPlatforms sets the two platforms to compare.
func (uc *implUseCase) SetPlatforms(ctx context.Context, sc model.Scope, input dashboard.SetPlatformsInput) (model.DashboardState, error) {
	a := strings.TrimSpace(input.PlatformA)
	b := strings.TrimSpace(input.PlatformB)
	if a == "" || b == "" {
		return model.DashboardState{}, dashboard.ErrPlatformRequired
	}
	return uc.update(ctx, sc, func(st *model.DashboardState) error {
		st.Comparison.PlatformA = a
		st.Comparison.PlatformB = b
		return nil
	})
}

// ToggleRegion adds or removes one region from the comparison selection.
func (uc *implUseCase) ToggleRegion(ctx context.Context, sc model.Scope, input dashboard.ToggleRegionInput) (model.DashboardState, error) {
	region := strings.TrimSpace(input.Region)
	if region == "" {
		return model.DashboardState{}, dashboard.ErrRegionRequired
	}
	return uc.update(ctx, sc, func(st *model.DashboardState) error {
		next, ok := st.Comparison.ToggleRegion(region)
		if !ok {
			return dashboard.ErrLastRegion
		}
		st.Comparison = next
		return nil
	})
}
