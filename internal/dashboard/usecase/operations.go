package usecase

import (
	"context"
	"slices"

	"dashboard-srv/internal/model"
	"dashboard-srv/pkg/statsapi"
)

// fetcher builds the backend call for op from a snapshot of the form state.
func (uc *implUseCase) fetcher(op model.Operation, st model.DashboardState) fetchFunc {
	switch op {
	case model.OperationFilterOptions:
		return uc.fetchFilterOptions()
	case model.OperationExplore:
		return uc.fetchExplore(st.Filters)
	case model.OperationRecommend:
		return uc.fetchRecommendation(st.RecommendationForm)
	case model.OperationComparePlatforms:
		return uc.fetchPlatformComparison(st.Comparison.PlatformA, st.Comparison.PlatformB)
	case model.OperationCompareRegions:
		return uc.fetchRegionComparison(slices.Clone(st.Comparison.SelectedRegions))
	}
	return nil
}

// fetchFilterOptions coalesces concurrent loads across sessions into one call.
func (uc *implUseCase) fetchFilterOptions() fetchFunc {
	return func(ctx context.Context) (func(st *model.DashboardState), error) {
		v, err, shared := uc.group.Do(string(model.OperationFilterOptions), func() (any, error) {
			return uc.api.GetFilterOptions(ctx)
		})
		if err != nil {
			return nil, err
		}
		if shared {
			uc.l.Debugf(ctx, "dashboard.usecase.fetchFilterOptions: shared in-flight call")
		}
		opts := model.NewFilterOptionsFromAPI(v.(*statsapi.FilterOptionsResponse))
		return func(st *model.DashboardState) {
			st.FilterOptions = opts
		}, nil
	}
}

func (uc *implUseCase) fetchExplore(f model.Filters) fetchFunc {
	req := statsapi.ExploreRequest{
		Platform:    f.Platform,
		ContentType: f.ContentType,
		Region:      f.Region,
		DateStart:   f.DateStart,
		DateEnd:     f.DateEnd,
	}
	return func(ctx context.Context) (func(st *model.DashboardState), error) {
		resp, err := uc.api.ExploreFilter(ctx, req)
		if err != nil {
			return nil, err
		}
		result := model.NewExploreResultFromAPI(resp)
		return func(st *model.DashboardState) {
			st.Explore = result
		}, nil
	}
}

func (uc *implUseCase) fetchRecommendation(form model.RecommendationForm) fetchFunc {
	req := statsapi.RecommendRequest{
		Platform:    form.Platform,
		ContentType: form.ContentType,
		Region:      form.Region,
	}
	if form.ExpectedViews != nil {
		v := *form.ExpectedViews
		req.ExpectedViews = &v
	}
	return func(ctx context.Context) (func(st *model.DashboardState), error) {
		resp, err := uc.api.Recommend(ctx, req)
		if err != nil {
			return nil, err
		}
		result := model.NewRecommendationResultFromAPI(resp)
		return func(st *model.DashboardState) {
			st.Recommendation = result
		}, nil
	}
}

func (uc *implUseCase) fetchPlatformComparison(a, b string) fetchFunc {
	return func(ctx context.Context) (func(st *model.DashboardState), error) {
		resp, err := uc.api.ComparePlatforms(ctx, a, b)
		if err != nil {
			return nil, err
		}
		result := model.NewPlatformComparisonFromAPI(resp)
		return func(st *model.DashboardState) {
			st.PlatformComparison = result
		}, nil
	}
}

func (uc *implUseCase) fetchRegionComparison(regions []string) fetchFunc {
	return func(ctx context.Context) (func(st *model.DashboardState), error) {
		resp, err := uc.api.CompareRegions(ctx, regions)
		if err != nil {
			return nil, err
		}
		result := model.NewRegionComparisonFromAPI(resp)
		return func(st *model.DashboardState) {
			st.RegionComparison = result
		}, nil
	}
}
