package http

import (
	"testing"
	"time"

	"dashboard-srv/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateWithResults() model.DashboardState {
	st := model.NewDashboardState("s1", time.Now())
	st.FilterOptions = &model.FilterOptions{
		Platforms: []string{"TikTok", "Instagram"},
		Regions:   []string{"USA", "India", "Brazil"},
		Stats:     model.FilterOptionStat{TotalPosts: 12500, AvgEngagementRate: 0.0523},
	}
	st.Explore = &model.ExploreResult{
		Summary:                model.ExploreSummary{TotalPosts: 17},
		EngagementDistribution: model.EngagementDistribution{{Label: "High", Count: 10}, {Label: "Medium", Count: 5}, {Label: "Low", Count: 2}},
	}
	st.Recommendation = &model.RecommendationResult{Confidence: 0.8}
	st.PlatformComparison = &model.PlatformComparisonResult{
		PlatformA: model.PlatformStats{Platform: "TikTok", AvgViews: 500000},
		PlatformB: model.PlatformStats{Platform: "Instagram"},
	}
	st.RegionComparison = &model.RegionComparisonResult{Regions: []model.RegionStats{{Region: "USA"}}}
	return st
}

func TestNewPageViewRendersOnlyActiveScreen(t *testing.T) {
	st := stateWithResults()

	for _, s := range model.Screens {
		st.Screen = s
		v := newPageView(st, Features{}, nil)

		assert.Equal(t, s == model.ScreenLanding, v.Landing != nil, s)
		assert.Equal(t, s == model.ScreenExplore, v.Explore != nil, s)
		assert.Equal(t, s == model.ScreenRecommend, v.Recommend != nil, s)
		assert.Equal(t, s == model.ScreenCompare, v.Compare != nil, s)

		active := 0
		for _, n := range v.Nav {
			if n.Active {
				active++
				assert.Equal(t, s, n.ID)
			}
		}
		assert.Equal(t, 1, active)
	}
}

func TestExploreViewCharts(t *testing.T) {
	st := stateWithResults()
	st.Screen = model.ScreenExplore

	v := newPageView(st, Features{}, nil)

	require.NotNil(t, v.Explore.Result)
	require.NotNil(t, v.Explore.Result.Distribution)
	assert.Equal(t, []string{"High", "Medium", "Low"}, v.Explore.Result.Distribution.Data.Labels)
	assert.Nil(t, v.Explore.Result.TimeSeries)
	assert.Empty(t, v.Explore.Result.Months)
	assert.Equal(t, "17", v.Explore.Result.TotalPosts)
}

func TestExploreViewMonths(t *testing.T) {
	st := stateWithResults()
	st.Screen = model.ScreenExplore
	st.Explore.TimeSeries = []model.TimeSeriesPoint{
		{PostDate: "2023-02", EngRate: 0.05, Views: 1500000},
		{PostDate: "2023-01", EngRate: 0.125, Views: 900},
	}

	v := newPageView(st, Features{}, nil)

	require.NotNil(t, v.Explore.Result.TimeSeries)
	assert.Equal(t, []monthView{
		{Month: "2023-02", EngRate: "5.00%", Views: "1,500,000"},
		{Month: "2023-01", EngRate: "12.50%", Views: "900"},
	}, v.Explore.Result.Months)
}

func TestExploreViewBeforeFirstFetch(t *testing.T) {
	st := model.NewDashboardState("s1", time.Now())
	st.Screen = model.ScreenExplore

	v := newPageView(st, Features{Presets: true}, []model.FilterPreset{{ID: "p1", Name: "US TikTok", Filters: model.Filters{Platform: "TikTok", Region: "USA"}}})

	require.NotNil(t, v.Explore)
	assert.Nil(t, v.Explore.Result)
	require.Len(t, v.Explore.Presets, 1)
	assert.Equal(t, "TikTok · USA", v.Explore.Presets[0].Summary)
	assert.True(t, v.Explore.Features.Presets)
}

func TestRecommendViewOmitsMissingSegment(t *testing.T) {
	st := stateWithResults()
	st.Screen = model.ScreenRecommend
	views := int64(50000)
	st.RecommendationForm.ExpectedViews = &views

	v := newPageView(st, Features{}, nil)

	assert.Equal(t, "50000", v.Recommend.ExpectedViews)
	require.NotNil(t, v.Recommend.Result)
	assert.Nil(t, v.Recommend.Result.Segment)
	assert.Nil(t, v.Recommend.Result.EngagementPercentiles)
	assert.Equal(t, "80%", v.Recommend.Result.Confidence)
}

func TestCompareView(t *testing.T) {
	st := stateWithResults()
	st.Screen = model.ScreenCompare
	st.Comparison.SelectedRegions = []string{"USA", "Atlantis"}

	v := newPageView(st, Features{}, nil)

	require.NotNil(t, v.Compare.Platforms)
	assert.InDelta(t, 500, v.Compare.Platforms.Chart.Data.Datasets[0].Data[0], 1e-9)
	assert.Equal(t, []regionOptionView{
		{Name: "USA", Selected: true},
		{Name: "India"},
		{Name: "Brazil"},
		{Name: "Atlantis", Selected: true},
	}, v.Compare.Regions)
	require.NotNil(t, v.Compare.RegionResult)
	assert.Equal(t, "USA", v.Compare.RegionResult.Rows[0].Region)
}

func TestCompareViewDistributions(t *testing.T) {
	st := stateWithResults()
	st.Screen = model.ScreenCompare
	st.PlatformComparison.PlatformA.EngagementDistribution = model.EngagementDistribution{{Label: "High", Count: 7}, {Label: "Low", Count: 1}}
	st.PlatformComparison.PlatformB.EngagementDistribution = model.EngagementDistribution{{Label: "Medium", Count: 3}}
	st.RegionComparison.Regions[0].EngagementDistribution = model.EngagementDistribution{{Label: "High", Count: 7}}
	st.RegionComparison.Regions = append(st.RegionComparison.Regions, model.RegionStats{Region: "India"})

	v := newPageView(st, Features{}, nil)

	require.NotNil(t, v.Compare.Platforms)
	require.Len(t, v.Compare.Platforms.Distributions, 2)
	assert.Equal(t, "TikTok", v.Compare.Platforms.Distributions[0].Name)
	assert.Equal(t, []string{"High", "Low"}, v.Compare.Platforms.Distributions[0].Chart.Data.Labels)
	assert.Equal(t, []string{"Medium"}, v.Compare.Platforms.Distributions[1].Chart.Data.Labels)

	require.NotNil(t, v.Compare.RegionResult)
	require.Len(t, v.Compare.RegionResult.Distributions, 1)
	assert.Equal(t, "USA", v.Compare.RegionResult.Distributions[0].Name)
	assert.Equal(t, []string{"High"}, v.Compare.RegionResult.Distributions[0].Chart.Data.Labels)
}

func TestLandingView(t *testing.T) {
	st := stateWithResults()

	v := newPageView(st, Features{}, nil)

	require.NotNil(t, v.Landing.Stats)
	assert.Equal(t, "12,500", v.Landing.Stats.TotalPosts)
	assert.Equal(t, "5.23%", v.Landing.Stats.AvgEngagementRate)

	empty := newPageView(model.NewDashboardState("s2", time.Now()), Features{}, nil)
	assert.Nil(t, empty.Landing.Stats)
}

func TestParseExpectedViews(t *testing.T) {
	v, err := parseExpectedViews("")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = parseExpectedViews(" 50000 ")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.EqualValues(t, 50000, *v)

	for _, bad := range []string{"abc", "-1", "1.5"} {
		_, err := parseExpectedViews(bad)
		assert.Error(t, err, bad)
	}
}
