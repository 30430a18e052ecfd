package chart

import (
	"encoding/json"
	"testing"

	"dashboard-srv/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngagementPie(t *testing.T) {
	dist := model.EngagementDistribution{
		{Label: "High", Count: 10},
		{Label: "Medium", Count: 5},
		{Label: "Low", Count: 2},
	}

	spec := EngagementPie(dist)

	assert.Equal(t, TypePie, spec.Type)
	assert.Equal(t, []string{"High", "Medium", "Low"}, spec.Data.Labels)
	require.Len(t, spec.Data.Datasets, 1)
	assert.Equal(t, []float64{10, 5, 2}, spec.Data.Datasets[0].Data)
	assert.Len(t, spec.Data.Datasets[0].BackgroundColor, 3)
}

func TestDistributionPieTitle(t *testing.T) {
	spec := DistributionPie("TikTok", model.EngagementDistribution{{Label: "High", Count: 7}})

	assert.Equal(t, "TikTok", spec.Options.Plugins.Title.Text)
	assert.True(t, spec.Options.Plugins.Title.Display)
	assert.Equal(t, []string{"High"}, spec.Data.Labels)
	assert.Equal(t, "Engagement Distribution", EngagementPie(nil).Options.Plugins.Title.Text)
}

func TestEngagementPieCyclesColors(t *testing.T) {
	dist := model.EngagementDistribution{
		{Label: "A", Count: 1}, {Label: "B", Count: 1}, {Label: "C", Count: 1},
		{Label: "D", Count: 1}, {Label: "E", Count: 1},
	}

	colors := EngagementPie(dist).Data.Datasets[0].BackgroundColor

	require.Len(t, colors, 5)
	assert.Equal(t, colors[0], colors[3])
	assert.Equal(t, colors[1], colors[4])
}

func TestEngagementTimeSeries(t *testing.T) {
	t.Run("empty input draws nothing", func(t *testing.T) {
		_, ok := EngagementTimeSeries(nil)
		assert.False(t, ok)
	})

	t.Run("keeps backend order and scales rate", func(t *testing.T) {
		points := []model.TimeSeriesPoint{
			{PostDate: "2023-02", EngRate: 0.05},
			{PostDate: "2023-01", EngRate: 0.125},
		}

		spec, ok := EngagementTimeSeries(points)

		require.True(t, ok)
		assert.Equal(t, TypeLine, spec.Type)
		assert.Equal(t, []string{"2023-02", "2023-01"}, spec.Data.Labels)
		assert.InDeltaSlice(t, []float64{5, 12.5}, spec.Data.Datasets[0].Data, 1e-9)
	})
}

func TestPlatformComparison(t *testing.T) {
	r := model.PlatformComparisonResult{
		PlatformA: model.PlatformStats{Platform: "TikTok", AvgViews: 500000, AvgEngagementRate: 0.08, AvgLikes: 120, AvgShares: 30, AvgComments: 12},
		PlatformB: model.PlatformStats{Platform: "Instagram", AvgViews: 250000, AvgEngagementRate: 0.05},
	}

	spec := PlatformComparison(r)

	assert.Equal(t, TypeBar, spec.Type)
	assert.Equal(t, []string{"Avg Views", "Engagement Rate", "Avg Likes", "Avg Shares", "Avg Comments"}, spec.Data.Labels)
	require.Len(t, spec.Data.Datasets, 2)
	assert.Equal(t, "TikTok", spec.Data.Datasets[0].Label)
	assert.InDelta(t, 500, spec.Data.Datasets[0].Data[0], 1e-9)
	assert.InDelta(t, 8, spec.Data.Datasets[0].Data[1], 1e-9)
	assert.Equal(t, "Instagram", spec.Data.Datasets[1].Label)
	assert.InDelta(t, 250, spec.Data.Datasets[1].Data[0], 1e-9)
}

func TestRegionEngagement(t *testing.T) {
	regions := []model.RegionStats{}
	for _, name := range []string{"USA", "India", "Brazil", "UK", "Japan", "Germany"} {
		regions = append(regions, model.RegionStats{Region: name, AvgEngagementRate: 0.04})
	}

	spec := RegionEngagement(model.RegionComparisonResult{Regions: regions})

	assert.Equal(t, []string{"USA", "India", "Brazil", "UK", "Japan", "Germany"}, spec.Data.Labels)
	ds := spec.Data.Datasets[0]
	assert.InDelta(t, 4, ds.Data[0], 1e-9)
	assert.Equal(t, ds.BackgroundColor[0], ds.BackgroundColor[5])
	assert.NotEqual(t, ds.BackgroundColor[0], ds.BackgroundColor[1])
}

func TestSpecMarshalsForChartJS(t *testing.T) {
	spec, ok := EngagementTimeSeries([]model.TimeSeriesPoint{{PostDate: "2023-01", EngRate: 0.1}})
	require.True(t, ok)

	b, err := json.Marshal(spec)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, "line", out["type"])
	assert.Contains(t, out, "data")
	assert.Contains(t, out["options"], "scales")
}
