package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToggleRegion(t *testing.T) {
	sel := DefaultComparisonSelection()

	t.Run("adds unselected region at the end", func(t *testing.T) {
		out, ok := sel.ToggleRegion("Brazil")
		assert.True(t, ok)
		assert.Equal(t, []string{"USA", "India", "Brazil"}, out.SelectedRegions)
		assert.Equal(t, []string{"USA", "India"}, sel.SelectedRegions)
	})

	t.Run("removes selected region", func(t *testing.T) {
		out, ok := sel.ToggleRegion("USA")
		assert.True(t, ok)
		assert.Equal(t, []string{"India"}, out.SelectedRegions)
	})

	t.Run("toggling twice restores membership", func(t *testing.T) {
		once, _ := sel.ToggleRegion("Japan")
		twice, _ := once.ToggleRegion("Japan")
		assert.ElementsMatch(t, sel.SelectedRegions, twice.SelectedRegions)
	})

	t.Run("refuses to remove the last region", func(t *testing.T) {
		single := ComparisonSelection{SelectedRegions: []string{"UK"}}
		out, ok := single.ToggleRegion("UK")
		assert.False(t, ok)
		assert.Equal(t, []string{"UK"}, out.SelectedRegions)
	})
}

func TestNewDashboardStateDefaults(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	s := NewDashboardState("abc", now)

	assert.Equal(t, ScreenLanding, s.Screen)
	assert.False(t, s.Loading())
	assert.Equal(t, "TikTok", s.RecommendationForm.Platform)
	assert.Equal(t, "Video", s.RecommendationForm.ContentType)
	assert.Equal(t, "USA", s.RecommendationForm.Region)
	assert.Nil(t, s.RecommendationForm.ExpectedViews)
	assert.Equal(t, "TikTok", s.Comparison.PlatformA)
	assert.Equal(t, "Instagram", s.Comparison.PlatformB)
	assert.Equal(t, []string{"USA", "India"}, s.Comparison.SelectedRegions)
	assert.Nil(t, s.Explore)
	assert.Nil(t, s.FilterOptions)
}

func TestCloneDetachesContainers(t *testing.T) {
	views := int64(100)
	s := NewDashboardState("abc", time.Now())
	s.Tokens[OperationExplore] = 3
	s.RecommendationForm.ExpectedViews = &views

	c := s.Clone()
	c.Tokens[OperationExplore] = 4
	c.Comparison.SelectedRegions[0] = "UK"
	*c.RecommendationForm.ExpectedViews = 5

	assert.EqualValues(t, 3, s.Tokens[OperationExplore])
	assert.Equal(t, "USA", s.Comparison.SelectedRegions[0])
	assert.EqualValues(t, 100, *s.RecommendationForm.ExpectedViews)
}

func TestScreenAndOperationValidity(t *testing.T) {
	for _, s := range Screens {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, Screen("settings").IsValid())

	for _, o := range Operations {
		assert.True(t, o.IsValid(), o)
	}
	assert.False(t, Operation("delete-all").IsValid())
}
