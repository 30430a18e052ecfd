package model

import (
	"maps"
	"slices"
	"time"
)

// DashboardState is everything one browser session sees: the active screen,
// the three form slots and the five result slots.
//
// Result slots are replaced wholesale and never mutated in place, so a copy
// may share them. InFlight counts triggered fetches that have not settled;
// Tokens holds the most recent token issued per operation.
type DashboardState struct {
	SessionID string `json:"session_id"`
	Screen    Screen `json:"screen"`

	InFlight int                  `json:"in_flight"`
	Tokens   map[Operation]uint64 `json:"tokens"`

	FilterOptions *FilterOptions `json:"filter_options,omitempty"`

	Filters Filters        `json:"filters"`
	Explore *ExploreResult `json:"explore,omitempty"`

	RecommendationForm RecommendationForm    `json:"recommendation_form"`
	Recommendation     *RecommendationResult `json:"recommendation,omitempty"`

	Comparison         ComparisonSelection       `json:"comparison"`
	PlatformComparison *PlatformComparisonResult `json:"platform_comparison,omitempty"`
	RegionComparison   *RegionComparisonResult   `json:"region_comparison,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDashboardState returns the state of a freshly mounted session.
func NewDashboardState(sessionID string, now time.Time) DashboardState {
	return DashboardState{
		SessionID:          sessionID,
		Screen:             ScreenLanding,
		Tokens:             map[Operation]uint64{},
		RecommendationForm: DefaultRecommendationForm(),
		Comparison:         DefaultComparisonSelection(),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// Loading is true while at least one triggered fetch is unsettled.
func (s DashboardState) Loading() bool {
	return s.InFlight > 0
}

// Clone copies the mutable containers so the copy can be handed out safely.
func (s DashboardState) Clone() DashboardState {
	out := s
	out.Tokens = maps.Clone(s.Tokens)
	if out.Tokens == nil {
		out.Tokens = map[Operation]uint64{}
	}
	out.Comparison.SelectedRegions = slices.Clone(s.Comparison.SelectedRegions)
	if s.RecommendationForm.ExpectedViews != nil {
		v := *s.RecommendationForm.ExpectedViews
		out.RecommendationForm.ExpectedViews = &v
	}
	return out
}
