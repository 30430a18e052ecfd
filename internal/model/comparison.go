package model

import "slices"

const (
	DefaultPlatformA = "TikTok"
	DefaultPlatformB = "Instagram"
)

// DefaultSelectedRegions are the regions ticked when a session starts.
var DefaultSelectedRegions = []string{"USA", "India"}

// ComparisonSelection holds the compare screen inputs.
type ComparisonSelection struct {
	PlatformA       string   `json:"platform_a"`
	PlatformB       string   `json:"platform_b"`
	SelectedRegions []string `json:"selected_regions"`
}

// DefaultComparisonSelection is the selection as first shown.
func DefaultComparisonSelection() ComparisonSelection {
	return ComparisonSelection{
		PlatformA:       DefaultPlatformA,
		PlatformB:       DefaultPlatformB,
		SelectedRegions: slices.Clone(DefaultSelectedRegions),
	}
}

// HasRegion reports whether region is currently selected.
func (c ComparisonSelection) HasRegion(region string) bool {
	return slices.Contains(c.SelectedRegions, region)
}

// ToggleRegion removes region when selected and appends it otherwise.
// Removing the only selected region is refused and reported with ok=false.
func (c ComparisonSelection) ToggleRegion(region string) (ComparisonSelection, bool) {
	out := c
	idx := slices.Index(c.SelectedRegions, region)
	if idx < 0 {
		out.SelectedRegions = append(slices.Clone(c.SelectedRegions), region)
		return out, true
	}
	if len(c.SelectedRegions) == 1 {
		return c, false
	}
	out.SelectedRegions = slices.Delete(slices.Clone(c.SelectedRegions), idx, idx+1)
	return out, true
}

// PlatformComparisonResult is the platform half of the compare screen.
type PlatformComparisonResult struct {
	PlatformA PlatformStats `json:"platform_a"`
	PlatformB PlatformStats `json:"platform_b"`
}

type PlatformStats struct {
	Platform               string                 `json:"platform"`
	AvgViews               float64                `json:"avg_views"`
	AvgEngagementRate      float64                `json:"avg_engagement_rate"`
	TotalPosts             int64                  `json:"total_posts"`
	AvgLikes               float64                `json:"avg_likes"`
	AvgShares              float64                `json:"avg_shares"`
	AvgComments            float64                `json:"avg_comments"`
	EngagementDistribution EngagementDistribution `json:"engagement_distribution"`
}

// RegionComparisonResult is the region half of the compare screen.
type RegionComparisonResult struct {
	Regions []RegionStats `json:"regions"`
}

type RegionStats struct {
	Region                 string                 `json:"region"`
	AvgEngagementRate      float64                `json:"avg_engagement_rate"`
	AvgViews               float64                `json:"avg_views"`
	AvgLikes               float64                `json:"avg_likes"`
	TotalPosts             int64                  `json:"total_posts"`
	EngagementDistribution EngagementDistribution `json:"engagement_distribution"`
}
