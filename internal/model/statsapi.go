package model

import "dashboard-srv/pkg/statsapi"

// NewFilterOptionsFromAPI maps a decoded backend response to the domain model.
func NewFilterOptionsFromAPI(r *statsapi.FilterOptionsResponse) *FilterOptions {
	if r == nil {
		return nil
	}
	out := &FilterOptions{
		Platforms:    r.Platforms,
		ContentTypes: r.ContentTypes,
		Regions:      r.Regions,
	}
	if r.DateRange != nil {
		out.DateRange = &DateRange{Min: r.DateRange.Min, Max: r.DateRange.Max}
	}
	if r.Stats != nil {
		out.Stats = FilterOptionStat{
			TotalPosts:        r.Stats.TotalPosts,
			AvgViews:          r.Stats.AvgViews,
			AvgEngagementRate: r.Stats.AvgEngagementRate,
		}
	}
	return out
}

// NewExploreResultFromAPI maps a decoded backend response to the domain model.
func NewExploreResultFromAPI(r *statsapi.ExploreResponse) *ExploreResult {
	if r == nil {
		return nil
	}
	out := &ExploreResult{
		EngagementDistribution: newDistribution(r.EngagementDistribution),
		TimeSeries:             make([]TimeSeriesPoint, 0, len(r.TimeSeries)),
		TopPosts:               make([]PostRecord, 0, len(r.TopPosts)),
	}
	if r.Summary != nil {
		out.Summary = ExploreSummary{
			TotalPosts:        r.Summary.TotalPosts,
			AvgViews:          r.Summary.AvgViews,
			AvgLikes:          r.Summary.AvgLikes,
			AvgShares:         r.Summary.AvgShares,
			AvgComments:       r.Summary.AvgComments,
			AvgEngagementRate: r.Summary.AvgEngagementRate,
		}
	}
	for _, p := range r.TimeSeries {
		out.TimeSeries = append(out.TimeSeries, TimeSeriesPoint{PostDate: p.PostDate, Views: p.Views, EngRate: p.EngRate})
	}
	for _, p := range r.TopPosts {
		out.TopPosts = append(out.TopPosts, PostRecord{
			Platform:    p.Platform,
			ContentType: p.ContentType,
			Region:      p.Region,
			Views:       p.Views,
			Likes:       p.Likes,
			Shares:      p.Shares,
			Comments:    p.Comments,
			EngRate:     p.EngRate,
		})
	}
	return out
}

// NewRecommendationResultFromAPI maps a decoded backend response to the domain model.
func NewRecommendationResultFromAPI(r *statsapi.RecommendResponse) *RecommendationResult {
	if r == nil {
		return nil
	}
	out := &RecommendationResult{
		Recommendations: r.Recommendations,
	}
	if r.Confidence != nil {
		out.Confidence = *r.Confidence
	}
	if r.SegmentInfo != nil {
		out.SegmentInfo = &SegmentInfo{
			StrategySegment:     r.SegmentInfo.StrategySegment,
			StrategyDescription: r.SegmentInfo.StrategyDescription,
		}
	}
	if r.PlatformStats != nil {
		out.PlatformStats = RecommendationStat{
			ViewsPercentiles:  Percentiles(r.PlatformStats.ViewsPercentiles),
			AvgEngagementRate: r.PlatformStats.AvgEngagementRate,
		}
		if ep := r.PlatformStats.EngagementPercentiles; ep != nil {
			p := Percentiles(*ep)
			out.PlatformStats.EngagementPercentiles = &p
		}
	}
	return out
}

// NewPlatformComparisonFromAPI maps a decoded backend response to the domain model.
func NewPlatformComparisonFromAPI(r *statsapi.PlatformComparisonResponse) *PlatformComparisonResult {
	if r == nil || r.PlatformA == nil || r.PlatformB == nil {
		return nil
	}
	return &PlatformComparisonResult{
		PlatformA: newPlatformStats(r.PlatformA),
		PlatformB: newPlatformStats(r.PlatformB),
	}
}

// NewRegionComparisonFromAPI maps a decoded backend response to the domain model.
func NewRegionComparisonFromAPI(r *statsapi.RegionComparisonResponse) *RegionComparisonResult {
	if r == nil {
		return nil
	}
	out := &RegionComparisonResult{Regions: make([]RegionStats, 0, len(r.Regions))}
	for _, rs := range r.Regions {
		out.Regions = append(out.Regions, RegionStats{
			Region:                 rs.Region,
			AvgEngagementRate:      rs.AvgEngagementRate,
			AvgViews:               rs.AvgViews,
			AvgLikes:               rs.AvgLikes,
			TotalPosts:             rs.TotalPosts,
			EngagementDistribution: newDistribution(rs.EngagementDistribution),
		})
	}
	return out
}

func newPlatformStats(p *statsapi.PlatformSummary) PlatformStats {
	return PlatformStats{
		Platform:               p.Platform,
		AvgViews:               p.AvgViews,
		AvgEngagementRate:      p.AvgEngagementRate,
		TotalPosts:             p.TotalPosts,
		AvgLikes:               p.AvgLikes,
		AvgShares:              p.AvgShares,
		AvgComments:            p.AvgComments,
		EngagementDistribution: newDistribution(p.EngagementDistribution),
	}
}

func newDistribution(c statsapi.Counts) EngagementDistribution {
	out := make(EngagementDistribution, 0, len(c))
	for _, item := range c {
		out = append(out, Bucket{Label: item.Label, Count: item.Count})
	}
	return out
}
