package statsapi

func (r *FilterOptionsResponse) validate() error {
	switch {
	case r.Platforms == nil:
		return malformed(PathFilterOptions, "missing platforms")
	case r.ContentTypes == nil:
		return malformed(PathFilterOptions, "missing content_types")
	case r.Regions == nil:
		return malformed(PathFilterOptions, "missing regions")
	case r.Stats == nil:
		return malformed(PathFilterOptions, "missing stats")
	}
	return nil
}

func (r *ExploreResponse) validate() error {
	switch {
	case r.Summary == nil:
		return malformed(PathExploreFilter, "missing summary")
	case r.EngagementDistribution == nil:
		return malformed(PathExploreFilter, "missing engagement_distribution")
	case r.TimeSeries == nil:
		return malformed(PathExploreFilter, "missing time_series")
	case r.TopPosts == nil:
		return malformed(PathExploreFilter, "missing top_posts")
	}
	return nil
}

func (r *RecommendResponse) validate() error {
	switch {
	case r.Recommendations == nil:
		return malformed(PathRecommend, "missing recommendations")
	case r.PlatformStats == nil:
		return malformed(PathRecommend, "missing platform_stats")
	case r.Confidence == nil:
		return malformed(PathRecommend, "missing confidence")
	}
	if r.SegmentInfo != nil && *r.SegmentInfo == (SegmentInfo{}) {
		r.SegmentInfo = nil
	}
	return nil
}

func (r *PlatformComparisonResponse) validate() error {
	switch {
	case r.PlatformA == nil:
		return malformed(PathComparePlatforms, "missing platform_a")
	case r.PlatformB == nil:
		return malformed(PathComparePlatforms, "missing platform_b")
	}
	return nil
}

func (r *RegionComparisonResponse) validate() error {
	if r.Regions == nil {
		return malformed(PathCompareRegions, "missing regions")
	}
	return nil
}

func (r *HealthResponse) validate() error {
	if r.Status == "" {
		return malformed(PathHealth, "missing status")
	}
	return nil
}
