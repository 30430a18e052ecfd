package model

const (
	DefaultPlatform    = "TikTok"
	DefaultContentType = "Video"
	DefaultRegion      = "USA"
)

// RecommendationForm holds the recommend screen inputs. A nil ExpectedViews is sent as null.
type RecommendationForm struct {
	Platform      string `json:"platform"`
	ContentType   string `json:"content_type"`
	Region        string `json:"region"`
	ExpectedViews *int64 `json:"expected_views"`
}

// DefaultRecommendationForm is the form as first shown.
func DefaultRecommendationForm() RecommendationForm {
	return RecommendationForm{
		Platform:    DefaultPlatform,
		ContentType: DefaultContentType,
		Region:      DefaultRegion,
	}
}

// RecommendationResult is the recommend screen's result slot.
type RecommendationResult struct {
	SegmentInfo     *SegmentInfo       `json:"segment_info,omitempty"`
	Confidence      float64            `json:"confidence"`
	Recommendations []string           `json:"recommendations"`
	PlatformStats   RecommendationStat `json:"platform_stats"`
}

type SegmentInfo struct {
	StrategySegment     string `json:"strategy_segment"`
	StrategyDescription string `json:"strategy_description"`
}

type RecommendationStat struct {
	ViewsPercentiles      Percentiles  `json:"views_percentiles"`
	EngagementPercentiles *Percentiles `json:"engagement_percentiles,omitempty"`
	AvgEngagementRate     float64      `json:"avg_engagement_rate"`
}

type Percentiles struct {
	P25 float64 `json:"p25"`
	P50 float64 `json:"p50"`
	P75 float64 `json:"p75"`
}
