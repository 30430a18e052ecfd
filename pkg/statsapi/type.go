package statsapi

import pkgHttp "dashboard-srv/pkg/http"

// Config holds configuration for the backend client.
type Config struct {
	BaseURL    string
	HTTPClient pkgHttp.IClient
}

// statsImpl implements IStatsAPI.
type statsImpl struct {
	baseURL    string
	httpClient pkgHttp.IClient
}

// =====================================================
// Requests
// =====================================================

// ExploreRequest is the body of POST /explore/filter. Empty strings mean no constraint.
type ExploreRequest struct {
	Platform    string `json:"platform"`
	ContentType string `json:"content_type"`
	Region      string `json:"region"`
	DateStart   string `json:"date_start"`
	DateEnd     string `json:"date_end"`
}

// RecommendRequest is the body of POST /recommend. A nil ExpectedViews is sent as null.
type RecommendRequest struct {
	Platform      string `json:"platform"`
	ContentType   string `json:"content_type"`
	Region        string `json:"region"`
	ExpectedViews *int64 `json:"expected_views"`
}

// =====================================================
// Responses
// =====================================================

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status       string   `json:"status"`
	DataLoaded   bool     `json:"data_loaded"`
	DataRows     int64    `json:"data_rows"`
	ModelsLoaded []string `json:"models_loaded"`
}

// FilterOptionsResponse is the body of GET /filters/options.
type FilterOptionsResponse struct {
	Platforms    []string          `json:"platforms"`
	ContentTypes []string          `json:"content_types"`
	Regions      []string          `json:"regions"`
	DateRange    *DateRange        `json:"date_range,omitempty"`
	Stats        *FilterOptionStat `json:"stats"`
}

type DateRange struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

type FilterOptionStat struct {
	TotalPosts        int64   `json:"total_posts"`
	AvgViews          float64 `json:"avg_views"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
}

// ExploreResponse is the body of POST /explore/filter.
type ExploreResponse struct {
	Summary                *ExploreSummary   `json:"summary"`
	EngagementDistribution Counts            `json:"engagement_distribution"`
	TimeSeries             []TimeSeriesPoint `json:"time_series"`
	TopPosts               []Post            `json:"top_posts"`
}

type ExploreSummary struct {
	TotalPosts        int64   `json:"total_posts"`
	AvgViews          float64 `json:"avg_views"`
	AvgLikes          float64 `json:"avg_likes"`
	AvgShares         float64 `json:"avg_shares"`
	AvgComments       float64 `json:"avg_comments"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
}

type TimeSeriesPoint struct {
	PostDate string  `json:"Post_Date"`
	Views    float64 `json:"Views"`
	EngRate  float64 `json:"eng_rate"`
}

type Post struct {
	Platform    string  `json:"Platform"`
	ContentType string  `json:"Content_Type"`
	Region      string  `json:"Region"`
	Views       float64 `json:"Views"`
	Likes       float64 `json:"Likes"`
	Shares      float64 `json:"Shares"`
	Comments    float64 `json:"Comments"`
	EngRate     float64 `json:"eng_rate"`
}

// RecommendResponse is the body of POST /recommend.
type RecommendResponse struct {
	SegmentInfo     *SegmentInfo   `json:"segment_info"`
	Recommendations []string       `json:"recommendations"`
	PlatformStats   *PlatformStats `json:"platform_stats"`
	Confidence      *float64       `json:"confidence"`
}

// SegmentInfo is empty when no expected views were supplied.
type SegmentInfo struct {
	StrategySegment     string `json:"strategy_segment"`
	StrategyDescription string `json:"strategy_description"`
}

type PlatformStats struct {
	ViewsPercentiles      Percentiles  `json:"views_percentiles"`
	EngagementPercentiles *Percentiles `json:"engagement_percentiles,omitempty"`
	AvgEngagementRate     float64      `json:"avg_engagement_rate"`
}

type Percentiles struct {
	P25 float64 `json:"p25"`
	P50 float64 `json:"p50"`
	P75 float64 `json:"p75"`
}

// PlatformComparisonResponse is the body of GET /compare/platforms.
type PlatformComparisonResponse struct {
	PlatformA *PlatformSummary `json:"platform_a"`
	PlatformB *PlatformSummary `json:"platform_b"`
}

type PlatformSummary struct {
	Platform               string  `json:"platform"`
	AvgViews               float64 `json:"avg_views"`
	AvgEngagementRate      float64 `json:"avg_engagement_rate"`
	AvgLikes               float64 `json:"avg_likes"`
	AvgShares              float64 `json:"avg_shares"`
	AvgComments            float64 `json:"avg_comments"`
	TotalPosts             int64   `json:"total_posts"`
	EngagementDistribution Counts  `json:"engagement_distribution"`
}

// RegionComparisonResponse is the body of GET /compare/regions.
type RegionComparisonResponse struct {
	Regions []RegionSummary `json:"regions"`
}

type RegionSummary struct {
	Region                 string  `json:"region"`
	AvgViews               float64 `json:"avg_views"`
	AvgEngagementRate      float64 `json:"avg_engagement_rate"`
	AvgLikes               float64 `json:"avg_likes"`
	TotalPosts             int64   `json:"total_posts"`
	EngagementDistribution Counts  `json:"engagement_distribution"`
}

type errorBody struct {
	Error string `json:"error"`
}
