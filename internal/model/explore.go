package model

// Bucket is one label of a categorical distribution.
type Bucket struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// EngagementDistribution keeps the order the backend listed its labels in.
type EngagementDistribution []Bucket

// Total sums all bucket counts.
func (d EngagementDistribution) Total() int64 {
	var total int64
	for _, b := range d {
		total += b.Count
	}
	return total
}

// ExploreResult is the explore screen's result slot.
type ExploreResult struct {
	Summary                ExploreSummary         `json:"summary"`
	EngagementDistribution EngagementDistribution `json:"engagement_distribution"`
	TimeSeries             []TimeSeriesPoint      `json:"time_series"`
	TopPosts               []PostRecord           `json:"top_posts"`
}

type ExploreSummary struct {
	TotalPosts        int64   `json:"total_posts"`
	AvgViews          float64 `json:"avg_views"`
	AvgLikes          float64 `json:"avg_likes"`
	AvgShares         float64 `json:"avg_shares"`
	AvgComments       float64 `json:"avg_comments"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
}

// TimeSeriesPoint is one monthly aggregate, PostDate formatted as YYYY-MM.
type TimeSeriesPoint struct {
	PostDate string  `json:"post_date"`
	Views    float64 `json:"views"`
	EngRate  float64 `json:"eng_rate"`
}

type PostRecord struct {
	Platform    string  `json:"platform"`
	ContentType string  `json:"content_type"`
	Region      string  `json:"region"`
	Views       float64 `json:"views"`
	Likes       float64 `json:"likes"`
	Shares      float64 `json:"shares"`
	Comments    float64 `json:"comments"`
	EngRate     float64 `json:"eng_rate"`
}
