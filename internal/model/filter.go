package model

// FilterOptions is the catalog of selectable values plus global stats.
type FilterOptions struct {
	Platforms    []string         `json:"platforms"`
	ContentTypes []string         `json:"content_types"`
	Regions      []string         `json:"regions"`
	DateRange    *DateRange       `json:"date_range,omitempty"`
	Stats        FilterOptionStat `json:"stats"`
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

// Filters holds the explore form. Empty strings mean no constraint.
type Filters struct {
	Platform    string `json:"platform"`
	ContentType string `json:"content_type"`
	Region      string `json:"region"`
	DateStart   string `json:"date_start"`
	DateEnd     string `json:"date_end"`
}
