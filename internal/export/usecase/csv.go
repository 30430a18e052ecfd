package usecase

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"dashboard-srv/internal/model"
)

// buildExploreCSV writes the filters, the summary, the distribution and the
// top posts as consecutive sections separated by blank rows.
func buildExploreCSV(filters model.Filters, r model.ExploreResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"section", "field", "value"},
		{"filters", "platform", filters.Platform},
		{"filters", "content_type", filters.ContentType},
		{"filters", "region", filters.Region},
		{"filters", "date_start", filters.DateStart},
		{"filters", "date_end", filters.DateEnd},
		{"summary", "total_posts", strconv.FormatInt(r.Summary.TotalPosts, 10)},
		{"summary", "avg_views", formatFloat(r.Summary.AvgViews)},
		{"summary", "avg_likes", formatFloat(r.Summary.AvgLikes)},
		{"summary", "avg_shares", formatFloat(r.Summary.AvgShares)},
		{"summary", "avg_comments", formatFloat(r.Summary.AvgComments)},
		{"summary", "avg_engagement_rate", formatFloat(r.Summary.AvgEngagementRate)},
	}
	for _, b := range r.EngagementDistribution {
		rows = append(rows, []string{"engagement_distribution", b.Label, strconv.FormatInt(b.Count, 10)})
	}
	for _, p := range r.TimeSeries {
		rows = append(rows, []string{"time_series", p.PostDate, formatFloat(p.EngRate)})
		if p.Views > 0 {
			rows = append(rows, []string{"time_series_views", p.PostDate, formatFloat(p.Views)})
		}
	}

	if len(r.TopPosts) > 0 {
		rows = append(rows,
			[]string{},
			[]string{"platform", "content_type", "region", "views", "likes", "shares", "comments", "eng_rate"},
		)
		for _, p := range r.TopPosts {
			rows = append(rows, []string{
				p.Platform,
				p.ContentType,
				p.Region,
				formatFloat(p.Views),
				formatFloat(p.Likes),
				formatFloat(p.Shares),
				formatFloat(p.Comments),
				formatFloat(p.EngRate),
			})
		}
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
