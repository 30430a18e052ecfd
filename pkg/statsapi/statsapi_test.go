package statsapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgHttp "dashboard-srv/pkg/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) IStatsAPI {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Config{
		BaseURL:    srv.URL + "/",
		HTTPClient: pkgHttp.NewClient(pkgHttp.ClientConfig{Timeout: time.Second}),
	})
}

const exploreBody = `{
	"summary": {"total_posts": 17, "avg_views": 1200.5, "avg_likes": 10, "avg_shares": 2, "avg_comments": 3, "avg_engagement_rate": 0.05},
	"engagement_distribution": {"High": 10, "Medium": 5, "Low": 2},
	"time_series": [{"Post_Date": "2024-01", "Views": 1000, "eng_rate": 0.04}],
	"top_posts": [{"Platform": "TikTok", "Content_Type": "Video", "Region": "USA", "Views": 5000, "Likes": 400, "Shares": 50, "Comments": 30, "eng_rate": 0.096}]
}`

func TestExploreFilter(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, PathExploreFilter, r.URL.Path)

		raw, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"platform":"TikTok","content_type":"","region":"USA","date_start":"","date_end":"2024-12-31"}`, string(raw))
		_, _ = w.Write([]byte(exploreBody))
	})

	out, err := c.ExploreFilter(context.Background(), ExploreRequest{Platform: "TikTok", Region: "USA", DateEnd: "2024-12-31"})
	require.NoError(t, err)

	assert.EqualValues(t, 17, out.Summary.TotalPosts)
	assert.Equal(t, Counts{{"High", 10}, {"Medium", 5}, {"Low", 2}}, out.EngagementDistribution)
	require.Len(t, out.TimeSeries, 1)
	assert.Equal(t, "2024-01", out.TimeSeries[0].PostDate)
	require.Len(t, out.TopPosts, 1)
	assert.Equal(t, "Video", out.TopPosts[0].ContentType)
}

func TestRecommend_ExpectedViewsEncoding(t *testing.T) {
	tcs := map[string]struct {
		expected *int64
		wantJSON string
	}{
		"absent is null": {
			expected: nil,
			wantJSON: `{"platform":"TikTok","content_type":"Video","region":"USA","expected_views":null}`,
		},
		"numeric is integer": {
			expected: ptr(int64(50000)),
			wantJSON: `{"platform":"TikTok","content_type":"Video","region":"USA","expected_views":50000}`,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				raw, _ := io.ReadAll(r.Body)
				assert.JSONEq(t, tc.wantJSON, string(raw))
				_, _ = w.Write([]byte(`{"segment_info": {}, "recommendations": ["Post consistently"], "platform_stats": {"views_percentiles": {"p25": 1, "p50": 2, "p75": 3}, "avg_engagement_rate": 0.05}, "confidence": 0.75}`))
			})

			out, err := c.Recommend(context.Background(), RecommendRequest{
				Platform: "TikTok", ContentType: "Video", Region: "USA", ExpectedViews: tc.expected,
			})
			require.NoError(t, err)
			assert.Nil(t, out.SegmentInfo)
			assert.InDelta(t, 0.75, *out.Confidence, 1e-9)
			assert.Nil(t, out.PlatformStats.EngagementPercentiles)
		})
	}
}

func TestComparePlatformsQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PathComparePlatforms, r.URL.Path)
		assert.Equal(t, "TikTok", r.URL.Query().Get("A"))
		assert.Equal(t, "Instagram", r.URL.Query().Get("B"))
		_, _ = w.Write([]byte(`{"platform_a": {"platform": "TikTok", "avg_views": 500000}, "platform_b": {"platform": "Instagram", "avg_views": 250000}}`))
	})

	out, err := c.ComparePlatforms(context.Background(), "TikTok", "Instagram")
	require.NoError(t, err)
	assert.Equal(t, "TikTok", out.PlatformA.Platform)
	assert.InDelta(t, 250000, out.PlatformB.AvgViews, 1e-9)
}

func TestCompareRegionsQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "USA,India,Brazil", r.URL.Query().Get("list"))
		_, _ = w.Write([]byte(`{"regions": [{"region": "USA", "avg_engagement_rate": 0.05}, {"region": "India", "avg_engagement_rate": 0.07}]}`))
	})

	out, err := c.CompareRegions(context.Background(), []string{"USA", "India", "Brazil"})
	require.NoError(t, err)
	require.Len(t, out.Regions, 2)
	assert.Equal(t, "India", out.Regions[1].Region)
}

func TestErrorKinds(t *testing.T) {
	t.Run("api error carries backend message", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error": "Data not loaded"}`))
		})

		_, err := c.GetFilterOptions(context.Background())
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Equal(t, "Data not loaded", apiErr.Message)
		assert.False(t, errors.Is(err, ErrMalformedResponse))
	})

	t.Run("undecodable body is malformed", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>oops</html>`))
		})

		_, err := c.ExploreFilter(context.Background(), ExploreRequest{})
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("missing required field is malformed", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"engagement_distribution": {}, "time_series": [], "top_posts": []}`))
		})

		_, err := c.ExploreFilter(context.Background(), ExploreRequest{})
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("wrong field type is malformed", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"regions": "USA"}`))
		})

		_, err := c.CompareRegions(context.Background(), []string{"USA"})
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()
		c := New(Config{BaseURL: srv.URL, HTTPClient: pkgHttp.NewClient(pkgHttp.ClientConfig{Timeout: time.Second})})

		_, err := c.Health(context.Background())
		assert.ErrorIs(t, err, ErrRequestFailed)
	})
}

func TestCountsRoundTripKeepsOrder(t *testing.T) {
	var c Counts
	require.NoError(t, json.Unmarshal([]byte(`{"Low": 2, "High": 10.0, "Medium": 5}`), &c))
	assert.Equal(t, Counts{{"Low", 2}, {"High", 10}, {"Medium", 5}}, c)

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `{"Low":2,"High":10,"Medium":5}`, string(out))

	require.Error(t, json.Unmarshal([]byte(`[1,2]`), &c))
}

func ptr[T any](v T) *T { return &v }
