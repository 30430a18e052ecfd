package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	pkgHttp "dashboard-srv/pkg/http"
)

func defaultHTTPClient() pkgHttp.IClient {
	return pkgHttp.NewClient(pkgHttp.ClientConfig{
		Timeout: DefaultTimeout,
	})
}

func trimSlash(s string) string {
	return strings.TrimRight(s, "/")
}

type validator interface {
	validate() error
}

// Health calls GET /health.
func (c *statsImpl) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.get(ctx, PathHealth, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFilterOptions calls GET /filters/options.
func (c *statsImpl) GetFilterOptions(ctx context.Context) (*FilterOptionsResponse, error) {
	var out FilterOptionsResponse
	if err := c.get(ctx, PathFilterOptions, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExploreFilter calls POST /explore/filter.
func (c *statsImpl) ExploreFilter(ctx context.Context, req ExploreRequest) (*ExploreResponse, error) {
	var out ExploreResponse
	if err := c.post(ctx, PathExploreFilter, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Recommend calls POST /recommend.
func (c *statsImpl) Recommend(ctx context.Context, req RecommendRequest) (*RecommendResponse, error) {
	var out RecommendResponse
	if err := c.post(ctx, PathRecommend, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ComparePlatforms calls GET /compare/platforms?A=..&B=..
func (c *statsImpl) ComparePlatforms(ctx context.Context, platformA, platformB string) (*PlatformComparisonResponse, error) {
	q := url.Values{}
	q.Set(QueryPlatformA, platformA)
	q.Set(QueryPlatformB, platformB)

	var out PlatformComparisonResponse
	if err := c.get(ctx, PathComparePlatforms, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CompareRegions calls GET /compare/regions?list=a,b,c
func (c *statsImpl) CompareRegions(ctx context.Context, regions []string) (*RegionComparisonResponse, error) {
	q := url.Values{}
	q.Set(QueryRegionList, strings.Join(regions, ","))

	var out RegionComparisonResponse
	if err := c.get(ctx, PathCompareRegions, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *statsImpl) get(ctx context.Context, path string, q url.Values, out validator) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	body, status, err := c.httpClient.Get(ctx, u, nil)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %v", ErrRequestFailed, path, err)
	}
	return decode(path, body, status, out)
}

func (c *statsImpl) post(ctx context.Context, path string, in any, out validator) error {
	body, status, err := c.httpClient.Post(ctx, c.baseURL+path, in, nil)
	if err != nil {
		return fmt.Errorf("%w: POST %s: %v", ErrRequestFailed, path, err)
	}
	return decode(path, body, status, out)
}

func decode(path string, body []byte, status int, out validator) error {
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		apiErr := &APIError{Endpoint: path, StatusCode: status}
		var eb errorBody
		if json.Unmarshal(body, &eb) == nil {
			apiErr.Message = eb.Error
		}
		return apiErr
	}
	if err := json.Unmarshal(body, out); err != nil {
		return malformed(path, err.Error())
	}
	return out.validate()
}
