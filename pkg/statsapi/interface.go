package statsapi

import "context"

// IStatsAPI is the client for the social-media statistics backend.
// Implementations are safe for concurrent use.
type IStatsAPI interface {
	Health(ctx context.Context) (*HealthResponse, error)
	GetFilterOptions(ctx context.Context) (*FilterOptionsResponse, error)
	ExploreFilter(ctx context.Context, req ExploreRequest) (*ExploreResponse, error)
	Recommend(ctx context.Context, req RecommendRequest) (*RecommendResponse, error)
	ComparePlatforms(ctx context.Context, platformA, platformB string) (*PlatformComparisonResponse, error)
	CompareRegions(ctx context.Context, regions []string) (*RegionComparisonResponse, error)
}

// New creates a new backend client. Returns the interface.
func New(cfg Config) IStatsAPI {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaultHTTPClient()
	}
	return &statsImpl{
		baseURL:    trimSlash(cfg.BaseURL),
		httpClient: cfg.HTTPClient,
	}
}
