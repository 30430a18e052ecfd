package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dashboard-srv/config"
	"dashboard-srv/pkg/log"
	"dashboard-srv/pkg/statsapi"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatsAPI struct {
	healthErr error
}

func (f fakeStatsAPI) Health(ctx context.Context) (*statsapi.HealthResponse, error) {
	if f.healthErr != nil {
		return nil, f.healthErr
	}
	return &statsapi.HealthResponse{Status: "healthy"}, nil
}

func (fakeStatsAPI) GetFilterOptions(ctx context.Context) (*statsapi.FilterOptionsResponse, error) {
	return &statsapi.FilterOptionsResponse{Stats: &statsapi.FilterOptionStat{}}, nil
}

func (fakeStatsAPI) ExploreFilter(ctx context.Context, req statsapi.ExploreRequest) (*statsapi.ExploreResponse, error) {
	return &statsapi.ExploreResponse{Summary: &statsapi.ExploreSummary{}}, nil
}

func (fakeStatsAPI) Recommend(ctx context.Context, req statsapi.RecommendRequest) (*statsapi.RecommendResponse, error) {
	return &statsapi.RecommendResponse{PlatformStats: &statsapi.PlatformStats{}}, nil
}

func (fakeStatsAPI) ComparePlatforms(ctx context.Context, a, b string) (*statsapi.PlatformComparisonResponse, error) {
	return &statsapi.PlatformComparisonResponse{}, nil
}

func (fakeStatsAPI) CompareRegions(ctx context.Context, regions []string) (*statsapi.RegionComparisonResponse, error) {
	return &statsapi.RegionComparisonResponse{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Session: config.SessionConfig{CookieName: "dashboard_session", TTL: time.Hour, Store: config.SessionStoreMemory},
	}
}

func newTestServer(t *testing.T, api statsapi.IStatsAPI) *HTTPServer {
	t.Helper()
	srv, err := New(log.NewNopLogger(), Config{
		Logger:   log.NewNopLogger(),
		Port:     8080,
		Mode:     gin.TestMode,
		Config:   testConfig(),
		StatsAPI: api,
	})
	require.NoError(t, err)
	require.NoError(t, srv.mapHandlers(context.Background()))
	return srv
}

func get(srv *HTTPServer, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestValidate(t *testing.T) {
	_, err := New(log.NewNopLogger(), Config{Logger: log.NewNopLogger(), Mode: gin.TestMode, Config: testConfig(), StatsAPI: fakeStatsAPI{}})
	assert.EqualError(t, err, "port is required")

	_, err = New(log.NewNopLogger(), Config{Logger: log.NewNopLogger(), Port: 1, Mode: gin.TestMode, Config: testConfig()})
	assert.EqualError(t, err, "statsAPI is required")

	cfg := testConfig()
	cfg.Session.Store = config.SessionStoreRedis
	_, err = New(log.NewNopLogger(), Config{Logger: log.NewNopLogger(), Port: 1, Mode: gin.TestMode, Config: cfg, StatsAPI: fakeStatsAPI{}})
	assert.EqualError(t, err, "redisClient is required when session.store is redis")
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, fakeStatsAPI{})

	for _, path := range []string{"/health", "/live"} {
		w := get(srv, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName)
	}

	w := get(srv, "/ready")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"backend":"connected"`)
}

func TestReadyCheckBackendDown(t *testing.T) {
	srv := newTestServer(t, fakeStatsAPI{healthErr: errors.New("connection refused")})

	w := get(srv, "/ready")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestOptionalDomainsDisabled(t *testing.T) {
	srv := newTestServer(t, fakeStatsAPI{})

	assert.Nil(t, srv.presetUC)
	assert.NotNil(t, srv.dashboardUC)

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/exports/explore", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
