package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dashboard-srv/config"
	"dashboard-srv/internal/dashboard"
	"dashboard-srv/internal/export"
	"dashboard-srv/internal/middleware"
	"dashboard-srv/internal/model"
	"dashboard-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mountOnly struct {
	dashboard.UseCase
}

func (mountOnly) Mount(ctx context.Context, sc model.Scope) (model.DashboardState, error) {
	return model.NewDashboardState(sc.SessionID, time.Now()), nil
}

type fakeUseCase struct {
	out export.ExportOutput
	err error
}

func (f fakeUseCase) ExportExplore(ctx context.Context, sc model.Scope) (export.ExportOutput, error) {
	return f.out, f.err
}

func serve(uc export.UseCase, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	l := log.NewNopLogger()
	mw := middleware.New(l, config.SessionConfig{CookieName: "dashboard_session", TTL: time.Hour}, mountOnly{})
	r := gin.New()
	New(l, uc, nil).RegisterRoutes(r.Group(""), mw)

	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.Header.Set(middleware.HeaderSessionID, uuid.NewString())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestExportExplore(t *testing.T) {
	uc := fakeUseCase{out: export.ExportOutput{FileName: "explore.csv", URL: "https://files/x.csv", Size: 2048}}

	w := serve(uc, "/api/v1/exports/explore")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"url":"https://files/x.csv"`)
	assert.Contains(t, w.Body.String(), `"size_human":"2.0 kB"`)

	w = serve(uc, "/exports/explore")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "https://files/x.csv", w.Header().Get("Location"))
}

func TestExportExploreErrors(t *testing.T) {
	w := serve(fakeUseCase{err: export.ErrNothingToExport}, "/api/v1/exports/explore")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = serve(fakeUseCase{err: export.ErrUploadFailed}, "/exports/explore")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
