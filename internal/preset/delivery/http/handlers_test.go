package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"dashboard-srv/config"
	"dashboard-srv/internal/dashboard"
	"dashboard-srv/internal/middleware"
	"dashboard-srv/internal/model"
	"dashboard-srv/internal/preset"
	"dashboard-srv/pkg/log"
	"dashboard-srv/pkg/paginator"

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
	created []preset.CreateInput
	applied []string
	deleted []string
	pages   []paginator.PaginateQuery
	err     error
}

func (f *fakeUseCase) Create(ctx context.Context, sc model.Scope, input preset.CreateInput) (model.FilterPreset, error) {
	if f.err != nil {
		return model.FilterPreset{}, f.err
	}
	f.created = append(f.created, input)
	p := model.FilterPreset{ID: "p1", Name: input.Name}
	if input.Filters != nil {
		p.Filters = *input.Filters
	}
	return p, nil
}

func (f *fakeUseCase) List(ctx context.Context, sc model.Scope) ([]model.FilterPreset, error) {
	return []model.FilterPreset{{ID: "p1", Name: "US", Filters: model.Filters{Region: "USA"}}}, nil
}

func (f *fakeUseCase) ListPage(ctx context.Context, sc model.Scope, input preset.ListInput) (preset.ListOutput, error) {
	f.pages = append(f.pages, input.PaginateQuery)
	presets, _ := f.List(ctx, sc)
	return preset.ListOutput{Presets: presets, Paginator: paginator.New(paginator.PaginateQuery{Page: 1, Limit: 20}, 1, 1)}, nil
}

func (f *fakeUseCase) Apply(ctx context.Context, sc model.Scope, input preset.ApplyInput) (model.DashboardState, error) {
	if f.err != nil {
		return model.DashboardState{}, f.err
	}
	f.applied = append(f.applied, input.ID)
	return model.DashboardState{Filters: model.Filters{Region: "USA"}}, nil
}

func (f *fakeUseCase) Delete(ctx context.Context, sc model.Scope, input preset.DeleteInput) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, input.ID)
	return nil
}

func newTestRouter(uc preset.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNopLogger()
	mw := middleware.New(l, config.SessionConfig{CookieName: "dashboard_session", TTL: time.Hour}, mountOnly{})

	r := gin.New()
	New(l, uc, nil).RegisterRoutes(r.Group(""), mw)
	return r
}

func serve(r *gin.Engine, method, path, body, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set(middleware.HeaderSessionID, uuid.NewString())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAPICreate(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	w := serve(r, http.MethodPost, "/api/v1/presets", `{"name":"US","filters":{"region":"USA"}}`, "application/json")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, uc.created, 1)
	require.NotNil(t, uc.created[0].Filters)
	assert.Equal(t, "USA", uc.created[0].Filters.Region)

	var resp struct {
		Data presetResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "US", resp.Data.Name)
}

func TestAPICreateWithoutName(t *testing.T) {
	r := newTestRouter(&fakeUseCase{})

	w := serve(r, http.MethodPost, "/api/v1/presets", `{}`, "application/json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPIErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		method string
		path   string
		status int
	}{
		{name: "duplicate", err: preset.ErrDuplicateName, method: http.MethodPost, path: "/api/v1/presets", status: http.StatusConflict},
		{name: "apply missing", err: preset.ErrPresetNotFound, method: http.MethodPost, path: "/api/v1/presets/x/apply", status: http.StatusNotFound},
		{name: "delete missing", err: preset.ErrPresetNotFound, method: http.MethodDelete, path: "/api/v1/presets/x", status: http.StatusNotFound},
		{name: "storage down", err: errors.New("dial tcp: refused"), method: http.MethodDelete, path: "/api/v1/presets/x", status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&fakeUseCase{err: tt.err})
			w := serve(r, tt.method, tt.path, `{"name":"dup"}`, "application/json")
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestAPIListAndApply(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	w := serve(r, http.MethodGet, "/api/v1/presets?page=2&limit=5", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"region":"USA"`)
	assert.Contains(t, w.Body.String(), `"total_pages":1`)
	assert.Equal(t, []paginator.PaginateQuery{{Page: 2, Limit: 5}}, uc.pages)

	w = serve(r, http.MethodPost, "/api/v1/presets/p1/apply", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"p1"}, uc.applied)
}

func TestWebFormsRedirect(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)
	form := url.Values{"name": {"Morning"}}.Encode()

	w := serve(r, http.MethodPost, "/presets", form, "application/x-www-form-urlencoded")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	require.Len(t, uc.created, 1)
	assert.Nil(t, uc.created[0].Filters)

	w = serve(r, http.MethodPost, "/presets/p1/apply", "", "")
	assert.Equal(t, http.StatusSeeOther, w.Code)

	w = serve(r, http.MethodPost, "/presets/p1/delete", "", "")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, []string{"p1"}, uc.deleted)
}

func TestWebFormError(t *testing.T) {
	r := newTestRouter(&fakeUseCase{err: preset.ErrNameRequired})

	w := serve(r, http.MethodPost, "/presets", url.Values{"name": {"x"}}.Encode(), "application/x-www-form-urlencoded")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Preset name is required", w.Body.String())
}
