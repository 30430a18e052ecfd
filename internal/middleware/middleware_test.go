package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dashboard-srv/config"
	"dashboard-srv/internal/dashboard"
	"dashboard-srv/internal/model"
	"dashboard-srv/pkg/log"
	"dashboard-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mountRecorder struct {
	dashboard.UseCase
	mounted []string
	err     error
}

func (m *mountRecorder) Mount(ctx context.Context, sc model.Scope) (model.DashboardState, error) {
	m.mounted = append(m.mounted, sc.SessionID)
	return model.NewDashboardState(sc.SessionID, time.Now()), m.err
}

func newTestRouter(uc dashboard.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(log.NewNopLogger(), config.SessionConfig{CookieName: "dashboard_session", TTL: time.Hour}, uc)

	r := gin.New()
	r.Use(RequestID(), mw.Session())
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, scope.GetScopeFromContext(c.Request.Context()).SessionID)
	})
	return r
}

func TestSessionIssuesCookie(t *testing.T) {
	uc := &mountRecorder{}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	require.Equal(t, http.StatusOK, w.Code)
	id := w.Body.String()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, []string{id}, uc.mounted)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "dashboard_session="+id)
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
}

func TestSessionReusesCookieAndHeader(t *testing.T) {
	uc := &mountRecorder{}
	r := newTestRouter(uc)
	id := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "dashboard_session", Value: id})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, id, w.Body.String())

	other := uuid.NewString()
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(HeaderSessionID, other)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, other, w.Body.String())
}

func TestSessionReplacesMalformedID(t *testing.T) {
	uc := &mountRecorder{}
	r := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "dashboard_session", Value: "../../etc/passwd"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.NotEqual(t, "../../etc/passwd", w.Body.String())
	_, err := uuid.Parse(w.Body.String())
	assert.NoError(t, err)
}

func TestSessionMountFailure(t *testing.T) {
	uc := &mountRecorder{err: errors.New("store down")}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(log.NewNopLogger(), nil))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS(config.CORSConfig{AllowedOrigins: []string{"https://stats.example.com"}}))
	r.PUT("/api/v1/screen", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/screen", nil)
	req.Header.Set("Origin", "https://stats.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	req.Header.Set("Access-Control-Request-Headers", HeaderSessionID)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://stats.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodOptions, "/api/v1/screen", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
