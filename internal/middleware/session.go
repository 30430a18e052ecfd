package middleware

import (
	"net/http"

	"dashboard-srv/pkg/response"
	"dashboard-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Session resolves the dashboard session from the cookie or X-Session-ID header,
// issuing a new one when absent or malformed, and mounts its state.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		sessionID := c.GetHeader(HeaderSessionID)
		if sessionID == "" {
			sessionID, _ = c.Cookie(m.sessionCfg.CookieName)
		}
		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.NewString()
			m.l.Debugf(ctx, "middleware.Session: issued session %s", sessionID)
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(m.sessionCfg.CookieName, sessionID, int(m.sessionCfg.TTL.Seconds()), "/", "", m.sessionCfg.CookieSecure, true)
		c.Header(HeaderSessionID, sessionID)

		sc := scope.NewScope(sessionID)
		ctx = scope.SetScopeToContext(ctx, sc)
		c.Request = c.Request.WithContext(ctx)

		if _, err := m.dashboardUC.Mount(ctx, sc); err != nil {
			m.l.Errorf(ctx, "middleware.Session: Mount failed: %v", err)
			response.Error(c, err, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
