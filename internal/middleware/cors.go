package middleware

import (
	"time"

	"dashboard-srv/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured origins to call the JSON API with the session header.
// With no origins configured every origin is allowed without credentials.
func CORS(corsCfg config.CORSConfig) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", HeaderSessionID, HeaderRequestID, "HX-Request", "HX-Target"},
		ExposeHeaders: []string{HeaderSessionID, HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(corsCfg.AllowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = corsCfg.AllowedOrigins
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}
