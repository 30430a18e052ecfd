package httpserver

import (
	"context"
	"net/http"
	"sync"
	"time"

	"dashboard-srv/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Social media stats dashboard"
	HealthVersion = "1.0.0"
	ServiceName   = "dashboard-srv"

	readyTimeout = 3 * time.Second
)

type readinessCheck struct {
	name  string
	check func(ctx context.Context) error
}

// healthCheck handles health check requests
// @Summary Health Check
// @Tags Health
// @Produce json
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck pings the backend and every configured integration concurrently.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	var (
		mu       sync.Mutex
		statuses = map[string]string{}
		ready    = true
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, rc := range srv.readinessChecks() {
		g.Go(func() error {
			status := "connected"
			if err := rc.check(gctx); err != nil {
				srv.l.Warnf(ctx, "httpserver.readyCheck: %s not ready: %v", rc.name, err)
				status = err.Error()
			}
			mu.Lock()
			defer mu.Unlock()
			statuses[rc.name] = status
			if status != "connected" {
				ready = false
			}
			return nil
		})
	}
	_ = g.Wait()

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":       "not ready",
			"message":      "One or more dependencies are unavailable",
			"dependencies": statuses,
		})
		return
	}
	response.OK(c, gin.H{
		"status":       "ready",
		"message":      HealthMessage,
		"version":      HealthVersion,
		"service":      ServiceName,
		"dependencies": statuses,
	})
}

func (srv *HTTPServer) readinessChecks() []readinessCheck {
	checks := []readinessCheck{{name: "backend", check: func(ctx context.Context) error {
		_, err := srv.statsAPI.Health(ctx)
		return err
	}}}
	if srv.redisClient != nil {
		checks = append(checks, readinessCheck{name: "redis", check: srv.redisClient.Ping})
	}
	if srv.postgresDB != nil {
		checks = append(checks, readinessCheck{name: "postgres", check: srv.postgresDB.PingContext})
	}
	if srv.minioClient != nil {
		checks = append(checks, readinessCheck{name: "minio", check: srv.minioClient.HealthCheck})
	}
	if srv.kafkaProducer != nil {
		checks = append(checks, readinessCheck{name: "kafka", check: func(context.Context) error {
			return srv.kafkaProducer.HealthCheck()
		}})
	}
	return checks
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
