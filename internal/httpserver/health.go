package httpserver

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"filmbuff-ai/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "FilmBuff concierge API v1"
	HealthVersion = "1.0.0"
	ServiceName   = "filmbuff-ai"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck runs every registered readiness check.
// @Summary Readiness Check
// @Description Check if the API and its dependencies are ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	names := make([]string, 0, len(srv.readiness))
	for name := range srv.readiness {
		names = append(names, name)
	}
	sort.Strings(names)

	checks := make(map[string]string, len(names))
	ready := true
	for _, name := range names {
		if err := srv.readiness[name](ctx); err != nil {
			srv.l.Warnf(ctx, "readiness %s: %v", name, err)
			checks[name] = err.Error()
			ready = false
			continue
		}
		checks[name] = "ok"
	}

	body := gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"checks":  checks,
	}
	if !ready {
		body["status"] = "not_ready"
		c.JSON(http.StatusServiceUnavailable, response.Resp{ErrorCode: http.StatusServiceUnavailable, Message: "not ready", Data: body})
		return
	}
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
