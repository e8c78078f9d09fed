package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"remediation-portal/internal/logger"
)

// checkTimeout bounds each dependency check.
const checkTimeout = 2 * time.Second

// Pinger reports whether a dependency is reachable. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	checks map[string]Pinger
}

// NewHealthHandler creates a new HealthHandler. Every named check must pass
// for the service to be ready.
func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// HealthResponse represents the response for health check endpoints.
type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version,omitempty"`
	Services map[string]string `json:"services,omitempty"`
}

// Health handles GET /health - comprehensive health check.
func (h *HealthHandler) Health(c *gin.Context) {
	services, healthy := h.run(c.Request.Context())
	if !healthy {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Services: services,
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Version:  Version,
		Services: services,
	})
}

// Ready handles GET /ready - readiness probe for Kubernetes.
func (h *HealthHandler) Ready(c *gin.Context) {
	if _, healthy := h.run(c.Request.Context()); !healthy {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live handles GET /live - liveness probe for Kubernetes.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (h *HealthHandler) run(ctx context.Context) (map[string]string, bool) {
	services := make(map[string]string, len(h.checks))
	healthy := true
	for name, check := range h.checks {
		checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := check.Ping(checkCtx)
		cancel()
		if err != nil {
			logger.Warn("Health check failed",
				slog.String("service", name),
				slog.String("error", err.Error()))
			services[name] = "unhealthy"
			healthy = false
			continue
		}
		services[name] = "healthy"
	}
	return services, healthy
}
