package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/buildwise/smart-estimator/internal/buildwise/backend"
)

// Pinger reports whether the estimation service answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status    string          `json:"status"`
	Timestamp time.Time       `json:"timestamp"`
	Service   string          `json:"service"`
	Version   string          `json:"version"`
	Backend   string          `json:"backend,omitempty"`
	Calls     backend.Metrics `json:"backend_calls"`
}

type HealthHandler struct {
	serviceName string
	version     string
	backend     Pinger
}

func NewHealthHandler(serviceName, version string, b Pinger) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		backend:     b,
	}
}

// HealthCheck stays 200 when the estimation service is down: this service
// still serves the page, it just cannot estimate.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	backendStatus := "disabled"
	if h.backend != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.backend.Ping(pingCtx); err != nil {
			backendStatus = "down"
		} else {
			backendStatus = "up"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Backend:   backendStatus,
		Calls:     backend.GetMetrics(),
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
