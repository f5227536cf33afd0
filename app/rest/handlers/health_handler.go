package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	db     Pinger
	kratos Pinger
	logger *slog.Logger
}

// NewHealthHandler creates a health handler probing the profile store and the
// identity provider.
func NewHealthHandler(db, kratos Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		kratos: kratos,
		logger: logger.With("component", "health_handler"),
	}
}

// HealthResponse is the basic health payload.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Uptime    string    `json:"uptime"`
}

// ReadinessResponse reports per-dependency status.
type ReadinessResponse struct {
	Status    string                  `json:"status"`
	Timestamp time.Time               `json:"timestamp"`
	Service   string                  `json:"service"`
	Checks    map[string]HealthStatus `json:"checks"`
}

// HealthStatus describes one dependency probe.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

var startTime = time.Now()

// HealthCheck reports that the process is up.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Service:   "kalinga-portal",
		Uptime:    time.Since(startTime).String(),
	})
}

// ReadinessCheck probes the profile store and the identity provider.
func (h *HealthHandler) ReadinessCheck(c echo.Context) error {
	ctx := c.Request().Context()
	checks := map[string]HealthStatus{
		"database": h.probe(ctx, h.db),
		"kratos":   h.probe(ctx, h.kratos),
	}

	allHealthy := true
	for _, check := range checks {
		if check.Status != "healthy" {
			allHealthy = false
			break
		}
	}

	status := "ready"
	statusCode := http.StatusOK
	if !allHealthy {
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, ReadinessResponse{
		Status:    status,
		Timestamp: time.Now(),
		Service:   "kalinga-portal",
		Checks:    checks,
	})
}

// LivenessCheck reports that the process is alive.
func (h *HealthHandler) LivenessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Service:   "kalinga-portal",
		Uptime:    time.Since(startTime).String(),
	})
}

func (h *HealthHandler) probe(ctx context.Context, p Pinger) HealthStatus {
	start := time.Now()
	if err := p.HealthCheck(ctx); err != nil {
		h.logger.Warn("dependency probe failed", "error", err)
		return HealthStatus{Status: "unhealthy", Message: err.Error(), Latency: time.Since(start).String()}
	}
	return HealthStatus{Status: "healthy", Latency: time.Since(start).String()}
}
