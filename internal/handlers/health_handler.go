package handlers

import (
	"net/http"
	"time"

	"auroramart/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ArtifactCheck reports whether a model artifact is usable
type ArtifactCheck func() bool

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db        *gorm.DB
	artifacts map[string]ArtifactCheck
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db *gorm.DB, artifacts map[string]ArtifactCheck) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, artifacts: artifacts}
}

// HealthCheck reports database connectivity and model artifact availability.
// Missing artifacts degrade recommendations but never fail the check.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,artifacts=object} "Service is healthy or degraded"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request().Context())
	}
	if err != nil {
		errorResponse := errors.NewErrorResponse(
			errors.SystemServiceUnavailable,
			getTraceIDFromContext(c),
			errors.WithDetails("Database connection failed"),
		)
		return c.JSON(http.StatusServiceUnavailable, errorResponse)
	}

	status := "healthy"
	artifacts := make(map[string]bool, len(h.artifacts))
	for name, check := range h.artifacts {
		ok := check()
		artifacts[name] = ok
		if !ok {
			status = "degraded"
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    status,
		"time":      time.Now().UTC().Format(time.RFC3339),
		"artifacts": artifacts,
	})
}

// Helper to get trace ID from context
func getTraceIDFromContext(c echo.Context) string {
	traceID := c.Response().Header().Get("X-Trace-ID")
	if traceID == "" {
		traceID = getTraceID(c)
	}
	if traceID == "" {
		traceID = "unknown"
	}
	return traceID
}
