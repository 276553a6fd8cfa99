package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"transaction-insights/internal/buildinfo"
	"transaction-insights/internal/errors"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker is satisfied by *database.DB.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type HealthCheckHandler struct {
	db HealthChecker
}

func NewHealthCheckHandler(db HealthChecker) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Version  string `json:"version"`
	Time     string `json:"time"`
}

// HealthCheck pings the database within healthCheckTimeout.
// @Summary Health check
// @Tags Operations
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.HealthCheck(ctx); err != nil {
		slog.Warn("health check failed", "trace_id", getTraceID(c), "error", err)
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	return c.JSON(http.StatusOK, healthResponse{
		Status:   "healthy",
		Database: "up",
		Version:  buildinfo.Version,
		Time:     time.Now().UTC().Format(time.RFC3339),
	})
}
