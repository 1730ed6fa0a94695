package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/suteetoe/jobboard/pkg/database"
	"github.com/suteetoe/jobboard/pkg/logger"
	"go.uber.org/zap"
)

// Root answers with a plain-text banner
func (h *Handler) Root(c echo.Context) error {
	return c.String(http.StatusOK, "Job Board API Server Running")
}

// HealthCheck reports whether the service can reach its database
func (h *Handler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := database.Ping(ctx, h.db); err != nil {
		logger.FromContext(c).Error("Health check failed", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"status":  "unhealthy",
			"service": "job-board",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "healthy",
		"service": "job-board",
	})
}

// Metrics serves the Prometheus registry, or 404 when metrics are disabled
func (h *Handler) Metrics(c echo.Context) error {
	if h.metrics == nil {
		return echo.ErrNotFound
	}
	h.metrics.Handler().ServeHTTP(c.Response(), c.Request())
	return nil
}
