package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/adapter/backend"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
)

// HealthHandler reports whether the console can reach the backend.
type HealthHandler struct {
	facade HealthFacade
	logger *slog.Logger
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(facade HealthFacade, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{facade: facade, logger: logger}
}

// Check handles GET /healthz.
func (h *HealthHandler) Check(c *gin.Context) {
	err := h.facade.BackendHealth(c.Request.Context())
	if err == nil {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Backend: "ok"})
		return
	}

	reason := err.Error()
	if be, ok := backend.AsError(err); ok && be.Detail != "" {
		reason = be.Detail
	}
	h.logger.Warn("backend health check failed", slog.String("error", reason))
	c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Backend: reason})
}
