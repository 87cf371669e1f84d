package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker is implemented by the file-backed document.
type HealthChecker interface {
	Health(ctx context.Context) error
	Path() string
}

// HealthHandler serves the internal /health endpoint.
type HealthHandler struct {
	logger *slog.Logger
	doc    HealthChecker
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(logger *slog.Logger, doc HealthChecker) *HealthHandler {
	return &HealthHandler{
		logger: logger,
		doc:    doc,
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	status := gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	}

	if err := h.doc.Health(c.Request.Context()); err != nil {
		h.logger.Error("Data file health check failed", "path", h.doc.Path(), "error", err)
		status["status"] = "degraded"
		status["data_file"] = gin.H{"status": "unhealthy", "error": err.Error()}
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}

	status["data_file"] = gin.H{"status": "healthy", "path": h.doc.Path()}
	c.JSON(http.StatusOK, status)
}
