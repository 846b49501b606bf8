package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIVersion is reported by the health endpoints
const APIVersion = "1.0.0"

// HealthHandler serves liveness endpoints
type HealthHandler struct {
	now func() time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

// Root godoc
// @Summary  Health check
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Personal Landing Page API",
		"version": APIVersion,
	})
}

// Health godoc
// @Summary  Detailed health check
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]interface{}
// @Router   /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": h.now().Format(time.RFC3339),
		"services": gin.H{
			"blog": "operational",
			"apps": "operational",
			"chat": "operational",
		},
	})
}
