package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unifiedui/docdb-gateway/internal/api/dto"
	"github.com/unifiedui/docdb-gateway/internal/core/cache"
	"github.com/unifiedui/docdb-gateway/internal/core/docdb"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	cache       cache.Cache
	docDBClient docdb.Client
}

// NewHealthHandler creates a new HealthHandler. cache may be nil when
// caching is disabled.
func NewHealthHandler(c cache.Cache, docDBClient docdb.Client) *HealthHandler {
	return &HealthHandler{
		cache:       c,
		docDBClient: docDBClient,
	}
}

// Health handles the /health endpoint.
// @Summary Health check
// @Description Returns the overall health status and component statuses
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service healthy"
// @Failure 503 {object} dto.HealthResponse "Service unhealthy"
// @Router /api/v1/docdb/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	components := make(map[string]string)
	healthy := true

	switch {
	case h.cache == nil:
		components["cache"] = "disabled"
	case h.cache.Ping(ctx) != nil:
		components["cache"] = "unhealthy"
		healthy = false
	default:
		components["cache"] = "healthy"
	}

	if err := h.docDBClient.Ping(ctx); err != nil {
		components["docdb"] = "unhealthy"
		healthy = false
	} else {
		components["docdb"] = "healthy"
	}

	status := "healthy"
	statusCode := http.StatusOK
	if !healthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, dto.HealthResponse{
		Status:     status,
		Components: components,
	})
}

// Ready handles the /ready endpoint.
// @Summary Readiness check
// @Description Returns 200 if the document database is reachable
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Service ready"
// @Failure 503 {object} map[string]string "Service not ready"
// @Router /api/v1/docdb/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	// A cache outage degrades listing latency only, so readiness ignores it.
	if err := h.docDBClient.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": "docdb unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// Live handles the /live endpoint.
// @Summary Liveness check
// @Description Returns 200 if the service is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Service alive"
// @Router /api/v1/docdb/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
