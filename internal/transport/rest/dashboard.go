package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// @Summary Dashboard statistics
// @Description Status counters, per-lawyer workload and per-day appointment counts, derived relative to the current instant
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.DashboardStats
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Router /dashboard/stats [get]
func (h *Handler) getDashboardStats(c *gin.Context) {
	stats, err := h.services.Dashboard.Stats(c.Request.Context(), time.Now())
	if err != nil {
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, stats)
}
