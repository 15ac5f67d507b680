package handlers

import (
	"net/http"
	"strconv"

	"fieldbook/services/dashboard"
	"fieldbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler exposes the reporting aggregates over HTTP.
type DashboardHandler struct {
	Svc dashboard.DashboardService
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboard.DashboardService) *DashboardHandler {
	return &DashboardHandler{Svc: svc}
}

// GetStats handles GET /api/dashboard/stats.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	logger := getLogger(c)

	stats, err := h.Svc.Stats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute dashboard stats", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute dashboard stats", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetUpcoming handles GET /api/dashboard/upcoming.
func (h *DashboardHandler) GetUpcoming(c *gin.Context) {
	logger := getLogger(c)

	limit := int64(10)
	if v, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil && v > 0 {
		limit = v
	}

	upcoming, err := h.Svc.Upcoming(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to fetch upcoming bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch upcoming bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, upcoming)
}
