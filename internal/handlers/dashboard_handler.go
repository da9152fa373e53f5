package handlers

import (
	"net/http"

	"fitlife-service/internal/pkg/response"
	dashboardservice "fitlife-service/internal/service/dashboard"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService *dashboardservice.DashboardService
}

func NewDashboardHandler(dashboardService *dashboardservice.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "Failed to load dashboard stats")
		return
	}

	response.Success(c, http.StatusOK, "OK", stats)
}
