package handlers

import (
	"github.com/kwakuoseikwakye/presby-cms/internal/core/services"
	"github.com/kwakuoseikwakye/presby-cms/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get returns the congregation overview
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	data, err := h.dashboardService.GetDashboard(c.Context())
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Dashboard retrieved successfully", data)
}
