package handlers

import (
	"github.com/kwakuoseikwakye/presby-cms/internal/core/services"
	"github.com/kwakuoseikwakye/presby-cms/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles reporting endpoints
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// MembershipGrowth returns registrations per month over six months
func (h *ReportHandler) MembershipGrowth(c *fiber.Ctx) error {
	buckets, err := h.reportService.MembershipGrowth(c.Context())
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Membership growth retrieved successfully", buckets)
}

// FinancialReport returns category totals and the overall balance
func (h *ReportHandler) FinancialReport(c *fiber.Ctx) error {
	summary, err := h.reportService.FinancialReport(c.Context())
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Financial report retrieved successfully", summary)
}

// GenderDistribution returns member counts by gender
func (h *ReportHandler) GenderDistribution(c *fiber.Ctx) error {
	counts, err := h.reportService.GenderDistribution(c.Context())
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Gender distribution retrieved successfully", counts)
}
