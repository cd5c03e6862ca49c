package handlers

import (
	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/models"
	"github.com/kwakuoseikwakye/presby-cms/internal/core/services"
	"github.com/kwakuoseikwakye/presby-cms/internal/pkg/pagination"
	"github.com/kwakuoseikwakye/presby-cms/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// GovernanceHandler handles leadership term endpoints
type GovernanceHandler struct {
	governanceService *services.GovernanceService
}

// NewGovernanceHandler creates a new governance handler
func NewGovernanceHandler(governanceService *services.GovernanceService) *GovernanceHandler {
	return &GovernanceHandler{governanceService: governanceService}
}

// Create records a leadership term
func (h *GovernanceHandler) Create(c *fiber.Ctx) error {
	var req services.GovernanceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	rec, err := h.governanceService.Create(c.Context(), &req)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Created(c, "Governance record created successfully", rec.ToResponse())
}

// List lists governance records, newest term first
func (h *GovernanceHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c, pagination.DefaultLimit)

	records, total, err := h.governanceService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return serviceError(c, err)
	}

	data := make([]*models.GovernanceResponse, len(records))
	for i, r := range records {
		data[i] = r.ToResponse()
	}

	return c.JSON(pagination.NewResponse(data, params, total))
}

// Get gets a governance record
func (h *GovernanceHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid governance record ID")
	}

	rec, err := h.governanceService.GetByID(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Governance record retrieved successfully", rec.ToResponse())
}

// Update updates a governance record
func (h *GovernanceHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid governance record ID")
	}

	var req services.GovernanceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	rec, err := h.governanceService.Update(c.Context(), id, &req)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Governance record updated successfully", rec.ToResponse())
}

// Delete removes a governance record
func (h *GovernanceHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid governance record ID")
	}

	if err := h.governanceService.Delete(c.Context(), id); err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Governance record deleted successfully", nil)
}
