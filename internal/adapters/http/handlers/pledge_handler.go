package handlers

import (
	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/models"
	"github.com/kwakuoseikwakye/presby-cms/internal/core/services"
	"github.com/kwakuoseikwakye/presby-cms/internal/pkg/pagination"
	"github.com/kwakuoseikwakye/presby-cms/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PledgeHandler handles pledge endpoints
type PledgeHandler struct {
	pledgeService *services.PledgeService
}

// NewPledgeHandler creates a new pledge handler
func NewPledgeHandler(pledgeService *services.PledgeService) *PledgeHandler {
	return &PledgeHandler{pledgeService: pledgeService}
}

// Create records a new pledge
func (h *PledgeHandler) Create(c *fiber.Ctx) error {
	var req services.PledgeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	pledge, err := h.pledgeService.Create(c.Context(), &req)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Created(c, "Pledge created successfully", pledge.ToResponse())
}

// List lists pledges with an optional ?status= filter
func (h *PledgeHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c, pagination.DefaultLimit)

	pledges, total, err := h.pledgeService.List(c.Context(), c.Query("status"), params.Offset, params.Limit)
	if err != nil {
		return serviceError(c, err)
	}

	data := make([]*models.PledgeResponse, len(pledges))
	for i, p := range pledges {
		data[i] = p.ToResponse()
	}

	return c.JSON(pagination.NewResponse(data, params, total))
}

// Get gets a pledge
func (h *PledgeHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid pledge ID")
	}

	pledge, err := h.pledgeService.GetByID(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Pledge retrieved successfully", pledge.ToResponse())
}

// Update updates a pledge
func (h *PledgeHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid pledge ID")
	}

	var req services.PledgeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	pledge, err := h.pledgeService.Update(c.Context(), id, &req)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Pledge updated successfully", pledge.ToResponse())
}

// Delete removes a pledge
func (h *PledgeHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid pledge ID")
	}

	if err := h.pledgeService.Delete(c.Context(), id); err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Pledge deleted successfully", nil)
}
