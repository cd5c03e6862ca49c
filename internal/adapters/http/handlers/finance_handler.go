package handlers

import (
	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/models"
	"github.com/kwakuoseikwakye/presby-cms/internal/core/services"
	"github.com/kwakuoseikwakye/presby-cms/internal/pkg/pagination"
	"github.com/kwakuoseikwakye/presby-cms/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// FinanceHandler handles financial transaction endpoints
type FinanceHandler struct {
	financeService *services.FinanceService
}

// NewFinanceHandler creates a new finance handler
func NewFinanceHandler(financeService *services.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

// Create records a new transaction
func (h *FinanceHandler) Create(c *fiber.Ctx) error {
	var req services.TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	tx, err := h.financeService.Create(c.Context(), &req)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Created(c, "Transaction created successfully", tx.ToResponse())
}

// List lists transactions with optional ?type= and ?category= filters,
// together with the running totals
func (h *FinanceHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c, pagination.WideLimit)
	txType := c.Query("type")
	category := c.Query("category")

	transactions, total, err := h.financeService.List(c.Context(), txType, category, params.Offset, params.Limit)
	if err != nil {
		return serviceError(c, err)
	}

	totals, err := h.financeService.Totals(c.Context())
	if err != nil {
		return serviceError(c, err)
	}

	data := make([]*models.TransactionResponse, len(transactions))
	for i, tx := range transactions {
		data[i] = tx.ToResponse()
	}

	return c.JSON(fiber.Map{
		"data":   data,
		"totals": totals,
		"meta":   pagination.GetMeta(params, total),
	})
}

// Get gets one transaction
func (h *FinanceHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid transaction ID")
	}

	tx, err := h.financeService.GetByID(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Transaction retrieved successfully", tx.ToResponse())
}

// Update updates a transaction
func (h *FinanceHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid transaction ID")
	}

	var req services.TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	tx, err := h.financeService.Update(c.Context(), id, &req)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Transaction updated successfully", tx.ToResponse())
}

// Delete removes a transaction
func (h *FinanceHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid transaction ID")
	}

	if err := h.financeService.Delete(c.Context(), id); err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Transaction deleted successfully", nil)
}
