package handlers

import (
	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/models"
	"github.com/kwakuoseikwakye/presby-cms/internal/core/services"
	"github.com/kwakuoseikwakye/presby-cms/internal/pkg/pagination"
	"github.com/kwakuoseikwakye/presby-cms/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AttendanceHandler handles attendance endpoints
type AttendanceHandler struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// Mark records attendance for an event in one batch
func (h *AttendanceHandler) Mark(c *fiber.Ctx) error {
	var req services.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	records, err := h.attendanceService.MarkBatch(c.Context(), &req)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Created(c, "Attendance recorded successfully", fiber.Map{
		"count": len(records),
	})
}

// List lists attendance records, newest event first
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c, pagination.WideLimit)

	records, total, err := h.attendanceService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return serviceError(c, err)
	}

	data := make([]*models.AttendanceResponse, len(records))
	for i, r := range records {
		data[i] = r.ToResponse()
	}

	return c.JSON(pagination.NewResponse(data, params, total))
}

// Get gets one attendance record
func (h *AttendanceHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid attendance ID")
	}

	record, err := h.attendanceService.GetByID(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Attendance retrieved successfully", record.ToResponse())
}

// Update corrects one attendance record
func (h *AttendanceHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid attendance ID")
	}

	var req services.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	record, err := h.attendanceService.Update(c.Context(), id, &req)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Attendance updated successfully", record.ToResponse())
}

// Delete removes one attendance record
func (h *AttendanceHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid attendance ID")
	}

	if err := h.attendanceService.Delete(c.Context(), id); err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Attendance deleted successfully", nil)
}
