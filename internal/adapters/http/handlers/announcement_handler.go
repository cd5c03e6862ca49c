package handlers

import (
	"github.com/kwakuoseikwakye/presby-cms/internal/core/services"
	"github.com/kwakuoseikwakye/presby-cms/internal/pkg/pagination"
	"github.com/kwakuoseikwakye/presby-cms/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AnnouncementHandler handles announcement endpoints
type AnnouncementHandler struct {
	announcementService *services.AnnouncementService
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(announcementService *services.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

// Create drafts a new announcement
func (h *AnnouncementHandler) Create(c *fiber.Ctx) error {
	var req services.AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	a, err := h.announcementService.Create(c.Context(), &req)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Created(c, "Announcement created successfully", a)
}

// List lists announcements with an optional ?status= filter
func (h *AnnouncementHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c, pagination.DefaultLimit)

	announcements, total, err := h.announcementService.List(c.Context(), c.Query("status"), params.Offset, params.Limit)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(pagination.NewResponse(announcements, params, total))
}

// Get gets an announcement
func (h *AnnouncementHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid announcement ID")
	}

	a, err := h.announcementService.GetByID(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Announcement retrieved successfully", a)
}

// Update updates an announcement
func (h *AnnouncementHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid announcement ID")
	}

	var req services.AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	a, err := h.announcementService.Update(c.Context(), id, &req)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Announcement updated successfully", a)
}

// Publish moves a draft to Published
func (h *AnnouncementHandler) Publish(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid announcement ID")
	}

	a, err := h.announcementService.Publish(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Announcement published successfully", a)
}

// Delete removes an announcement
func (h *AnnouncementHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid announcement ID")
	}

	if err := h.announcementService.Delete(c.Context(), id); err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Announcement deleted successfully", nil)
}
