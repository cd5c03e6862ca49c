package handlers

import (
	"github.com/kwakuoseikwakye/presby-cms/internal/core/services"
	"github.com/kwakuoseikwakye/presby-cms/internal/pkg/pagination"
	"github.com/kwakuoseikwakye/presby-cms/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EventHandler handles church event endpoints
type EventHandler struct {
	eventService *services.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// Create schedules a new event
func (h *EventHandler) Create(c *fiber.Ctx) error {
	var req services.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	event, err := h.eventService.Create(c.Context(), &req)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Created(c, "Event created successfully", event)
}

// List lists events with an optional ?status= filter
func (h *EventHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c, pagination.DefaultLimit)

	events, total, err := h.eventService.List(c.Context(), c.Query("status"), params.Offset, params.Limit)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(pagination.NewResponse(events, params, total))
}

// Get gets an event
func (h *EventHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid event ID")
	}

	event, err := h.eventService.GetByID(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Event retrieved successfully", event)
}

// Update updates an event
func (h *EventHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid event ID")
	}

	var req services.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	event, err := h.eventService.Update(c.Context(), id, &req)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Event updated successfully", event)
}

// Delete removes an event
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid event ID")
	}

	if err := h.eventService.Delete(c.Context(), id); err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Event deleted successfully", nil)
}
