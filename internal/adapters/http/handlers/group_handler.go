package handlers

import (
	"strconv"

	"github.com/kwakuoseikwakye/presby-cms/internal/core/services"
	"github.com/kwakuoseikwakye/presby-cms/internal/pkg/pagination"
	"github.com/kwakuoseikwakye/presby-cms/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// GroupHandler handles group and enrollment endpoints
type GroupHandler struct {
	groupService *services.GroupService
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(groupService *services.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// Create creates a new group
func (h *GroupHandler) Create(c *fiber.Ctx) error {
	var req services.GroupRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	group, err := h.groupService.Create(c.Context(), &req)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Created(c, "Group created successfully", group.ToResponse())
}

// List lists groups with member counts
func (h *GroupHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c, pagination.DefaultLimit)

	groups, total, err := h.groupService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(pagination.NewResponse(groups, params, total))
}

// Get gets a group with its roster
func (h *GroupHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid group ID")
	}

	group, err := h.groupService.GetByID(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}

	roster, err := h.groupService.Roster(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}

	resp := group.ToResponse()
	resp.MemberCount = int64(len(roster))

	return response.Success(c, "Group retrieved successfully", fiber.Map{
		"group":  resp,
		"roster": roster,
	})
}

// Update updates a group
func (h *GroupHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid group ID")
	}

	var req services.GroupRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	group, err := h.groupService.Update(c.Context(), id, &req)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Group updated successfully", group.ToResponse())
}

// Delete removes a group and its enrollments
func (h *GroupHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid group ID")
	}

	if err := h.groupService.Delete(c.Context(), id); err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Group deleted successfully", nil)
}

// Enroll adds a member to a group
func (h *GroupHandler) Enroll(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid group ID")
	}

	var req services.EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.groupService.Enroll(c.Context(), id, &req); err != nil {
		return serviceError(c, err)
	}

	return response.Created(c, "Member enrolled successfully", nil)
}

// Unenroll removes a member from a group
func (h *GroupHandler) Unenroll(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid group ID")
	}

	memberID, err := strconv.ParseUint(c.Params("memberId"), 10, 32)
	if err != nil || memberID == 0 {
		return response.BadRequest(c, "Invalid member ID")
	}

	if err := h.groupService.Unenroll(c.Context(), id, uint(memberID)); err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Member removed from group", nil)
}
