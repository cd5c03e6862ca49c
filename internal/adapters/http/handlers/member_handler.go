package handlers

import (
	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/models"
	"github.com/kwakuoseikwakye/presby-cms/internal/core/services"
	"github.com/kwakuoseikwakye/presby-cms/internal/pkg/pagination"
	"github.com/kwakuoseikwakye/presby-cms/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MemberHandler handles congregation member endpoints
type MemberHandler struct {
	memberService *services.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// Create registers a new member
func (h *MemberHandler) Create(c *fiber.Ctx) error {
	var req services.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	member, err := h.memberService.Create(c.Context(), &req)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Created(c, "Member created successfully", member.ToResponse())
}

// List lists members with optional ?search= over names and email
func (h *MemberHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c, pagination.DefaultLimit)
	search := c.Query("search")

	members, total, err := h.memberService.List(c.Context(), search, params.Offset, params.Limit)
	if err != nil {
		return serviceError(c, err)
	}

	data := make([]*models.MemberResponse, len(members))
	for i, m := range members {
		data[i] = m.ToResponse()
	}

	return c.JSON(pagination.NewResponse(data, params, total))
}

// ListActive lists active members for the attendance form
func (h *MemberHandler) ListActive(c *fiber.Ctx) error {
	members, err := h.memberService.ListActive(c.Context())
	if err != nil {
		return serviceError(c, err)
	}

	data := make([]*models.MemberResponse, len(members))
	for i, m := range members {
		data[i] = m.ToResponse()
	}

	return response.Success(c, "Active members retrieved successfully", data)
}

// Get gets a member profile with groups, recent attendance,
// contributions and pledges
func (h *MemberHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	member, err := h.memberService.GetByID(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}

	resp := member.ToResponse()

	groups := make([]*models.GroupResponse, 0, len(member.Groups))
	for _, gm := range member.Groups {
		if gm.Group != nil {
			groups = append(groups, gm.Group.ToResponse())
		}
	}

	attendance := make([]*models.AttendanceResponse, len(member.Attendance))
	for i := range member.Attendance {
		attendance[i] = member.Attendance[i].ToResponse()
	}

	transactions := make([]*models.TransactionResponse, len(member.Transactions))
	for i := range member.Transactions {
		transactions[i] = member.Transactions[i].ToResponse()
	}

	pledges := make([]*models.PledgeResponse, len(member.Pledges))
	for i := range member.Pledges {
		pledges[i] = member.Pledges[i].ToResponse()
	}

	return response.Success(c, "Member retrieved successfully", fiber.Map{
		"member":       resp,
		"groups":       groups,
		"attendance":   attendance,
		"transactions": transactions,
		"pledges":      pledges,
	})
}

// Update updates a member profile
func (h *MemberHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	var req services.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	member, err := h.memberService.Update(c.Context(), id, &req)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Member updated successfully", member.ToResponse())
}

// Delete removes a member and their dependent records
func (h *MemberHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	if err := h.memberService.Delete(c.Context(), id); err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Member deleted successfully", nil)
}
