package handlers

import (
	"errors"
	"strconv"

	"github.com/kwakuoseikwakye/presby-cms/internal/core/domain"
	"github.com/kwakuoseikwakye/presby-cms/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// serviceError maps domain errors to HTTP responses. Validation
// failures carry their field map; unknown errors become a 500 without
// leaking internals.
func serviceError(c *fiber.Ctx, err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return response.ValidationFailed(c, ve.Fields)
	}

	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrMemberNotFound),
		errors.Is(err, domain.ErrGroupNotFound),
		errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrAnnouncementNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrDuplicateEntry):
		return response.Conflict(c, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return response.BadRequest(c, err.Error())
	default:
		return response.InternalServerError(c, "Something went wrong")
	}
}

// parseIDParam reads the :id path parameter
func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
