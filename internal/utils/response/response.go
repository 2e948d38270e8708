package response

import (
	"errors"

	apperrors "bankagent/internal/errors"

	"github.com/gofiber/fiber/v2"
)

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func ServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

func Unauthorized(c *fiber.Ctx) error {
	return Error(c, fiber.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *fiber.Ctx) error {
	return Error(c, fiber.StatusForbidden, "Insufficient permissions")
}

// DomainError writes err with a status derived from its code. Errors that are
// not domain errors become a 500 without leaking their text.
func DomainError(c *fiber.Ctx, err error) error {
	de, ok := apperrors.AsDomain(err)
	if !ok {
		return ServerError(c, "internal server error")
	}

	body := fiber.Map{"error": de.Message, "code": de.Code}
	if len(de.Fields) > 0 {
		body["fields"] = de.Fields
	}
	return c.Status(statusFor(de)).JSON(body)
}

func statusFor(de *apperrors.DomainError) int {
	switch {
	case errors.Is(de, apperrors.ErrBankNotFound), errors.Is(de, apperrors.ErrTransferNotFound):
		return fiber.StatusNotFound
	case errors.Is(de, apperrors.ErrDuplicateBank):
		return fiber.StatusConflict
	case errors.Is(de, apperrors.ErrInvalidCredentials), errors.Is(de, apperrors.ErrSessionExpired):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusBadRequest
	}
}
