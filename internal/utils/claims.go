package utils

import (
	"errors"

	"bankagent/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetOperatorClaims extracts the operator claims from the Fiber context.
// It returns an error if the claims are missing or of an invalid type.
func GetOperatorClaims(c *fiber.Ctx) (*models.OperatorClaims, error) {
	v := c.Locals("claims")
	if v == nil {
		return nil, errors.New("claims not found in context")
	}

	claims, ok := v.(*models.OperatorClaims)
	if !ok {
		return nil, errors.New("invalid claims type")
	}
	return claims, nil
}
