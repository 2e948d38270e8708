// Package middleware holds the fiber middleware that guards the operator API.
package middleware

import (
	"errors"
	"strings"

	apperrors "bankagent/internal/errors"
	"bankagent/internal/models"
	"bankagent/internal/services/auth"
	"bankagent/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthMiddleware validates bearer tokens and stores the operator claims on the
// request context.
type AuthMiddleware struct {
	authService auth.Service
	log         *zap.Logger
}

func NewAuthMiddleware(authService auth.Service, log *zap.Logger) *AuthMiddleware {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthMiddleware{
		authService: authService,
		log:         log,
	}
}

// Handler rejects requests without a valid, unrevoked access token.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return response.Error(c, fiber.StatusUnauthorized, "missing authorization header")
	}

	tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || tokenString == "" {
		return response.Error(c, fiber.StatusUnauthorized, "invalid authorization format")
	}

	claims, err := m.authService.Authenticate(c.UserContext(), tokenString)
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionExpired) {
			return response.Error(c, fiber.StatusUnauthorized, "session expired")
		}
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			m.log.Error("token check failed", zap.Error(err))
		}
		return response.Error(c, fiber.StatusUnauthorized, "invalid token")
	}

	c.Locals("claims", claims)
	c.Locals("operatorID", claims.OperatorID)

	return c.Next()
}

// HasPermission returns a middleware that checks for a specific permission.
// Admins pass every check.
func HasPermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("claims").(*models.OperatorClaims)
		if !ok {
			return response.Unauthorized(c)
		}

		if claims.Role == models.RoleAdmin || claims.HasPermission(permission) {
			return c.Next()
		}

		return response.Forbidden(c)
	}
}
