package handlers

import (
	"strings"

	"bankagent/internal/services/auth"
	"bankagent/internal/utils"
	"bankagent/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService auth.Service
	log         *zap.Logger
}

func NewAuthHandler(authService auth.Service, log *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

// Login exchanges operator credentials for an access token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return response.BadRequest(c, "Email and password are required")
	}

	op, token, err := h.authService.Login(c.UserContext(), input.Email, input.Password)
	if err != nil {
		return response.DomainError(c, err)
	}

	return response.Success(c, "logged in", fiber.Map{
		"access_token": token,
		"operator": fiber.Map{
			"id":    op.ID,
			"email": op.Email,
			"role":  op.Role,
		},
	})
}

// Logout revokes every token issued to the calling operator.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, err := utils.GetOperatorClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	if err := h.authService.Logout(c.UserContext(), claims.OperatorID); err != nil {
		h.log.Error("logout failed", zap.Uint("operator_id", claims.OperatorID), zap.Error(err))
		return response.ServerError(c, "Failed to logout")
	}
	return response.Success(c, "Successfully logged out", nil)
}
