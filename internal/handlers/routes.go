package handlers

import (
	"bankagent/internal/middleware"
	"bankagent/internal/models"
	"bankagent/internal/services/auth"
	"bankagent/internal/services/bank"
	"bankagent/internal/services/request"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Deps are the services behind the HTTP API.
type Deps struct {
	Auth      auth.Service
	Banks     bank.Service
	Transfers request.Service
	Health    map[string]HealthChecker
	Log       *zap.Logger
}

func SetupRoutes(app *fiber.App, deps Deps) {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}

	authHandler := NewAuthHandler(deps.Auth, deps.Log)
	bankHandler := NewBankHandler(deps.Banks)
	transferHandler := NewTransferHandler(deps.Transfers, deps.Log)
	healthHandler := NewHealthHandler(deps.Health)

	setupPublicRoutes(app, healthHandler, authHandler)

	authenticated := app.Group("/api", middleware.NewAuthMiddleware(deps.Auth, deps.Log).Handler)
	authenticated.Post("/logout", authHandler.Logout)
	setupBankRoutes(authenticated, bankHandler)
	setupTransferRoutes(authenticated, transferHandler)
}

func setupPublicRoutes(app *fiber.App, health *HealthHandler, auth *AuthHandler) {
	app.Get("/health", health.Check)
	app.Post("/api/login", auth.Login)
}

func setupBankRoutes(router fiber.Router, h *BankHandler) {
	banks := router.Group("/banks")
	banks.Get("/", middleware.HasPermission(models.PermissionBankRead), h.List)
	banks.Post("/", middleware.HasPermission(models.PermissionBankWrite), h.Create)
}

func setupTransferRoutes(router fiber.Router, h *TransferHandler) {
	transfers := router.Group("/transfers")
	transfers.Get("/", middleware.HasPermission(models.PermissionTransferRead), h.List)
	transfers.Post("/", middleware.HasPermission(models.PermissionTransferWrite), h.Submit)
	transfers.Get("/:id", middleware.HasPermission(models.PermissionTransferRead), h.Get)
}
