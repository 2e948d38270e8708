package handlers

import (
	"bankagent/internal/models"
	"bankagent/internal/services/bank"
	"bankagent/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// BankHandler exposes the registry of remote ledgers.
type BankHandler struct {
	service bank.Service
}

func NewBankHandler(s bank.Service) *BankHandler { return &BankHandler{service: s} }

func (h *BankHandler) List(c *fiber.Ctx) error {
	banks, err := h.service.List(c.UserContext())
	if err != nil {
		return response.DomainError(c, err)
	}

	views := make([]models.BankView, 0, len(banks))
	for _, b := range banks {
		views = append(views, b.View())
	}
	return response.Success(c, "banks", views)
}

func (h *BankHandler) Create(c *fiber.Ctx) error {
	var in bank.CreateInput
	if err := c.BodyParser(&in); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	b, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Created(c, "bank registered", b.View())
}
