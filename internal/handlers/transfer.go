package handlers

import (
	"strconv"

	"bankagent/internal/services/request"
	"bankagent/internal/utils/pagination"
	"bankagent/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TransferHandler exposes transfer request endpoints.
type TransferHandler struct {
	service request.Service
	log     *zap.Logger
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(s request.Service, log *zap.Logger) *TransferHandler {
	return &TransferHandler{service: s, log: log}
}

// Submit handles POST /transfers. A transfer the banks refused is still a
// stored request and answers 201; check "completed" and "service_detail".
func (h *TransferHandler) Submit(c *fiber.Ctx) error {
	var in request.SubmitInput
	if err := c.BodyParser(&in); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	req, err := h.service.Submit(c.UserContext(), in)
	if err != nil {
		if req != nil {
			return response.Error(c, fiber.StatusInternalServerError, "transfer ran but its outcome could not be stored")
		}
		return response.DomainError(c, err)
	}

	message := "transfer completed"
	if !req.Completed {
		message = "transfer failed"
	}
	return response.Created(c, message, req)
}

func (h *TransferHandler) List(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	reqs, total, err := h.service.List(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		h.log.Error("failed to list transfers", zap.Error(err))
		return response.ServerError(c, "failed to list transfers")
	}
	p.Total = total

	return c.JSON(pagination.Response(p, reqs))
}

func (h *TransferHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid transfer id")
	}

	req, err := h.service.Get(c.UserContext(), uint(id))
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "transfer", req)
}
