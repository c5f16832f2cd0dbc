package handler

import (
	"kosteo-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AssistantHandler struct {
	service service.AssistantService
	log     *zap.Logger
}

func NewAssistantHandler(s service.AssistantService, log *zap.Logger) *AssistantHandler {
	return &AssistantHandler{service: s, log: log}
}

type askRequest struct {
	Question string `json:"question"`
}

// Ask handles POST /api/v1/assistant. Provider and configuration failures
// surface as a generic 500; the detail stays in the server log.
func (h *AssistantHandler) Ask(c *fiber.Ctx) error {
	var req askRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	answer, err := h.service.Ask(c.UserContext(), req.Question)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"answer": answer})
}
