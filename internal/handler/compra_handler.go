package handler

import (
	"kosteo-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CompraHandler struct {
	service service.TransactionService
	log     *zap.Logger
}

func NewCompraHandler(s service.TransactionService, log *zap.Logger) *CompraHandler {
	return &CompraHandler{service: s, log: log}
}

// GetCompras handles GET /api/v1/compras
func (h *CompraHandler) GetCompras(c *fiber.Ctx) error {
	compras, err := h.service.GetAllCompras()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(compras)
}

// CreateCompra handles POST /api/v1/compras
func (h *CompraHandler) CreateCompra(c *fiber.Ctx) error {
	var req service.CreateCompraRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	compra, err := h.service.CreateCompra(&req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(compra)
}

// GetCompra handles GET /api/v1/compras/:id
func (h *CompraHandler) GetCompra(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	compra, err := h.service.GetCompraByID(id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(compra)
}

// UpdateCompra handles PUT /api/v1/compras/:id (partial update, totals recomputed)
func (h *CompraHandler) UpdateCompra(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var req service.UpdateCompraRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	compra, err := h.service.UpdateCompra(id, &req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(compra)
}

// DeleteCompra handles DELETE /api/v1/compras/:id
func (h *CompraHandler) DeleteCompra(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	if err := h.service.DeleteCompra(id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Compra deleted successfully"})
}
