package handler

import (
	"kosteo-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VentaHandler struct {
	service service.TransactionService
	log     *zap.Logger
}

func NewVentaHandler(s service.TransactionService, log *zap.Logger) *VentaHandler {
	return &VentaHandler{service: s, log: log}
}

// GetVentas handles GET /api/v1/ventas
func (h *VentaHandler) GetVentas(c *fiber.Ctx) error {
	ventas, err := h.service.GetAllVentas()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(ventas)
}

// CreateVenta handles POST /api/v1/ventas
func (h *VentaHandler) CreateVenta(c *fiber.Ctx) error {
	var req service.CreateVentaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	venta, err := h.service.CreateVenta(&req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(venta)
}

// GetVenta handles GET /api/v1/ventas/:id
func (h *VentaHandler) GetVenta(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	venta, err := h.service.GetVentaByID(id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(venta)
}

// UpdateVenta handles PUT /api/v1/ventas/:id (partial update, totals recomputed)
func (h *VentaHandler) UpdateVenta(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var req service.UpdateVentaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	venta, err := h.service.UpdateVenta(id, &req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(venta)
}

// DeleteVenta handles DELETE /api/v1/ventas/:id
func (h *VentaHandler) DeleteVenta(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	if err := h.service.DeleteVenta(id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Venta deleted successfully"})
}
