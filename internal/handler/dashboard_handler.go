package handler

import (
	"kosteo-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	service service.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(s service.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{service: s, log: log}
}

// GetDashboardStats handles GET /api/v1/dashboard/stats. The summary is
// recomputed from scratch on every call.
func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	summary, err := h.service.GetSummary()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(summary)
}
