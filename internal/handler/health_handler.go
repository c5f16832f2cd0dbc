package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Health handles GET /health, a liveness probe with no dependencies.
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"ok": true,
		"ts": time.Now().UTC().Format(time.RFC3339),
	})
}
