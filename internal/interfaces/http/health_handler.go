package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler responde el estado del servicio.
type HealthHandler struct {
	service string
	ping    func(ctx context.Context) error
}

// NewHealthHandler construye el handler. ping puede ser nil.
func NewHealthHandler(service string, ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{service: service, ping: ping}
}

// Check godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if h.ping != nil {
		if err := h.ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded", "service": h.service, "error": err.Error(),
			})
		}
	}
	return c.JSON(fiber.Map{"status": "ok", "service": h.service})
}
