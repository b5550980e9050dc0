package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurant-ops/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP de reposición del inventario.
type InventoryHandler struct {
	replenishment *inventory.ReplenishmentUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(replenishment *inventory.ReplenishmentUseCase) *InventoryHandler {
	return &InventoryHandler{replenishment: replenishment}
}

// GetReplenishmentList godoc
// @Summary      Lista de reposición
// @Description  Ingredientes en o bajo su nivel mínimo con cantidad sugerida, prioridad y costo por proveedor
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.ReplenishmentPlanDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/replenishment [get]
func (h *InventoryHandler) GetReplenishmentList(c *fiber.Ctx) error {
	out, err := h.replenishment.GenerateReplenishmentList(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}
