package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/restaurant-ops/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del tablero.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetOverview devuelve los KPIs y widgets del tablero.
// GET /api/dashboard/overview
//
// Respuesta: DashboardOverviewDTO (stats, category_distribution, top_items,
// recipe_margins, wastage_by_reason, supplier_count, labels).
// @Summary      Resumen del tablero
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardOverviewDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/overview [get]
func (h *DashboardHandler) GetOverview(c *fiber.Ctx) error {
	overview, err := h.uc.GetOverview(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(overview)
}
