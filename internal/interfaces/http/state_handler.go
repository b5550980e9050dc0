package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurant-ops/internal/application/state"
)

// StateHandler exporta e importa el estado completo en el formato persistido.
type StateHandler struct {
	uc *state.UseCase
}

// NewStateHandler construye el handler.
func NewStateHandler(uc *state.UseCase) *StateHandler {
	return &StateHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar estado
// @Description  Devuelve {p_inventory, p_suppliers, p_recipes}.
// @Tags         state
// @Produce      json
// @Success      200  {object}  dto.StateDocument
// @Router       /api/state [get]
func (h *StateHandler) Export(c *fiber.Ctx) error {
	doc, err := h.uc.Export(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(doc)
}

// Import godoc
// @Summary      Importar estado
// @Description  Reemplaza de forma atómica las colecciones presentes en el documento.
// @Tags         state
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StateDocument  true  "Estado"
// @Success      200   {object}  state.ImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/state [post]
func (h *StateHandler) Import(c *fiber.Ctx) error {
	res, err := h.uc.Import(c.Context(), c.Body())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(res)
}
