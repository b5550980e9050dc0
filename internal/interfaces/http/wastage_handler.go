package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurant-ops/internal/application/dto"
	"github.com/jhoicas/restaurant-ops/internal/application/usecase"
)

// WastageHandler maneja el registro de mermas.
type WastageHandler struct {
	uc *usecase.WastageUseCase
}

// NewWastageHandler construye el handler.
func NewWastageHandler(uc *usecase.WastageUseCase) *WastageHandler {
	return &WastageHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar merma
// @Tags         wastage
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WastageRequest  true  "Merma"
// @Success      201   {object}  dto.WastageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/wastage [post]
func (h *WastageHandler) Create(c *fiber.Ctx) error {
	var in dto.WastageRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar mermas
// @Tags         wastage
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.WastageResponse]
// @Router       /api/wastage [get]
func (h *WastageHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar merma
// @Tags         wastage
// @Param        id   path  string  true  "ID de la merma"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/wastage/{id} [delete]
func (h *WastageHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err, "merma no encontrada")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
