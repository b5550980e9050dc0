package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurant-ops/internal/application/export"
)

// ExportHandler descargas CSV y PDF.
type ExportHandler struct {
	uc *export.UseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.UseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

func sendCSV(c *fiber.Ctx, filename, body string) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.SendString(body)
}

// InventoryCSV godoc
// @Summary      Exportar inventario (CSV)
// @Tags         export
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/export/inventory.csv [get]
func (h *ExportHandler) InventoryCSV(c *fiber.Ctx) error {
	body, err := h.uc.InventoryCSV(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return sendCSV(c, "inventory.csv", body)
}

// SuppliersCSV godoc
// @Summary      Exportar proveedores (CSV)
// @Tags         export
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/export/suppliers.csv [get]
func (h *ExportHandler) SuppliersCSV(c *fiber.Ctx) error {
	body, err := h.uc.SuppliersCSV(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return sendCSV(c, "suppliers.csv", body)
}

// RecipesCSV godoc
// @Summary      Exportar recetas (CSV)
// @Tags         export
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/export/recipes.csv [get]
func (h *ExportHandler) RecipesCSV(c *fiber.Ctx) error {
	body, err := h.uc.RecipesCSV(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return sendCSV(c, "recipes.csv", body)
}

// InventoryPDF godoc
// @Summary      Reporte de inventario (PDF)
// @Tags         export
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/export/inventory.pdf [get]
func (h *ExportHandler) InventoryPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.InventoryPDF(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="inventory-report.pdf"`)
	return c.Send(pdf)
}
