// Package export genera las descargas del inventario: CSV por colección y el reporte PDF.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/restaurant-ops/internal/application/analytics"
	"github.com/jhoicas/restaurant-ops/internal/application/dto"
	"github.com/jhoicas/restaurant-ops/internal/domain/repository"
)

// UseCase casos de uso de exportación.
type UseCase struct {
	ingredients repository.IngredientRepository
	suppliers   repository.SupplierRepository
	menuItems   repository.MenuItemRepository
	wastage     repository.WastageRepository
	dashboard   *analytics.DashboardUseCase
	generator   ReportGenerator
	log         zerolog.Logger
}

// NewUseCase construye el caso de uso. generator puede ser nil si no se sirve el PDF.
func NewUseCase(
	ingredients repository.IngredientRepository,
	suppliers repository.SupplierRepository,
	menuItems repository.MenuItemRepository,
	wastage repository.WastageRepository,
	dashboard *analytics.DashboardUseCase,
	generator ReportGenerator,
	log zerolog.Logger,
) *UseCase {
	return &UseCase{
		ingredients: ingredients,
		suppliers:   suppliers,
		menuItems:   menuItems,
		wastage:     wastage,
		dashboard:   dashboard,
		generator:   generator,
		log:         log,
	}
}

// InventoryCSV CSV del inventario en orden de presentación.
func (uc *UseCase) InventoryCSV(ctx context.Context) (string, error) {
	ings, err := uc.ingredients.List(ctx)
	if err != nil {
		return "", err
	}
	return IngredientsCSV(ings), nil
}

// SuppliersCSV CSV de proveedores.
func (uc *UseCase) SuppliersCSV(ctx context.Context) (string, error) {
	sups, err := uc.suppliers.List(ctx)
	if err != nil {
		return "", err
	}
	return SuppliersCSV(sups), nil
}

// RecipesCSV CSV de recetas.
func (uc *UseCase) RecipesCSV(ctx context.Context) (string, error) {
	items, err := uc.menuItems.List(ctx)
	if err != nil {
		return "", err
	}
	return RecipesCSV(items), nil
}

// InventoryReport arma los datos del reporte sin renderizarlo.
func (uc *UseCase) InventoryReport(ctx context.Context, now time.Time) (*InventoryReport, error) {
	ings, err := uc.ingredients.List(ctx)
	if err != nil {
		return nil, err
	}
	sups, err := uc.suppliers.List(ctx)
	if err != nil {
		return nil, err
	}
	items, err := uc.menuItems.List(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := uc.wastage.List(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]ReportLine, 0, len(ings))
	for _, i := range ings {
		lines = append(lines, ReportLine{
			Name:       i.Name,
			Category:   i.Category,
			Unit:       i.Unit,
			Stock:      i.CurrentStock,
			UnitCost:   i.UnitCost,
			Value:      i.StockValue(),
			ExpiryDate: dto.FormatDate(i.ExpiryDate),
			Status:     string(i.StatusAt(now)),
		})
	}
	return &InventoryReport{
		Title:       "Inventory Report",
		GeneratedAt: now,
		Overview:    uc.dashboard.Build(ings, sups, items, logs),
		Lines:       lines,
	}, nil
}

// InventoryPDF renderiza el reporte con el generador configurado.
func (uc *UseCase) InventoryPDF(ctx context.Context) ([]byte, error) {
	if uc.generator == nil {
		return nil, fmt.Errorf("export: generador de reportes no configurado")
	}
	report, err := uc.InventoryReport(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	pdf, err := uc.generator.GenerateInventoryReport(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("export: reporte de inventario: %w", err)
	}
	uc.log.Debug().Int("lines", len(report.Lines)).Int("bytes", len(pdf)).Msg("reporte PDF generado")
	return pdf, nil
}
