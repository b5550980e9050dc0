// Package analytics contiene el caso de uso del tablero de operaciones:
// KPIs de inventario, distribución por categoría, ranking, márgenes de recetas y mermas.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurant-ops/internal/application/dto"
	"github.com/jhoicas/restaurant-ops/internal/domain/entity"
	"github.com/jhoicas/restaurant-ops/internal/domain/metrics"
	"github.com/jhoicas/restaurant-ops/internal/domain/repository"
	"github.com/jhoicas/restaurant-ops/pkg/money"
)

// Options parámetros de los widgets del tablero.
type Options struct {
	TopItems     int           // barras del ranking por valor
	RecipeCards  int           // tarjetas de margen (primeras N recetas del listado)
	ExpiryWindow time.Duration // ventana crítica de vencimiento
	Clock        func() time.Time
}

// DefaultOptions valores del tablero original: top 5, 3 recetas, 7 días.
func DefaultOptions() Options {
	return Options{TopItems: metrics.DefaultTopN, RecipeCards: 3, ExpiryWindow: metrics.ExpiryWindow}
}

// DashboardUseCase arma el resumen del tablero a partir de las colecciones completas.
//
// Fuente de datos: los repositorios de dominio (lectura). Todo el cálculo lo hace el paquete metrics.
type DashboardUseCase struct {
	ingredients repository.IngredientRepository
	suppliers   repository.SupplierRepository
	menuItems   repository.MenuItemRepository
	wastage     repository.WastageRepository
	format      *money.Formatter
	opts        Options
	log         zerolog.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	ingredients repository.IngredientRepository,
	suppliers repository.SupplierRepository,
	menuItems repository.MenuItemRepository,
	wastage repository.WastageRepository,
	format *money.Formatter,
	opts Options,
	log zerolog.Logger,
) *DashboardUseCase {
	if opts.TopItems <= 0 {
		opts.TopItems = metrics.DefaultTopN
	}
	if opts.ExpiryWindow <= 0 {
		opts.ExpiryWindow = metrics.ExpiryWindow
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &DashboardUseCase{
		ingredients: ingredients,
		suppliers:   suppliers,
		menuItems:   menuItems,
		wastage:     wastage,
		format:      format,
		opts:        opts,
		log:         log,
	}
}

type loadResult[T any] struct {
	items []T
	err   error
}

func load[T any](ctx context.Context, fn func(context.Context) ([]T, error)) <-chan loadResult[T] {
	ch := make(chan loadResult[T], 1)
	go func() {
		items, err := fn(ctx)
		ch <- loadResult[T]{items, err}
	}()
	return ch
}

// GetOverview construye el DashboardOverviewDTO.
//
// Cuatro lecturas en paralelo (ingredientes, proveedores, recetas, mermas) y luego
// el cálculo puro sobre las colecciones en memoria.
func (uc *DashboardUseCase) GetOverview(ctx context.Context) (*dto.DashboardOverviewDTO, error) {
	ingCh := load(ctx, uc.ingredients.List)
	supCh := load(ctx, uc.suppliers.List)
	menuCh := load(ctx, uc.menuItems.List)
	wastCh := load(ctx, uc.wastage.List)

	ings := <-ingCh
	sups := <-supCh
	menu := <-menuCh
	wast := <-wastCh

	if ings.err != nil {
		return nil, fmt.Errorf("dashboard: ingredientes: %w", ings.err)
	}
	if sups.err != nil {
		return nil, fmt.Errorf("dashboard: proveedores: %w", sups.err)
	}
	if menu.err != nil {
		return nil, fmt.Errorf("dashboard: recetas: %w", menu.err)
	}
	if wast.err != nil {
		return nil, fmt.Errorf("dashboard: mermas: %w", wast.err)
	}

	overview := uc.Build(ings.items, sups.items, menu.items, wast.items)
	uc.log.Debug().
		Int("ingredients", len(ings.items)).
		Int("suppliers", len(sups.items)).
		Int("recipes", len(menu.items)).
		Msg("tablero calculado")
	return overview, nil
}

// Build calcula el tablero sobre colecciones ya cargadas.
func (uc *DashboardUseCase) Build(
	ings []*entity.Ingredient,
	sups []*entity.Supplier,
	items []*entity.MenuItem,
	logs []*entity.WastageLog,
) *dto.DashboardOverviewDTO {
	summary := metrics.SummarizeWithWindow(ings, sups, uc.opts.Clock(), uc.opts.ExpiryWindow)

	// ── Distribución por categoría ─────────────────────────────────────────────
	shares := metrics.CategoryDistribution(ings)
	distribution := make([]dto.CategoryShareDTO, 0, len(shares))
	for _, s := range shares {
		distribution = append(distribution, dto.CategoryShareDTO{
			Label:      s.Label,
			Value:      s.Value,
			Percentage: s.Percentage.Round(1),
			Offset:     s.Offset.Round(1),
			Color:      s.Color,
		})
	}

	// ── Ranking por valor ──────────────────────────────────────────────────────
	ranked := metrics.TopIngredients(ings, uc.opts.TopItems)
	top := make([]dto.TopIngredientDTO, 0, len(ranked))
	for _, r := range ranked {
		top = append(top, dto.TopIngredientDTO{
			IngredientID: r.IngredientID,
			Name:         r.Name,
			Category:     r.Category,
			Value:        r.Value,
			WidthPercent: r.WidthPercent.Round(1),
		})
	}

	// ── Márgenes de recetas ────────────────────────────────────────────────────
	costings := metrics.RecipeMargins(items, ings, uc.opts.RecipeCards)
	margins := make([]dto.RecipeMarginDTO, 0, len(costings))
	for _, c := range costings {
		margins = append(margins, dto.RecipeMarginDTO{
			MenuItemID:         c.MenuItemID,
			Name:               c.Name,
			Price:              c.Price,
			ProductionCost:     c.ProductionCost,
			GrossMarginPercent: c.GrossMarginPercent.Round(1),
		})
	}

	// ── Mermas por motivo ──────────────────────────────────────────────────────
	reasons := metrics.WastageByReason(logs, ings)
	wastage := make([]dto.WastageReasonDTO, 0, len(reasons))
	for _, r := range reasons {
		wastage = append(wastage, dto.WastageReasonDTO{
			Reason:   r.Reason,
			Entries:  r.Entries,
			Quantity: r.Quantity,
			Cost:     r.Cost,
		})
	}

	supplierCount := countSuppliers(sups)
	return &dto.DashboardOverviewDTO{
		Stats: dto.QuickStatsDTO{
			TotalInventoryValue: summary.TotalInventoryValue,
			LowStockItems:       summary.LowStockItems,
			ExpiringSoon:        summary.ExpiringSoon,
			PendingPayables:     summary.PendingPayables,
		},
		CategoryDistribution: distribution,
		TopItems:             top,
		RecipeMargins:        margins,
		WastageByReason:      wastage,
		SupplierCount:        supplierCount,
		Labels:               uc.labels(summary.TotalInventoryValue, summary.PendingPayables, supplierCount),
	}
}

func (uc *DashboardUseCase) labels(value, payables decimal.Decimal, vendors int) dto.DashboardLabelsDTO {
	days := int(uc.opts.ExpiryWindow / (24 * time.Hour))
	return dto.DashboardLabelsDTO{
		TotalInventoryValue: uc.format.Format(value),
		PendingPayables:     uc.format.Format(payables),
		PayablesSubtitle:    fmt.Sprintf("Owed to %d vendors", vendors),
		ExpiryWindow:        fmt.Sprintf("Critical window: %d days", days),
	}
}

func countSuppliers(sups []*entity.Supplier) int {
	n := 0
	for _, s := range sups {
		if s != nil {
			n++
		}
	}
	return n
}
