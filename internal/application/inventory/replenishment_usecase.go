package inventory

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurant-ops/internal/application/dto"
	"github.com/jhoicas/restaurant-ops/internal/domain/entity"
	"github.com/jhoicas/restaurant-ops/internal/domain/repository"
)

// idealStockFactor stock objetivo de un pedido respecto del nivel mínimo.
var idealStockFactor = decimal.NewFromFloat(1.5)

// ReplenishmentUseCase genera la lista de reposición del inventario.
// Combina el stock con el uso en recetas para priorizar los ingredientes críticos.
type ReplenishmentUseCase struct {
	ingredients repository.IngredientRepository
	suppliers   repository.SupplierRepository
	menu        repository.MenuItemRepository
	log         zerolog.Logger
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(
	ingredients repository.IngredientRepository,
	suppliers repository.SupplierRepository,
	menu repository.MenuItemRepository,
	log zerolog.Logger,
) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{
		ingredients: ingredients,
		suppliers:   suppliers,
		menu:        menu,
		log:         log,
	}
}

// GenerateReplenishmentList devuelve los ingredientes en o bajo su nivel mínimo con la cantidad
// sugerida de pedido, un ranking de prioridad y el costo estimado agrupado por proveedor.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context) (*dto.ReplenishmentPlanDTO, error) {
	ings, err := uc.ingredients.List(ctx)
	if err != nil {
		return nil, err
	}
	plan := &dto.ReplenishmentPlanDTO{
		Items:              []dto.ReplenishmentSuggestionDTO{},
		BySupplier:         []dto.SupplierOrderDTO{},
		TotalEstimatedCost: decimal.Zero,
	}

	// 1. Ingredientes en o bajo el mínimo
	below := make([]*entity.Ingredient, 0, len(ings))
	for _, ing := range ings {
		if ing.CurrentStock.LessThanOrEqual(ing.MinStockLevel) {
			below = append(below, ing)
		}
	}
	if len(below) == 0 {
		return plan, nil
	}

	// 2. Uso en recetas y nombres de proveedores
	items, err := uc.menu.List(ctx)
	if err != nil {
		return nil, err
	}
	usage := make(map[string]int)
	for _, item := range items {
		for _, line := range item.Ingredients {
			usage[line.IngredientID]++
		}
	}
	sups, err := uc.suppliers.List(ctx)
	if err != nil {
		return nil, err
	}
	supplierName := make(map[string]string, len(sups))
	for _, s := range sups {
		supplierName[s.ID] = s.Name
	}

	// 3. Sugerencias
	for _, ing := range below {
		idealStock := ing.MinStockLevel.Mul(idealStockFactor)
		suggestedQty := idealStock.Sub(ing.CurrentStock)
		if suggestedQty.LessThanOrEqual(decimal.Zero) {
			suggestedQty = decimal.Zero
		}
		plan.Items = append(plan.Items, dto.ReplenishmentSuggestionDTO{
			IngredientID:       ing.ID,
			Name:               ing.Name,
			Category:           ing.Category,
			Unit:               ing.Unit,
			SupplierID:         ing.SupplierID,
			SupplierName:       supplierName[ing.SupplierID],
			CurrentStock:       ing.CurrentStock,
			MinStockLevel:      ing.MinStockLevel,
			IdealStock:         idealStock,
			SuggestedOrderQty:  suggestedQty,
			UnitCost:           ing.UnitCost,
			EstimatedOrderCost: suggestedQty.Mul(ing.UnitCost),
			UsedInRecipes:      usage[ing.ID],
		})
	}

	// 4. Ordenar: primero los agotados, luego más recetas afectadas,
	//    finalmente mayor déficit absoluto bajo el mínimo.
	sort.SliceStable(plan.Items, func(i, j int) bool {
		a, b := plan.Items[i], plan.Items[j]
		if a.CurrentStock.IsZero() != b.CurrentStock.IsZero() {
			return a.CurrentStock.IsZero()
		}
		if a.UsedInRecipes != b.UsedInRecipes {
			return a.UsedInRecipes > b.UsedInRecipes
		}
		defA := a.MinStockLevel.Sub(a.CurrentStock)
		defB := b.MinStockLevel.Sub(b.CurrentStock)
		return defA.GreaterThan(defB)
	})

	// 5. Prioridad (1 = más urgente) y agregado por proveedor en orden de aparición
	index := make(map[string]int)
	for i := range plan.Items {
		s := &plan.Items[i]
		s.Priority = i + 1
		plan.TotalEstimatedCost = plan.TotalEstimatedCost.Add(s.EstimatedOrderCost)
		pos, ok := index[s.SupplierID]
		if !ok {
			pos = len(plan.BySupplier)
			index[s.SupplierID] = pos
			plan.BySupplier = append(plan.BySupplier, dto.SupplierOrderDTO{
				SupplierID:    s.SupplierID,
				SupplierName:  s.SupplierName,
				EstimatedCost: decimal.Zero,
			})
		}
		plan.BySupplier[pos].Items++
		plan.BySupplier[pos].EstimatedCost = plan.BySupplier[pos].EstimatedCost.Add(s.EstimatedOrderCost)
	}

	uc.log.Debug().Int("items", len(plan.Items)).Int("suppliers", len(plan.BySupplier)).Msg("lista de reposición generada")
	return plan, nil
}
