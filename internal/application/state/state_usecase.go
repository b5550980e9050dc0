// Package state exporta, importa y siembra el estado completo (inventario, proveedores y recetas)
// en el formato JSON del almacén clave-valor original.
package state

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/restaurant-ops/internal/application/dto"
	"github.com/jhoicas/restaurant-ops/internal/domain"
	"github.com/jhoicas/restaurant-ops/internal/domain/entity"
	"github.com/jhoicas/restaurant-ops/internal/domain/repository"
)

// ImportResult conteo de registros escritos por colección y registros descartados.
type ImportResult struct {
	Ingredients int `json:"ingredients"`
	Suppliers   int `json:"suppliers"`
	Recipes     int `json:"recipes"`
	Skipped     int `json:"skipped"`
}

// UseCase casos de uso sobre el estado completo.
type UseCase struct {
	ingredients repository.IngredientRepository
	suppliers   repository.SupplierRepository
	menuItems   repository.MenuItemRepository
	tx          repository.StateTxRunner
	log         zerolog.Logger
}

// NewUseCase construye el caso de uso. tx se usa para que la importación sea atómica.
func NewUseCase(
	ingredients repository.IngredientRepository,
	suppliers repository.SupplierRepository,
	menuItems repository.MenuItemRepository,
	tx repository.StateTxRunner,
	log zerolog.Logger,
) *UseCase {
	return &UseCase{ingredients: ingredients, suppliers: suppliers, menuItems: menuItems, tx: tx, log: log}
}

// Export devuelve las tres colecciones en orden de presentación.
func (uc *UseCase) Export(ctx context.Context) (*dto.StateDocument, error) {
	ings, err := uc.ingredients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("state: exportar inventario: %w", err)
	}
	sups, err := uc.suppliers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("state: exportar proveedores: %w", err)
	}
	items, err := uc.menuItems.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("state: exportar recetas: %w", err)
	}

	doc := &dto.StateDocument{
		Inventory: make([]dto.LegacyIngredient, 0, len(ings)),
		Suppliers: make([]dto.LegacySupplier, 0, len(sups)),
		Recipes:   make([]dto.LegacyMenuItem, 0, len(items)),
	}
	for _, i := range ings {
		doc.Inventory = append(doc.Inventory, dto.ToLegacyIngredient(i))
	}
	for _, s := range sups {
		doc.Suppliers = append(doc.Suppliers, dto.ToLegacySupplier(s))
	}
	for _, m := range items {
		doc.Recipes = append(doc.Recipes, dto.ToLegacyMenuItem(m))
	}
	return doc, nil
}

// Import reemplaza las colecciones presentes en raw dentro de una sola transacción.
// Una clave ausente deja su colección intacta; un arreglo vacío la vacía.
// Los números se convierten con tolerancia (texto no numérico = 0), las fechas inválidas
// quedan vacías y los registros sin id o con id repetido se descartan.
func (uc *UseCase) Import(ctx context.Context, raw []byte) (*ImportResult, error) {
	var doc dto.StateDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: documento de estado: %v", domain.ErrInvalidInput, err)
	}
	return uc.ImportDocument(ctx, &doc)
}

// ImportDocument como Import pero con el documento ya decodificado.
func (uc *UseCase) ImportDocument(ctx context.Context, doc *dto.StateDocument) (*ImportResult, error) {
	res := &ImportResult{}

	var ings []*entity.Ingredient
	if doc.Inventory != nil {
		ings = make([]*entity.Ingredient, 0, len(doc.Inventory))
		seen := make(map[string]bool, len(doc.Inventory))
		for _, r := range doc.Inventory {
			if !uc.accept(r.ID, dto.KeyInventory, seen) {
				res.Skipped++
				continue
			}
			ings = append(ings, r.ToEntity())
		}
		res.Ingredients = len(ings)
	}

	var sups []*entity.Supplier
	if doc.Suppliers != nil {
		sups = make([]*entity.Supplier, 0, len(doc.Suppliers))
		seen := make(map[string]bool, len(doc.Suppliers))
		for _, r := range doc.Suppliers {
			if !uc.accept(r.ID, dto.KeySuppliers, seen) {
				res.Skipped++
				continue
			}
			sups = append(sups, r.ToEntity())
		}
		res.Suppliers = len(sups)
	}

	var items []*entity.MenuItem
	if doc.Recipes != nil {
		items = make([]*entity.MenuItem, 0, len(doc.Recipes))
		seen := make(map[string]bool, len(doc.Recipes))
		for _, r := range doc.Recipes {
			if !uc.accept(r.ID, dto.KeyRecipes, seen) {
				res.Skipped++
				continue
			}
			items = append(items, r.ToEntity())
		}
		res.Recipes = len(items)
	}

	err := uc.tx.Run(ctx, func(repos repository.StateRepos) error {
		if ings != nil {
			if err := repos.Ingredients.ReplaceAll(ctx, ings); err != nil {
				return fmt.Errorf("inventario: %w", err)
			}
		}
		if sups != nil {
			if err := repos.Suppliers.ReplaceAll(ctx, sups); err != nil {
				return fmt.Errorf("proveedores: %w", err)
			}
		}
		if items != nil {
			if err := repos.MenuItems.ReplaceAll(ctx, items); err != nil {
				return fmt.Errorf("recetas: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("state: importar: %w", err)
	}

	uc.log.Info().
		Int("ingredients", res.Ingredients).
		Int("suppliers", res.Suppliers).
		Int("recipes", res.Recipes).
		Int("skipped", res.Skipped).
		Msg("estado importado")
	return res, nil
}

func (uc *UseCase) accept(id, key string, seen map[string]bool) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		uc.log.Warn().Str("key", key).Msg("registro sin id descartado")
		return false
	}
	if seen[id] {
		uc.log.Warn().Str("key", key).Str("id", id).Msg("registro con id repetido descartado")
		return false
	}
	seen[id] = true
	return true
}
