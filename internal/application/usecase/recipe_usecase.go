package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/restaurant-ops/internal/application/dto"
	"github.com/jhoicas/restaurant-ops/internal/domain"
	"github.com/jhoicas/restaurant-ops/internal/domain/entity"
	"github.com/jhoicas/restaurant-ops/internal/domain/metrics"
	"github.com/jhoicas/restaurant-ops/internal/domain/repository"
)

// RecipeUseCase casos de uso de recetas (MenuItem). Las respuestas incluyen costo de producción y margen.
type RecipeUseCase struct {
	repo        repository.MenuItemRepository
	ingredients repository.IngredientRepository
	log         zerolog.Logger
}

// NewRecipeUseCase construye el caso de uso. ingredients se usa solo para costear.
func NewRecipeUseCase(repo repository.MenuItemRepository, ingredients repository.IngredientRepository, log zerolog.Logger) *RecipeUseCase {
	return &RecipeUseCase{repo: repo, ingredients: ingredients, log: log}
}

// Create registra una receta. Las líneas en cero se descartan.
func (uc *RecipeUseCase) Create(ctx context.Context, in dto.RecipeRequest) (*dto.RecipeResponse, error) {
	item, err := menuItemFromRequest(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	item.ID = uuid.New().String()
	item.CreatedAt = now
	item.UpdatedAt = now
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	uc.log.Debug().Str("menu_item_id", item.ID).Int("lines", len(item.Ingredients)).Msg("receta creada")
	return uc.costed(ctx, item)
}

// GetByID obtiene una receta costeada. ErrNotFound si no existe.
func (uc *RecipeUseCase) GetByID(ctx context.Context, id string) (*dto.RecipeResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return uc.costed(ctx, item)
}

// Update reemplaza nombre, categoría, precio y líneas de una receta existente.
func (uc *RecipeUseCase) Update(ctx context.Context, id string, in dto.RecipeRequest) (*dto.RecipeResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	item, err := menuItemFromRequest(in)
	if err != nil {
		return nil, err
	}
	item.ID = current.ID
	item.CreatedAt = current.CreatedAt
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	uc.log.Debug().Str("menu_item_id", item.ID).Msg("receta actualizada")
	return uc.costed(ctx, item)
}

// Delete elimina una receta.
func (uc *RecipeUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Debug().Str("menu_item_id", id).Msg("receta eliminada")
	return nil
}

// List devuelve todas las recetas costeadas contra el inventario actual.
func (uc *RecipeUseCase) List(ctx context.Context) (*dto.ListResponse[dto.RecipeResponse], error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	ings, err := uc.ingredients.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := metrics.NewIngredientIndex(ings)
	out := make([]dto.RecipeResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toRecipeResponse(item, idx.Cost(item)))
	}
	return &dto.ListResponse[dto.RecipeResponse]{Items: out, Total: len(out)}, nil
}

func (uc *RecipeUseCase) costed(ctx context.Context, item *entity.MenuItem) (*dto.RecipeResponse, error) {
	ings, err := uc.ingredients.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := toRecipeResponse(item, metrics.CostRecipe(item, ings))
	return &resp, nil
}

func menuItemFromRequest(in dto.RecipeRequest) (*entity.MenuItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	lines := make([]entity.RecipeLine, 0, len(in.Ingredients))
	for _, l := range in.Ingredients {
		id := strings.TrimSpace(l.IngredientID)
		if id == "" || l.Quantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		lines = append(lines, entity.RecipeLine{IngredientID: id, Quantity: l.Quantity})
	}
	item := &entity.MenuItem{
		Name:        name,
		Category:    strings.TrimSpace(in.Category),
		Price:       in.Price,
		Ingredients: lines,
	}
	item.NormalizeLines()
	return item, nil
}

func toRecipeResponse(item *entity.MenuItem, c metrics.RecipeCosting) dto.RecipeResponse {
	lines := make([]dto.RecipeLineDTO, 0, len(item.Ingredients))
	for _, l := range item.Ingredients {
		lines = append(lines, dto.RecipeLineDTO{IngredientID: l.IngredientID, Quantity: l.Quantity})
	}
	return dto.RecipeResponse{
		ID:                 item.ID,
		Name:               item.Name,
		Category:           item.Category,
		Price:              item.Price,
		Ingredients:        lines,
		ProductionCost:     c.ProductionCost,
		GrossProfit:        c.GrossProfit,
		GrossMarginPercent: c.GrossMarginPercent.Round(1),
		CreatedAt:          item.CreatedAt,
		UpdatedAt:          item.UpdatedAt,
	}
}
