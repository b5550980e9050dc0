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
	"github.com/jhoicas/restaurant-ops/internal/domain/inventory"
	"github.com/jhoicas/restaurant-ops/internal/domain/repository"
)

// CategoryAll valor del filtro de categoría que no filtra.
const CategoryAll = "All"

// IngredientUseCase casos de uso CRUD para el inventario de ingredientes.
type IngredientUseCase struct {
	repo repository.IngredientRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewIngredientUseCase construye el caso de uso.
func NewIngredientUseCase(repo repository.IngredientRepository, log zerolog.Logger) *IngredientUseCase {
	return &IngredientUseCase{repo: repo, log: log, now: time.Now}
}

// Create valida y registra un ingrediente nuevo. Queda primero en el listado.
func (uc *IngredientUseCase) Create(ctx context.Context, in dto.IngredientRequest) (*dto.IngredientResponse, error) {
	ing, err := uc.fromRequest(in)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	ing.ID = uuid.New().String()
	ing.CreatedAt = now
	ing.UpdatedAt = now
	if err := uc.repo.Create(ctx, ing); err != nil {
		return nil, err
	}
	uc.log.Debug().Str("ingredient_id", ing.ID).Str("name", ing.Name).Msg("ingrediente creado")
	return uc.toResponse(ing), nil
}

// GetByID obtiene un ingrediente. ErrNotFound si no existe.
func (uc *IngredientUseCase) GetByID(ctx context.Context, id string) (*dto.IngredientResponse, error) {
	ing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(ing), nil
}

// Update reemplaza los campos editables de un ingrediente existente.
func (uc *IngredientUseCase) Update(ctx context.Context, id string, in dto.IngredientRequest) (*dto.IngredientResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	ing, err := uc.fromRequest(in)
	if err != nil {
		return nil, err
	}
	ing.ID = current.ID
	ing.CreatedAt = current.CreatedAt
	ing.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, ing); err != nil {
		return nil, err
	}
	uc.log.Debug().Str("ingredient_id", ing.ID).Msg("ingrediente actualizado")
	return uc.toResponse(ing), nil
}

// Restock registra una entrada de mercancía: suma stock, recalcula el costo promedio ponderado
// y actualiza la fecha de reposición.
func (uc *IngredientUseCase) Restock(ctx context.Context, id string, in dto.RestockRequest) (*dto.IngredientResponse, error) {
	if !in.Quantity.IsPositive() || in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	expiry, err := dto.ParseDate(in.ExpiryDate)
	if err != nil {
		return nil, err
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = uc.today()
	}
	ing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	previousCost := ing.UnitCost
	inventory.ApplyRestock(ing, inventory.Restock{
		Quantity:   in.Quantity,
		UnitCost:   in.UnitCost,
		ExpiryDate: expiry,
		Date:       date,
	})
	ing.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, ing); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("ingredient_id", ing.ID).
		Str("quantity", in.Quantity.String()).
		Str("previous_cost", previousCost.String()).
		Str("unit_cost", ing.UnitCost.String()).
		Msg("reposición registrada")
	return uc.toResponse(ing), nil
}

// Delete elimina un ingrediente. Las recetas que lo referencian quedan con la línea sin resolver (costo cero).
func (uc *IngredientUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Debug().Str("ingredient_id", id).Msg("ingrediente eliminado")
	return nil
}

// List devuelve el inventario filtrado por nombre y categoría, en orden de presentación.
func (uc *IngredientUseCase) List(ctx context.Context, f dto.IngredientFilter) (*dto.ListResponse[dto.IngredientResponse], error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	search := strings.ToLower(strings.TrimSpace(f.Search))
	category := strings.TrimSpace(f.Category)
	if category == CategoryAll {
		category = ""
	}
	items := make([]dto.IngredientResponse, 0, len(list))
	for _, ing := range list {
		if search != "" && !strings.Contains(strings.ToLower(ing.Name), search) {
			continue
		}
		if category != "" && ing.Category != category {
			continue
		}
		items = append(items, *uc.toResponse(ing))
	}
	return &dto.ListResponse[dto.IngredientResponse]{Items: items, Total: len(items)}, nil
}

// Categories devuelve "All" seguido de las categorías distintas en orden de primera aparición.
func (uc *IngredientUseCase) Categories(ctx context.Context) (*dto.CategoriesResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(list))
	out := []string{CategoryAll}
	for _, ing := range list {
		if seen[ing.Category] {
			continue
		}
		seen[ing.Category] = true
		out = append(out, ing.Category)
	}
	return &dto.CategoriesResponse{Categories: out}, nil
}

func (uc *IngredientUseCase) fromRequest(in dto.IngredientRequest) (*entity.Ingredient, error) {
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	if name == "" || category == "" {
		return nil, domain.ErrInvalidInput
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = entity.UnitKilogram
	}
	if !entity.IsValidUnit(unit) {
		return nil, domain.ErrInvalidInput
	}
	if in.CurrentStock.IsNegative() || in.MinStockLevel.IsNegative() || in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	expiry, err := dto.ParseDate(in.ExpiryDate)
	if err != nil {
		return nil, err
	}
	restocked, err := dto.ParseDate(in.LastRestocked)
	if err != nil {
		return nil, err
	}
	if restocked.IsZero() {
		restocked = uc.today()
	}
	return &entity.Ingredient{
		Name:          name,
		Category:      category,
		CurrentStock:  in.CurrentStock,
		Unit:          unit,
		MinStockLevel: in.MinStockLevel,
		UnitCost:      in.UnitCost,
		ExpiryDate:    expiry,
		SupplierID:    strings.TrimSpace(in.SupplierID),
		LastRestocked: restocked,
	}, nil
}

func (uc *IngredientUseCase) today() time.Time {
	y, m, d := uc.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (uc *IngredientUseCase) toResponse(i *entity.Ingredient) *dto.IngredientResponse {
	return &dto.IngredientResponse{
		ID:            i.ID,
		Name:          i.Name,
		Category:      i.Category,
		CurrentStock:  i.CurrentStock,
		Unit:          i.Unit,
		MinStockLevel: i.MinStockLevel,
		UnitCost:      i.UnitCost,
		ExpiryDate:    dto.FormatDate(i.ExpiryDate),
		SupplierID:    i.SupplierID,
		LastRestocked: dto.FormatDate(i.LastRestocked),
		Status:        string(i.StatusAt(uc.now())),
		StockValue:    i.StockValue(),
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}
