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
	"github.com/jhoicas/restaurant-ops/internal/domain/repository"
)

// WastageUseCase registro de mermas. No descuenta stock: el inventario se ajusta editando el ingrediente.
type WastageUseCase struct {
	repo        repository.WastageRepository
	ingredients repository.IngredientRepository
	log         zerolog.Logger
}

// NewWastageUseCase construye el caso de uso.
func NewWastageUseCase(repo repository.WastageRepository, ingredients repository.IngredientRepository, log zerolog.Logger) *WastageUseCase {
	return &WastageUseCase{repo: repo, ingredients: ingredients, log: log}
}

// Create registra una merma. El ingrediente debe existir, la cantidad ser positiva y el motivo válido.
func (uc *WastageUseCase) Create(ctx context.Context, in dto.WastageRequest) (*dto.WastageResponse, error) {
	ingredientID := strings.TrimSpace(in.IngredientID)
	reason := strings.ToLower(strings.TrimSpace(in.Reason))
	if ingredientID == "" || !in.Quantity.IsPositive() || !entity.IsValidWastageReason(reason) {
		return nil, domain.ErrInvalidInput
	}
	ing, err := uc.ingredients.GetByID(ctx, ingredientID)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrInvalidInput
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if date.IsZero() {
		y, m, d := now.Date()
		date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	w := &entity.WastageLog{
		ID:           uuid.New().String(),
		IngredientID: ingredientID,
		Quantity:     in.Quantity,
		Reason:       reason,
		Date:         date,
		LoggedBy:     strings.TrimSpace(in.LoggedBy),
		CreatedAt:    now,
	}
	if err := uc.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	uc.log.Debug().
		Str("wastage_id", w.ID).
		Str("ingredient_id", w.IngredientID).
		Str("reason", w.Reason).
		Str("quantity", w.Quantity.String()).
		Msg("merma registrada")
	return toWastageResponse(w), nil
}

// Delete elimina un registro de merma.
func (uc *WastageUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Debug().Str("wastage_id", id).Msg("merma eliminada")
	return nil
}

// List devuelve las mermas, la más reciente primero.
func (uc *WastageUseCase) List(ctx context.Context) (*dto.ListResponse[dto.WastageResponse], error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WastageResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWastageResponse(w))
	}
	return &dto.ListResponse[dto.WastageResponse]{Items: items, Total: len(items)}, nil
}

func toWastageResponse(w *entity.WastageLog) *dto.WastageResponse {
	return &dto.WastageResponse{
		ID:           w.ID,
		IngredientID: w.IngredientID,
		Quantity:     w.Quantity,
		Reason:       w.Reason,
		Date:         dto.FormatDate(w.Date),
		LoggedBy:     w.LoggedBy,
		CreatedAt:    w.CreatedAt,
	}
}
