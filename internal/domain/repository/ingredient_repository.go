package repository

import (
	"context"

	"github.com/jhoicas/restaurant-ops/internal/domain/entity"
)

// IngredientRepository define el puerto de persistencia para Ingredient (DIP).
// List devuelve el orden de presentación: primero el creado más recientemente.
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *entity.Ingredient) error
	GetByID(ctx context.Context, id string) (*entity.Ingredient, error)
	Update(ctx context.Context, ingredient *entity.Ingredient) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Ingredient, error)
	ReplaceAll(ctx context.Context, ingredients []*entity.Ingredient) error
}
