package repository

import (
	"context"

	"github.com/jhoicas/restaurant-ops/internal/domain/entity"
)

// MenuItemRepository define el puerto de persistencia para recetas (MenuItem con sus líneas).
type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id string) (*entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.MenuItem, error)
	ReplaceAll(ctx context.Context, items []*entity.MenuItem) error
}
