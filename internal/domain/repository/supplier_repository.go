package repository

import (
	"context"

	"github.com/jhoicas/restaurant-ops/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Supplier, error)
	ReplaceAll(ctx context.Context, suppliers []*entity.Supplier) error
}
