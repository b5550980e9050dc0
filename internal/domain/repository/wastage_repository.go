package repository

import (
	"context"

	"github.com/jhoicas/restaurant-ops/internal/domain/entity"
)

// WastageRepository registro de mermas (solo alta, baja y listado).
type WastageRepository interface {
	Create(ctx context.Context, log *entity.WastageLog) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.WastageLog, error)
}
