package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/restaurant-ops/internal/domain"
	"github.com/jhoicas/restaurant-ops/internal/domain/entity"
	"github.com/jhoicas/restaurant-ops/internal/domain/repository"
)

var _ repository.WastageRepository = (*WastageRepo)(nil)

// WastageRepo registro de mermas sobre PostgreSQL.
type WastageRepo struct {
	q Querier
}

// NewWastageRepository construye el adaptador.
func NewWastageRepository(q Querier) *WastageRepo {
	return &WastageRepo{q: q}
}

// Create persiste una merma.
func (r *WastageRepo) Create(ctx context.Context, w *entity.WastageLog) error {
	created := w.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO wastage_logs (id, ingredient_id, quantity, reason, date, logged_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		w.ID, w.IngredientID, w.Quantity, w.Reason, nullableDate(w.Date), w.LoggedBy, created,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert wastage: %w", err)
	}
	return nil
}

// Delete elimina una merma.
func (r *WastageRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM wastage_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete wastage: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve las mermas, la más reciente primero.
func (r *WastageRepo) List(ctx context.Context) ([]*entity.WastageLog, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, ingredient_id, quantity, reason, date, logged_by, created_at
		FROM wastage_logs ORDER BY seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("list wastage: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.WastageLog, 0)
	for rows.Next() {
		var w entity.WastageLog
		var date *time.Time
		if err := rows.Scan(&w.ID, &w.IngredientID, &w.Quantity, &w.Reason, &date, &w.LoggedBy, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan wastage: %w", err)
		}
		w.Date = dateOrZero(date)
		list = append(list, &w)
	}
	return list, rows.Err()
}
