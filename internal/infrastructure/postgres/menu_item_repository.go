package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurant-ops/internal/domain"
	"github.com/jhoicas/restaurant-ops/internal/domain/entity"
	"github.com/jhoicas/restaurant-ops/internal/domain/repository"
)

var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

// MenuItemRepo recetas y sus líneas (menu_items + menu_item_lines) sobre PostgreSQL.
type MenuItemRepo struct {
	q Querier
}

// NewMenuItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMenuItemRepository(q Querier) *MenuItemRepo {
	return &MenuItemRepo{q: q}
}

// Create persiste la receta y sus líneas en una misma transacción.
func (r *MenuItemRepo) Create(ctx context.Context, item *entity.MenuItem) error {
	err := pgx.BeginFunc(ctx, r.q, func(tx pgx.Tx) error {
		return insertMenuItem(ctx, tx, item)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

func insertMenuItem(ctx context.Context, tx pgx.Tx, item *entity.MenuItem) error {
	created := item.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	updated := item.UpdatedAt
	if updated.IsZero() {
		updated = created
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO menu_items (id, name, category, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		item.ID, item.Name, item.Category, item.Price, created, updated,
	)
	if err != nil {
		return err
	}
	return insertLines(ctx, tx, item)
}

func insertLines(ctx context.Context, tx pgx.Tx, item *entity.MenuItem) error {
	if len(item.Ingredients) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for i, l := range item.Ingredients {
		batch.Queue(`
			INSERT INTO menu_item_lines (menu_item_id, position, ingredient_id, quantity)
			VALUES ($1, $2, $3, $4)`,
			item.ID, i, l.IngredientID, l.Quantity,
		)
	}
	return tx.SendBatch(ctx, batch).Close()
}

// GetByID obtiene la receta con sus líneas; nil si no existe.
func (r *MenuItemRepo) GetByID(ctx context.Context, id string) (*entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.q.QueryRow(ctx, `
		SELECT id, name, category, price, created_at, updated_at FROM menu_items WHERE id = $1`, id,
	).Scan(&m.ID, &m.Name, &m.Category, &m.Price, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	lines, err := r.linesByItem(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	m.Ingredients = lines[id]
	if m.Ingredients == nil {
		m.Ingredients = []entity.RecipeLine{}
	}
	return &m, nil
}

// Update reemplaza la receta y todas sus líneas.
func (r *MenuItemRepo) Update(ctx context.Context, item *entity.MenuItem) error {
	err := pgx.BeginFunc(ctx, r.q, func(tx pgx.Tx) error {
		cmd, err := tx.Exec(ctx, `
			UPDATE menu_items SET name = $2, category = $3, price = $4, updated_at = $5 WHERE id = $1`,
			item.ID, item.Name, item.Category, item.Price, item.UpdatedAt,
		)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		if _, err := tx.Exec(ctx, `DELETE FROM menu_item_lines WHERE menu_item_id = $1`, item.ID); err != nil {
			return err
		}
		return insertLines(ctx, tx, item)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("update menu item: %w", err)
	}
	return nil
}

// Delete elimina la receta (las líneas se borran en cascada).
func (r *MenuItemRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todas las recetas con sus líneas, la más reciente primero.
func (r *MenuItemRepo) List(ctx context.Context) ([]*entity.MenuItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, category, price, created_at, updated_at FROM menu_items ORDER BY seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	list := make([]*entity.MenuItem, 0)
	ids := make([]string, 0)
	for rows.Next() {
		var m entity.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Category, &m.Price, &m.CreatedAt, &m.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		list = append(list, &m)
		ids = append(ids, m.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	if len(ids) == 0 {
		return list, nil
	}

	lines, err := r.linesByItem(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, m := range list {
		m.Ingredients = lines[m.ID]
		if m.Ingredients == nil {
			m.Ingredients = []entity.RecipeLine{}
		}
	}
	return list, nil
}

func (r *MenuItemRepo) linesByItem(ctx context.Context, ids []string) (map[string][]entity.RecipeLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT menu_item_id, ingredient_id, quantity FROM menu_item_lines
		WHERE menu_item_id = ANY($1) ORDER BY menu_item_id, position`, ids)
	if err != nil {
		return nil, fmt.Errorf("list menu item lines: %w", err)
	}
	defer rows.Close()
	out := make(map[string][]entity.RecipeLine, len(ids))
	for rows.Next() {
		var itemID string
		var l entity.RecipeLine
		if err := rows.Scan(&itemID, &l.IngredientID, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan menu item line: %w", err)
		}
		out[itemID] = append(out[itemID], l)
	}
	return out, rows.Err()
}

// ReplaceAll borra todas las recetas e inserta la colección conservando su orden.
func (r *MenuItemRepo) ReplaceAll(ctx context.Context, items []*entity.MenuItem) error {
	err := pgx.BeginFunc(ctx, r.q, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM menu_items`); err != nil {
			return err
		}
		for i := len(items) - 1; i >= 0; i-- {
			if err := insertMenuItem(ctx, tx, items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("replace menu items: %w", err)
	}
	return nil
}
