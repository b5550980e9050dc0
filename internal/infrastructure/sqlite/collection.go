package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/restaurant-ops/internal/domain"
)

// collection arreglo JSON de registros T guardado bajo key.
// mu es nil cuando la colección está atada a una transacción (el Store ya tiene el lock).
type collection[T any] struct {
	q    sqlx.ExtContext
	mu   *sync.Mutex
	key  string
	idOf func(T) string
}

func (c collection[T]) lock() func() {
	if c.mu == nil {
		return func() {}
	}
	c.mu.Lock()
	return c.mu.Unlock
}

// load lee la colección; clave inexistente = colección vacía.
func (c collection[T]) load(ctx context.Context) ([]T, error) {
	var raw string
	err := sqlx.GetContext(ctx, c.q, &raw, `SELECT value FROM kv_store WHERE key = ?`, c.key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("leer %s: %w", c.key, err)
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", c.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// save reemplaza la colección completa.
func (c collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("codificar %s: %w", c.key, err)
	}
	_, err = c.q.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		c.key, string(raw), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("guardar %s: %w", c.key, err)
	}
	return nil
}

func (c collection[T]) all(ctx context.Context) ([]T, error) {
	defer c.lock()()
	return c.load(ctx)
}

func (c collection[T]) find(ctx context.Context, id string) (*T, error) {
	defer c.lock()()
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if c.idOf(items[i]) == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// prepend inserta rec al inicio (el más reciente primero). ID repetido = ErrDuplicate.
func (c collection[T]) prepend(ctx context.Context, rec T) error {
	defer c.lock()()
	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	id := c.idOf(rec)
	for _, it := range items {
		if c.idOf(it) == id {
			return domain.ErrDuplicate
		}
	}
	return c.save(ctx, append([]T{rec}, items...))
}

// replace sustituye en su posición el registro con el mismo ID.
func (c collection[T]) replace(ctx context.Context, rec T) error {
	defer c.lock()()
	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	id := c.idOf(rec)
	for i := range items {
		if c.idOf(items[i]) == id {
			items[i] = rec
			return c.save(ctx, items)
		}
	}
	return domain.ErrNotFound
}

func (c collection[T]) remove(ctx context.Context, id string) error {
	defer c.lock()()
	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	kept := make([]T, 0, len(items))
	for _, it := range items {
		if c.idOf(it) != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return domain.ErrNotFound
	}
	return c.save(ctx, kept)
}

func (c collection[T]) replaceAll(ctx context.Context, items []T) error {
	defer c.lock()()
	return c.save(ctx, items)
}
