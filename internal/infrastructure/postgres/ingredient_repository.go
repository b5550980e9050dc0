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

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

const ingredientColumns = `id, name, category, current_stock, unit, min_stock_level, unit_cost,
	expiry_date, supplier_id, last_restocked, created_at, updated_at`

// IngredientRepo implementación del puerto IngredientRepository sobre PostgreSQL (usable con pool o tx).
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

// Create persiste un nuevo ingrediente.
func (r *IngredientRepo) Create(ctx context.Context, ing *entity.Ingredient) error {
	if err := r.insert(ctx, ing); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return nil
}

func (r *IngredientRepo) insert(ctx context.Context, ing *entity.Ingredient) error {
	now := time.Now()
	created, updated := ing.CreatedAt, ing.UpdatedAt
	if created.IsZero() {
		created = now
	}
	if updated.IsZero() {
		updated = created
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO ingredients (`+ingredientColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		ing.ID, ing.Name, ing.Category, ing.CurrentStock, ing.Unit, ing.MinStockLevel, ing.UnitCost,
		nullableDate(ing.ExpiryDate), ing.SupplierID, nullableDate(ing.LastRestocked), created, updated,
	)
	return err
}

// GetByID obtiene un ingrediente por ID; nil si no existe.
func (r *IngredientRepo) GetByID(ctx context.Context, id string) (*entity.Ingredient, error) {
	row := r.q.QueryRow(ctx, `SELECT `+ingredientColumns+` FROM ingredients WHERE id = $1`, id)
	ing, err := scanIngredient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient: %w", err)
	}
	return ing, nil
}

// Update reemplaza los datos de un ingrediente existente.
func (r *IngredientRepo) Update(ctx context.Context, ing *entity.Ingredient) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE ingredients SET name = $2, category = $3, current_stock = $4, unit = $5,
			min_stock_level = $6, unit_cost = $7, expiry_date = $8, supplier_id = $9,
			last_restocked = $10, updated_at = $11
		WHERE id = $1`,
		ing.ID, ing.Name, ing.Category, ing.CurrentStock, ing.Unit, ing.MinStockLevel, ing.UnitCost,
		nullableDate(ing.ExpiryDate), ing.SupplierID, nullableDate(ing.LastRestocked), ing.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ingredient: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un ingrediente. Las recetas que lo referencian quedan con un vínculo colgante.
func (r *IngredientRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ingredient: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los ingredientes, el más reciente primero.
func (r *IngredientRepo) List(ctx context.Context) ([]*entity.Ingredient, error) {
	rows, err := r.q.Query(ctx, `SELECT `+ingredientColumns+` FROM ingredients ORDER BY seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Ingredient, 0)
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		list = append(list, ing)
	}
	return list, rows.Err()
}

// ReplaceAll borra la tabla e inserta la colección conservando su orden.
// Usar dentro de una transacción (StateTxRunner) para que sea atómico.
func (r *IngredientRepo) ReplaceAll(ctx context.Context, ingredients []*entity.Ingredient) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM ingredients`); err != nil {
		return fmt.Errorf("clear ingredients: %w", err)
	}
	// Insertar al revés: el primero de la lista recibe el seq más alto.
	for i := len(ingredients) - 1; i >= 0; i-- {
		if err := r.insert(ctx, ingredients[i]); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert ingredient: %w", err)
		}
	}
	return nil
}

func scanIngredient(row pgx.Row) (*entity.Ingredient, error) {
	var ing entity.Ingredient
	var expiry, restocked *time.Time
	err := row.Scan(
		&ing.ID, &ing.Name, &ing.Category, &ing.CurrentStock, &ing.Unit, &ing.MinStockLevel, &ing.UnitCost,
		&expiry, &ing.SupplierID, &restocked, &ing.CreatedAt, &ing.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	ing.ExpiryDate = dateOrZero(expiry)
	ing.LastRestocked = dateOrZero(restocked)
	return &ing, nil
}
