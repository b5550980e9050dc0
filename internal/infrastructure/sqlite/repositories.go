package sqlite

import (
	"context"
	"sync"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/restaurant-ops/internal/application/dto"
	"github.com/jhoicas/restaurant-ops/internal/domain/entity"
	"github.com/jhoicas/restaurant-ops/internal/domain/repository"
)

var (
	_ repository.IngredientRepository = (*IngredientRepo)(nil)
	_ repository.SupplierRepository   = (*SupplierRepo)(nil)
	_ repository.MenuItemRepository   = (*MenuItemRepo)(nil)
	_ repository.WastageRepository    = (*WastageRepo)(nil)
)

func ingredientCollection(q sqlx.ExtContext, mu *sync.Mutex) collection[dto.LegacyIngredient] {
	return collection[dto.LegacyIngredient]{q: q, mu: mu, key: dto.KeyInventory,
		idOf: func(r dto.LegacyIngredient) string { return r.ID }}
}

func supplierCollection(q sqlx.ExtContext, mu *sync.Mutex) collection[dto.LegacySupplier] {
	return collection[dto.LegacySupplier]{q: q, mu: mu, key: dto.KeySuppliers,
		idOf: func(r dto.LegacySupplier) string { return r.ID }}
}

func menuItemCollection(q sqlx.ExtContext, mu *sync.Mutex) collection[dto.LegacyMenuItem] {
	return collection[dto.LegacyMenuItem]{q: q, mu: mu, key: dto.KeyRecipes,
		idOf: func(r dto.LegacyMenuItem) string { return r.ID }}
}

func wastageCollection(q sqlx.ExtContext, mu *sync.Mutex) collection[dto.LegacyWastageLog] {
	return collection[dto.LegacyWastageLog]{q: q, mu: mu, key: dto.KeyWastage,
		idOf: func(r dto.LegacyWastageLog) string { return r.ID }}
}

// ── Ingredientes ──────────────────────────────────────────────────────────────

// IngredientRepo ingredientes bajo la clave p_inventory.
type IngredientRepo struct {
	c collection[dto.LegacyIngredient]
}

// NewIngredientRepository construye el repositorio sobre el store.
func NewIngredientRepository(s *Store) *IngredientRepo {
	return &IngredientRepo{c: ingredientCollection(s.db, &s.mu)}
}

func (r *IngredientRepo) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	return r.c.prepend(ctx, dto.ToLegacyIngredient(ingredient))
}

func (r *IngredientRepo) GetByID(ctx context.Context, id string) (*entity.Ingredient, error) {
	rec, err := r.c.find(ctx, id)
	if err != nil || rec == nil {
		return nil, err
	}
	return rec.ToEntity(), nil
}

func (r *IngredientRepo) Update(ctx context.Context, ingredient *entity.Ingredient) error {
	return r.c.replace(ctx, dto.ToLegacyIngredient(ingredient))
}

func (r *IngredientRepo) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

func (r *IngredientRepo) List(ctx context.Context) ([]*entity.Ingredient, error) {
	recs, err := r.c.all(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Ingredient, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.ToEntity())
	}
	return out, nil
}

func (r *IngredientRepo) ReplaceAll(ctx context.Context, ingredients []*entity.Ingredient) error {
	recs := make([]dto.LegacyIngredient, 0, len(ingredients))
	for _, i := range ingredients {
		recs = append(recs, dto.ToLegacyIngredient(i))
	}
	return r.c.replaceAll(ctx, recs)
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// SupplierRepo proveedores bajo la clave p_suppliers.
type SupplierRepo struct {
	c collection[dto.LegacySupplier]
}

// NewSupplierRepository construye el repositorio sobre el store.
func NewSupplierRepository(s *Store) *SupplierRepo {
	return &SupplierRepo{c: supplierCollection(s.db, &s.mu)}
}

func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	return r.c.prepend(ctx, dto.ToLegacySupplier(supplier))
}

func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	rec, err := r.c.find(ctx, id)
	if err != nil || rec == nil {
		return nil, err
	}
	return rec.ToEntity(), nil
}

func (r *SupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	return r.c.replace(ctx, dto.ToLegacySupplier(supplier))
}

func (r *SupplierRepo) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	recs, err := r.c.all(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Supplier, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.ToEntity())
	}
	return out, nil
}

func (r *SupplierRepo) ReplaceAll(ctx context.Context, suppliers []*entity.Supplier) error {
	recs := make([]dto.LegacySupplier, 0, len(suppliers))
	for _, s := range suppliers {
		recs = append(recs, dto.ToLegacySupplier(s))
	}
	return r.c.replaceAll(ctx, recs)
}

// ── Recetas ───────────────────────────────────────────────────────────────────

// MenuItemRepo recetas bajo la clave p_recipes.
type MenuItemRepo struct {
	c collection[dto.LegacyMenuItem]
}

// NewMenuItemRepository construye el repositorio sobre el store.
func NewMenuItemRepository(s *Store) *MenuItemRepo {
	return &MenuItemRepo{c: menuItemCollection(s.db, &s.mu)}
}

func (r *MenuItemRepo) Create(ctx context.Context, item *entity.MenuItem) error {
	return r.c.prepend(ctx, dto.ToLegacyMenuItem(item))
}

func (r *MenuItemRepo) GetByID(ctx context.Context, id string) (*entity.MenuItem, error) {
	rec, err := r.c.find(ctx, id)
	if err != nil || rec == nil {
		return nil, err
	}
	return rec.ToEntity(), nil
}

func (r *MenuItemRepo) Update(ctx context.Context, item *entity.MenuItem) error {
	return r.c.replace(ctx, dto.ToLegacyMenuItem(item))
}

func (r *MenuItemRepo) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

func (r *MenuItemRepo) List(ctx context.Context) ([]*entity.MenuItem, error) {
	recs, err := r.c.all(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.MenuItem, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.ToEntity())
	}
	return out, nil
}

func (r *MenuItemRepo) ReplaceAll(ctx context.Context, items []*entity.MenuItem) error {
	recs := make([]dto.LegacyMenuItem, 0, len(items))
	for _, m := range items {
		recs = append(recs, dto.ToLegacyMenuItem(m))
	}
	return r.c.replaceAll(ctx, recs)
}

// ── Mermas ────────────────────────────────────────────────────────────────────

// WastageRepo mermas bajo la clave p_wastage.
type WastageRepo struct {
	c collection[dto.LegacyWastageLog]
}

// NewWastageRepository construye el repositorio sobre el store.
func NewWastageRepository(s *Store) *WastageRepo {
	return &WastageRepo{c: wastageCollection(s.db, &s.mu)}
}

func (r *WastageRepo) Create(ctx context.Context, log *entity.WastageLog) error {
	return r.c.prepend(ctx, dto.ToLegacyWastageLog(log))
}

func (r *WastageRepo) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

func (r *WastageRepo) List(ctx context.Context) ([]*entity.WastageLog, error) {
	recs, err := r.c.all(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.WastageLog, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.ToEntity())
	}
	return out, nil
}
