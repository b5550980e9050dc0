package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurant-ops/internal/domain"
	"github.com/jhoicas/restaurant-ops/internal/domain/entity"
	"github.com/jhoicas/restaurant-ops/internal/domain/repository"
	"github.com/jhoicas/restaurant-ops/internal/infrastructure/sqlite"
)

func openStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err, "debe abrirse la base en memoria")
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newIngredient(id string) *entity.Ingredient {
	return &entity.Ingredient{
		ID:            id,
		Name:          "Basmati Rice",
		Category:      "Dry Goods",
		CurrentStock:  decimal.NewFromInt(45),
		Unit:          entity.UnitKilogram,
		MinStockLevel: decimal.NewFromInt(20),
		UnitCost:      decimal.NewFromInt(450),
		ExpiryDate:    time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		SupplierID:    "s1",
		LastRestocked: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestIngredientRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewIngredientRepository(openStore(t))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "sin clave la colección está vacía")

	require.NoError(t, repo.Create(ctx, newIngredient("1")))
	require.NoError(t, repo.Create(ctx, newIngredient("2")))
	assert.ErrorIs(t, repo.Create(ctx, newIngredient("1")), domain.ErrDuplicate)

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2", list[0].ID, "el más reciente va primero")

	got, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.UnitCost.Equal(decimal.NewFromInt(450)))
	assert.Equal(t, "2025-12-01", got.ExpiryDate.Format("2006-01-02"))

	got.CurrentStock = decimal.NewFromInt(3)
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.True(t, got.CurrentStock.Equal(decimal.NewFromInt(3)))

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.ErrorIs(t, repo.Update(ctx, newIngredient("nope")), domain.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "1"))
	assert.ErrorIs(t, repo.Delete(ctx, "1"), domain.ErrNotFound)
}

func TestMenuItemRepo_DescartaLineasEnCero(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewMenuItemRepository(openStore(t))

	require.NoError(t, repo.Create(ctx, &entity.MenuItem{
		ID:    "r1",
		Name:  "Chicken Biryani",
		Price: decimal.NewFromInt(1200),
		Ingredients: []entity.RecipeLine{
			{IngredientID: "1", Quantity: decimal.RequireFromString("0.5")},
			{IngredientID: "2", Quantity: decimal.Zero},
		},
	}))

	got, err := repo.GetByID(ctx, "r1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Ingredients, 1)
	assert.Equal(t, "1", got.Ingredients[0].IngredientID)
}

func TestStore_RunRollbackAnteError(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	suppliers := sqlite.NewSupplierRepository(store)
	require.NoError(t, suppliers.Create(ctx, &entity.Supplier{ID: "s1", Name: "Al-Barakah Foods", Balance: decimal.NewFromInt(45000)}))

	boom := errors.New("boom")
	err := store.Run(ctx, func(repos repository.StateRepos) error {
		if err := repos.Suppliers.ReplaceAll(ctx, nil); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	list, err := suppliers.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1, "la transacción fallida no debe reemplazar la colección")

	err = store.Run(ctx, func(repos repository.StateRepos) error {
		return repos.Suppliers.ReplaceAll(ctx, []*entity.Supplier{{ID: "s2"}, {ID: "s3"}})
	})
	require.NoError(t, err)
	list, err = suppliers.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "s2", list[0].ID, "ReplaceAll conserva el orden recibido")
}

func TestWastageRepo(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewWastageRepository(openStore(t))

	require.NoError(t, repo.Create(ctx, &entity.WastageLog{
		ID: "w1", IngredientID: "2", Quantity: decimal.NewFromInt(1), Reason: entity.WastageSpoiled,
		Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), LoggedBy: "chef",
	}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.WastageSpoiled, list[0].Reason)
	require.NoError(t, repo.Delete(ctx, "w1"))
}
