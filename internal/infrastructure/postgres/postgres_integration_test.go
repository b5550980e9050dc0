package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurant-ops/internal/domain"
	"github.com/jhoicas/restaurant-ops/internal/domain/entity"
	"github.com/jhoicas/restaurant-ops/internal/domain/repository"
	"github.com/jhoicas/restaurant-ops/internal/infrastructure/postgres"
	"github.com/jhoicas/restaurant-ops/pkg/config"
)

// Estas pruebas requieren una base real: TEST_DATABASE_URL=postgres://...
// Sin la variable se omiten.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, postgres.Migrate(ctx, pool))
	for _, table := range []string{"menu_items", "ingredients", "suppliers", "wastage_logs"} {
		_, err := pool.Exec(ctx, "DELETE FROM "+table)
		require.NoError(t, err)
	}
	return pool
}

func TestPostgres_IngredientesYRecetas(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	ingredients := postgres.NewIngredientRepository(pool)
	recipes := postgres.NewMenuItemRepository(pool)

	for _, id := range []string{"1", "2"} {
		require.NoError(t, ingredients.Create(ctx, &entity.Ingredient{
			ID: id, Name: "Item " + id, Category: "Dairy", Unit: entity.UnitKilogram,
			CurrentStock: decimal.NewFromInt(5), UnitCost: decimal.NewFromInt(1800),
			ExpiryDate: time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
		}))
	}
	assert.ErrorIs(t, ingredients.Create(ctx, &entity.Ingredient{ID: "1", Name: "x", Category: "y", Unit: "kg"}), domain.ErrDuplicate)

	list, err := ingredients.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2", list[0].ID)

	require.NoError(t, recipes.Create(ctx, &entity.MenuItem{
		ID: "r1", Name: "Ghee Roti", Price: decimal.NewFromInt(80),
		Ingredients: []entity.RecipeLine{{IngredientID: "2", Quantity: decimal.RequireFromString("0.02")}},
	}))
	got, err := recipes.GetByID(ctx, "r1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Ingredients, 1)
	assert.True(t, got.Ingredients[0].Quantity.Equal(decimal.RequireFromString("0.02")))
}

func TestPostgres_TxRunnerReemplazaTodo(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	runner := postgres.NewTxRunner(pool)

	err := runner.Run(ctx, func(repos repository.StateRepos) error {
		return repos.Suppliers.ReplaceAll(ctx, []*entity.Supplier{
			{ID: "s1", Name: "Al-Barakah Foods", Balance: decimal.NewFromInt(45000)},
			{ID: "s2", Name: "Punjab Dairy Solutions", Balance: decimal.NewFromInt(12000)},
		})
	})
	require.NoError(t, err)

	list, err := postgres.NewSupplierRepository(pool).List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "s1", list[0].ID)
}
