package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurant-ops/internal/application/dto"
	"github.com/jhoicas/restaurant-ops/internal/application/usecase"
	"github.com/jhoicas/restaurant-ops/internal/domain"
	"github.com/jhoicas/restaurant-ops/internal/infrastructure/sqlite"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	ingredients *usecase.IngredientUseCase
	suppliers   *usecase.SupplierUseCase
	recipes     *usecase.RecipeUseCase
	wastage     *usecase.WastageUseCase
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err, "debe abrirse la base en memoria")
	t.Cleanup(func() { _ = store.Close() })

	log := zerolog.Nop()
	ingRepo := sqlite.NewIngredientRepository(store)
	return fixture{
		ingredients: usecase.NewIngredientUseCase(ingRepo, log),
		suppliers:   usecase.NewSupplierUseCase(sqlite.NewSupplierRepository(store), log),
		recipes:     usecase.NewRecipeUseCase(sqlite.NewMenuItemRepository(store), ingRepo, log),
		wastage:     usecase.NewWastageUseCase(sqlite.NewWastageRepository(store), ingRepo, log),
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format(dto.DateLayout)
}

func ghee() dto.IngredientRequest {
	return dto.IngredientRequest{
		Name:          "Desi Ghee",
		Category:      "Dairy",
		CurrentStock:  dec("5"),
		Unit:          "kg",
		MinStockLevel: dec("10"),
		UnitCost:      dec("1800"),
		ExpiryDate:    futureDate(60),
		SupplierID:    "s2",
	}
}

func rice() dto.IngredientRequest {
	return dto.IngredientRequest{
		Name:          "Basmati Rice",
		Category:      "Dry Goods",
		CurrentStock:  dec("45"),
		Unit:          "kg",
		MinStockLevel: dec("20"),
		UnitCost:      dec("450"),
		ExpiryDate:    futureDate(400),
		SupplierID:    "s1",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ingredientes
// ──────────────────────────────────────────────────────────────────────────────

func TestIngredientUseCase_CreateYGet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.ingredients.Create(ctx, ghee())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "debe asignarse un ID")
	assert.Equal(t, "Low Stock", created.Status, "5 ≤ 10 es stock bajo")
	assert.True(t, created.StockValue.Equal(dec("9000")), "valor = 1800 × 5")
	assert.Equal(t, time.Now().Format(dto.DateLayout), created.LastRestocked, "sin fecha de reposición se usa hoy")

	got, err := f.ingredients.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Desi Ghee", got.Name)

	_, err = f.ingredients.GetByID(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIngredientUseCase_Validaciones(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	casos := map[string]func(r *dto.IngredientRequest){
		"nombre vacío":      func(r *dto.IngredientRequest) { r.Name = "  " },
		"categoría vacía":   func(r *dto.IngredientRequest) { r.Category = "" },
		"unidad inválida":   func(r *dto.IngredientRequest) { r.Unit = "oz" },
		"stock negativo":    func(r *dto.IngredientRequest) { r.CurrentStock = dec("-1") },
		"costo negativo":    func(r *dto.IngredientRequest) { r.UnitCost = dec("-0.5") },
		"fecha mal formada": func(r *dto.IngredientRequest) { r.ExpiryDate = "15/05/2024" },
	}
	for nombre, mutar := range casos {
		t.Run(nombre, func(t *testing.T) {
			req := ghee()
			mutar(&req)
			_, err := f.ingredients.Create(ctx, req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestIngredientUseCase_EstadoVencido(t *testing.T) {
	f := newFixture(t)
	req := ghee()
	req.ExpiryDate = "2020-01-01"
	req.CurrentStock = dec("0")

	created, err := f.ingredients.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Expired", created.Status, "vencido tiene prioridad sobre agotado")
}

func TestIngredientUseCase_UpdateYDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.ingredients.Create(ctx, ghee())
	require.NoError(t, err)

	req := ghee()
	req.CurrentStock = dec("25")
	updated, err := f.ingredients.Update(ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "In Stock", updated.Status)

	_, err = f.ingredients.Update(ctx, "no-existe", req)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, f.ingredients.Delete(ctx, created.ID))
	assert.ErrorIs(t, f.ingredients.Delete(ctx, created.ID), domain.ErrNotFound)
}

func TestIngredientUseCase_ListFiltrosYCategorias(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.ingredients.Create(ctx, rice())
	require.NoError(t, err)
	_, err = f.ingredients.Create(ctx, ghee())
	require.NoError(t, err)

	all, err := f.ingredients.List(ctx, dto.IngredientFilter{Category: "All"})
	require.NoError(t, err)
	require.Equal(t, 2, all.Total)
	assert.Equal(t, "Desi Ghee", all.Items[0].Name, "el último creado va primero")

	bySearch, err := f.ingredients.List(ctx, dto.IngredientFilter{Search: "RICE"})
	require.NoError(t, err)
	require.Equal(t, 1, bySearch.Total)
	assert.Equal(t, "Basmati Rice", bySearch.Items[0].Name)

	byCategory, err := f.ingredients.List(ctx, dto.IngredientFilter{Category: "Dairy"})
	require.NoError(t, err)
	require.Equal(t, 1, byCategory.Total)

	none, err := f.ingredients.List(ctx, dto.IngredientFilter{Search: "ghee", Category: "Dry Goods"})
	require.NoError(t, err)
	assert.Equal(t, 0, none.Total)
	assert.NotNil(t, none.Items, "lista vacía, no nil")

	cats, err := f.ingredients.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"All", "Dairy", "Dry Goods"}, cats.Categories)
}

func TestIngredientUseCase_Restock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.ingredients.Create(ctx, ghee())
	require.NoError(t, err)
	require.Equal(t, "Low Stock", created.Status)

	// 5 kg a 1800 + 15 kg a 2000 = 39000 / 20 = 1950
	out, err := f.ingredients.Restock(ctx, created.ID, dto.RestockRequest{
		Quantity: dec("15"),
		UnitCost: dec("2000"),
		Date:     "2024-03-10",
	})
	require.NoError(t, err)
	assert.True(t, dec("20").Equal(out.CurrentStock), "stock esperado 20, obtenido %s", out.CurrentStock)
	assert.True(t, dec("1950").Equal(out.UnitCost), "costo esperado 1950, obtenido %s", out.UnitCost)
	assert.Equal(t, "2024-03-10", out.LastRestocked)
	assert.Equal(t, "In Stock", out.Status)
	assert.Equal(t, created.ExpiryDate, out.ExpiryDate, "sin fecha nueva se conserva el vencimiento")

	stored, err := f.ingredients.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, dec("1950").Equal(stored.UnitCost), "la reposición debe persistirse")
}

func TestIngredientUseCase_RestockValidaciones(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.ingredients.Create(ctx, ghee())
	require.NoError(t, err)

	_, err = f.ingredients.Restock(ctx, created.ID, dto.RestockRequest{Quantity: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = f.ingredients.Restock(ctx, created.ID, dto.RestockRequest{Quantity: dec("1"), UnitCost: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "costo negativo")

	_, err = f.ingredients.Restock(ctx, created.ID, dto.RestockRequest{Quantity: dec("1"), Date: "10/03/2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha inválida")

	_, err = f.ingredients.Restock(ctx, "no-existe", dto.RestockRequest{Quantity: dec("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Proveedores
// ──────────────────────────────────────────────────────────────────────────────

func TestSupplierUseCase_CRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.suppliers.Create(ctx, dto.SupplierRequest{
		Name: "Al-Barakah Foods", ContactPerson: "Zubair Khan", PaymentTerms: "Net 30", Balance: dec("45000"),
	})
	require.NoError(t, err)
	_, err = f.suppliers.Create(ctx, dto.SupplierRequest{Name: "Punjab Dairy Solutions", Balance: dec("-500")})
	require.NoError(t, err, "un saldo negativo es un crédito válido")

	_, err = f.suppliers.Create(ctx, dto.SupplierRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := f.suppliers.List(ctx, "barakah")
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, created.ID, list.Items[0].ID)

	updated, err := f.suppliers.Update(ctx, created.ID, dto.SupplierRequest{Name: "Al-Barakah Foods", Balance: dec("0")})
	require.NoError(t, err)
	assert.True(t, updated.Balance.IsZero())

	require.NoError(t, f.suppliers.Delete(ctx, created.ID))
	_, err = f.suppliers.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recetas
// ──────────────────────────────────────────────────────────────────────────────

func TestRecipeUseCase_CosteoYLineasEnCero(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g, err := f.ingredients.Create(ctx, ghee())
	require.NoError(t, err)
	r, err := f.ingredients.Create(ctx, rice())
	require.NoError(t, err)

	created, err := f.recipes.Create(ctx, dto.RecipeRequest{
		Name:     "Chicken Biryani",
		Category: "Main Course",
		Price:    dec("650"),
		Ingredients: []dto.RecipeLineDTO{
			{IngredientID: r.ID, Quantity: dec("0.2")},
			{IngredientID: g.ID, Quantity: dec("0.05")},
			{IngredientID: "retirado", Quantity: dec("0")},
		},
	})
	require.NoError(t, err)
	assert.Len(t, created.Ingredients, 2, "la línea en cero no se persiste")
	// 0.2×450 + 0.05×1800 = 90 + 90
	assert.True(t, created.ProductionCost.Equal(dec("180")), "costo: %s", created.ProductionCost)
	assert.True(t, created.GrossProfit.Equal(dec("470")))
	assert.True(t, created.GrossMarginPercent.Equal(dec("72.3")), "margen: %s", created.GrossMarginPercent)
}

func TestRecipeUseCase_IngredienteInexistenteCuestaCero(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.recipes.Create(ctx, dto.RecipeRequest{
		Name:        "Fantasma",
		Price:       dec("100"),
		Ingredients: []dto.RecipeLineDTO{{IngredientID: "x", Quantity: dec("3")}},
	})
	require.NoError(t, err)
	assert.True(t, created.ProductionCost.IsZero())
	assert.True(t, created.GrossMarginPercent.Equal(dec("100")))

	list, err := f.recipes.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
}

func TestRecipeUseCase_Validaciones(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.recipes.Create(ctx, dto.RecipeRequest{Name: "X", Price: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")

	_, err = f.recipes.Create(ctx, dto.RecipeRequest{
		Name: "X", Price: dec("1"), Ingredients: []dto.RecipeLineDTO{{IngredientID: "a", Quantity: dec("-2")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa")

	_, err = f.recipes.Update(ctx, "no-existe", dto.RecipeRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mermas
// ──────────────────────────────────────────────────────────────────────────────

func TestWastageUseCase_CreateListDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g, err := f.ingredients.Create(ctx, ghee())
	require.NoError(t, err)

	w, err := f.wastage.Create(ctx, dto.WastageRequest{
		IngredientID: g.ID, Quantity: dec("0.5"), Reason: "Spoiled", Date: "2024-03-10", LoggedBy: "Chef Ali",
	})
	require.NoError(t, err)
	assert.Equal(t, "spoiled", w.Reason)
	assert.Equal(t, "2024-03-10", w.Date)

	list, err := f.wastage.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	require.NoError(t, f.wastage.Delete(ctx, w.ID))
	assert.ErrorIs(t, f.wastage.Delete(ctx, w.ID), domain.ErrNotFound)
}

func TestWastageUseCase_Validaciones(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g, err := f.ingredients.Create(ctx, ghee())
	require.NoError(t, err)

	_, err = f.wastage.Create(ctx, dto.WastageRequest{IngredientID: g.ID, Quantity: dec("0"), Reason: "burnt"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = f.wastage.Create(ctx, dto.WastageRequest{IngredientID: g.ID, Quantity: dec("1"), Reason: "stolen"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "motivo desconocido")

	_, err = f.wastage.Create(ctx, dto.WastageRequest{IngredientID: "x", Quantity: dec("1"), Reason: "burnt"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "ingrediente inexistente")
}
