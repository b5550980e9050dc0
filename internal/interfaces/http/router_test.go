package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurant-ops/internal/application/analytics"
	"github.com/jhoicas/restaurant-ops/internal/application/dto"
	"github.com/jhoicas/restaurant-ops/internal/application/export"
	"github.com/jhoicas/restaurant-ops/internal/application/inventory"
	"github.com/jhoicas/restaurant-ops/internal/application/state"
	"github.com/jhoicas/restaurant-ops/internal/application/usecase"
	"github.com/jhoicas/restaurant-ops/internal/infrastructure/sqlite"
	apphttp "github.com/jhoicas/restaurant-ops/internal/interfaces/http"
	"github.com/jhoicas/restaurant-ops/pkg/money"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la aplicación completa sobre un sqlite en memoria.
func buildTestApp(t *testing.T, ping func(context.Context) error) *fiber.App {
	t.Helper()
	store, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err, "debe abrirse la base en memoria")
	t.Cleanup(func() { _ = store.Close() })

	log := zerolog.Nop()
	ings := sqlite.NewIngredientRepository(store)
	sups := sqlite.NewSupplierRepository(store)
	items := sqlite.NewMenuItemRepository(store)
	wastage := sqlite.NewWastageRepository(store)
	dash := analytics.NewDashboardUseCase(ings, sups, items, wastage,
		money.NewFormatter("Rs.", "en-US"), analytics.DefaultOptions(), log)

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	apphttp.Router(app, apphttp.RouterDeps{
		DashboardUC:     dash,
		IngredientUC:    usecase.NewIngredientUseCase(ings, log),
		SupplierUC:      usecase.NewSupplierUseCase(sups, log),
		RecipeUC:        usecase.NewRecipeUseCase(items, ings, log),
		WastageUC:       usecase.NewWastageUseCase(wastage, ings, log),
		ReplenishmentUC: inventory.NewReplenishmentUseCase(ings, sups, items, log),
		ExportUC:        export.NewUseCase(ings, sups, items, wastage, dash, nil, log),
		StateUC:         state.NewUseCase(ings, sups, items, store, log),
		ServiceName:     "restaurant-ops-test",
		Ping:            ping,
	})
	return app
}

// doRequest lanza la petición y devuelve estado y cuerpo.
func doRequest(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, b
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format(dto.DateLayout)
}

func createIngredient(t *testing.T, app *fiber.App, name, category string, stock, cost int) dto.IngredientResponse {
	t.Helper()
	body := `{"name":"` + name + `","category":"` + category + `","current_stock":` + strconv.Itoa(stock) +
		`,"unit":"kg","min_stock_level":10,"unit_cost":` + strconv.Itoa(cost) + `,"expiry_date":"` + futureDate(90) + `"}`
	status, raw := doRequest(t, app, http.MethodPost, "/api/ingredients", body)
	require.Equal(t, http.StatusCreated, status, string(raw))
	var out dto.IngredientResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Health
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth_OK(t *testing.T) {
	app := buildTestApp(t, func(context.Context) error { return nil })

	status, body := doRequest(t, app, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `"status":"ok"`)
}

func TestHealth_Degradado(t *testing.T) {
	app := buildTestApp(t, func(context.Context) error { return errors.New("sin conexión") })

	status, _ := doRequest(t, app, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusServiceUnavailable, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ingredientes
// ──────────────────────────────────────────────────────────────────────────────

func TestIngredients_CRUD(t *testing.T) {
	app := buildTestApp(t, nil)
	created := createIngredient(t, app, "Desi Ghee", "Dairy", 5, 1800)
	assert.Equal(t, "Low Stock", created.Status)

	status, _ := doRequest(t, app, http.MethodGet, "/api/ingredients/"+created.ID, "")
	assert.Equal(t, http.StatusOK, status)

	status, raw := doRequest(t, app, http.MethodPut, "/api/ingredients/"+created.ID,
		`{"name":"Desi Ghee","category":"Dairy","current_stock":30,"unit":"kg","min_stock_level":10,"unit_cost":1800}`)
	require.Equal(t, http.StatusOK, status, string(raw))
	var updated dto.IngredientResponse
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, "In Stock", updated.Status)

	status, _ = doRequest(t, app, http.MethodDelete, "/api/ingredients/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, status)

	status, raw = doRequest(t, app, http.MethodGet, "/api/ingredients/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, string(raw), "NOT_FOUND")
}

func TestIngredients_ValidacionDevuelve400(t *testing.T) {
	app := buildTestApp(t, nil)

	status, raw := doRequest(t, app, http.MethodPost, "/api/ingredients", `{"name":"","category":"Dairy"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(raw), "VALIDATION")

	status, raw = doRequest(t, app, http.MethodPost, "/api/ingredients", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(raw), "INVALID_BODY")
}

func TestIngredients_Restock(t *testing.T) {
	app := buildTestApp(t, nil)
	created := createIngredient(t, app, "Chicken", "Meat", 10, 100)

	status, raw := doRequest(t, app, http.MethodPost, "/api/ingredients/"+created.ID+"/restock",
		`{"quantity":30,"unit_cost":200}`)
	require.Equal(t, http.StatusOK, status, string(raw))
	var out dto.IngredientResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "40", out.CurrentStock.String())
	assert.Equal(t, "175", out.UnitCost.String())

	status, _ = doRequest(t, app, http.MethodPost, "/api/ingredients/no-existe/restock", `{"quantity":1}`)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doRequest(t, app, http.MethodPost, "/api/ingredients/"+created.ID+"/restock", `{"quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestInventory_Replenishment(t *testing.T) {
	app := buildTestApp(t, nil)
	low := createIngredient(t, app, "Desi Ghee", "Dairy", 5, 1800)
	createIngredient(t, app, "Basmati Rice", "Dry Goods", 45, 450)

	status, raw := doRequest(t, app, http.MethodGet, "/api/inventory/replenishment", "")
	require.Equal(t, http.StatusOK, status, string(raw))
	var plan dto.ReplenishmentPlanDTO
	require.NoError(t, json.Unmarshal(raw, &plan))
	require.Len(t, plan.Items, 1, "solo el ingrediente bajo el mínimo")
	assert.Equal(t, low.ID, plan.Items[0].IngredientID)
	assert.Equal(t, "10", plan.Items[0].SuggestedOrderQty.String(), "ideal 15 - stock 5")
	assert.Equal(t, "18000", plan.TotalEstimatedCost.String())
}

func TestIngredients_FiltrosYCategorias(t *testing.T) {
	app := buildTestApp(t, nil)
	createIngredient(t, app, "Basmati Rice", "Dry Goods", 45, 450)
	createIngredient(t, app, "Desi Ghee", "Dairy", 5, 1800)

	status, raw := doRequest(t, app, http.MethodGet, "/api/ingredients?search=rice&category=All", "")
	require.Equal(t, http.StatusOK, status)
	var list dto.ListResponse[dto.IngredientResponse]
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Basmati Rice", list.Items[0].Name)

	status, raw = doRequest(t, app, http.MethodGet, "/api/ingredients/categories", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"categories":["All","Dairy","Dry Goods"]}`, string(raw))
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_Overview(t *testing.T) {
	app := buildTestApp(t, nil)
	createIngredient(t, app, "Basmati Rice", "Dry Goods", 45, 450)
	createIngredient(t, app, "Desi Ghee", "Dairy", 5, 1800)
	status, raw := doRequest(t, app, http.MethodPost, "/api/suppliers", `{"name":"Al-Barakah Foods","balance":45000}`)
	require.Equal(t, http.StatusCreated, status, string(raw))

	status, raw = doRequest(t, app, http.MethodGet, "/api/dashboard/overview", "")
	require.Equal(t, http.StatusOK, status)

	var o dto.DashboardOverviewDTO
	require.NoError(t, json.Unmarshal(raw, &o))
	assert.Equal(t, "29250", o.Stats.TotalInventoryValue.String())
	assert.Equal(t, 1, o.Stats.LowStockItems)
	assert.Equal(t, "Rs. 29,250", o.Labels.TotalInventoryValue)
	assert.Equal(t, "Rs. 45,000", o.Labels.PendingPayables)
	assert.Len(t, o.CategoryDistribution, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recetas y mermas
// ──────────────────────────────────────────────────────────────────────────────

func TestRecipes_Costeo(t *testing.T) {
	app := buildTestApp(t, nil)
	rice := createIngredient(t, app, "Basmati Rice", "Dry Goods", 45, 450)

	status, raw := doRequest(t, app, http.MethodPost, "/api/recipes",
		`{"name":"Plain Rice","category":"Sides","price":200,"ingredients":[{"ingredient_id":"`+rice.ID+`","quantity":0.2}]}`)
	require.Equal(t, http.StatusCreated, status, string(raw))

	var r dto.RecipeResponse
	require.NoError(t, json.Unmarshal(raw, &r))
	assert.Equal(t, "90", r.ProductionCost.String())
	assert.Equal(t, "55", r.GrossMarginPercent.String())

	status, _ = doRequest(t, app, http.MethodGet, "/api/recipes/no-existe", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestWastage_MotivoInvalido(t *testing.T) {
	app := buildTestApp(t, nil)
	rice := createIngredient(t, app, "Basmati Rice", "Dry Goods", 45, 450)

	status, _ := doRequest(t, app, http.MethodPost, "/api/wastage",
		`{"ingredient_id":"`+rice.ID+`","quantity":1,"reason":"stolen"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, raw := doRequest(t, app, http.MethodPost, "/api/wastage",
		`{"ingredient_id":"`+rice.ID+`","quantity":1,"reason":"burnt","logged_by":"Chef"}`)
	assert.Equal(t, http.StatusCreated, status, string(raw))
}

// ──────────────────────────────────────────────────────────────────────────────
// Export y estado
// ──────────────────────────────────────────────────────────────────────────────

func TestExport_CSV(t *testing.T) {
	app := buildTestApp(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/export/inventory.csv", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, body, "inventario vacío = CSV vacío")
}

func TestExport_PDFSinGenerador(t *testing.T) {
	app := buildTestApp(t, nil)

	status, raw := doRequest(t, app, http.MethodGet, "/api/export/inventory.pdf", "")

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, string(raw), "INTERNAL")
}

func TestState_ImportYExport(t *testing.T) {
	app := buildTestApp(t, nil)

	status, raw := doRequest(t, app, http.MethodPost, "/api/state",
		`{"p_inventory":[{"id":"1","name":"Basmati Rice","category":"Dry Goods","currentStock":"45","unit":"kg","minStockLevel":20,"unitCost":450,"expiryDate":"2025-12-01","supplierId":"s1","lastRestocked":"2024-03-01"}],"p_suppliers":[],"p_recipes":[]}`)
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.JSONEq(t, `{"ingredients":1,"suppliers":0,"recipes":0,"skipped":0}`, string(raw))

	status, raw = doRequest(t, app, http.MethodGet, "/api/state", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(raw), `"currentStock":45`)

	status, _ = doRequest(t, app, http.MethodPost, "/api/state", `no es json`)
	assert.Equal(t, http.StatusBadRequest, status)
}
