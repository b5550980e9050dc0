package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurant-ops/internal/application/analytics"
	"github.com/jhoicas/restaurant-ops/internal/application/export"
	"github.com/jhoicas/restaurant-ops/internal/application/inventory"
	"github.com/jhoicas/restaurant-ops/internal/application/state"
	"github.com/jhoicas/restaurant-ops/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC     *analytics.DashboardUseCase
	IngredientUC    *usecase.IngredientUseCase
	SupplierUC      *usecase.SupplierUseCase
	RecipeUC        *usecase.RecipeUseCase
	WastageUC       *usecase.WastageUseCase
	ReplenishmentUC *inventory.ReplenishmentUseCase
	ExportUC        *export.UseCase
	StateUC         *state.UseCase
	ServiceName     string
	Ping            func(ctx context.Context) error // verificación del almacenamiento para /health; opcional
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", NewHealthHandler(deps.ServiceName, deps.Ping).Check)

	api := app.Group("/api")

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/overview", dashboardHandler.GetOverview)

	// Ingredients
	ingredients := api.Group("/ingredients")
	ingredientHandler := NewIngredientHandler(deps.IngredientUC)
	ingredients.Get("/", ingredientHandler.List)
	ingredients.Post("/", ingredientHandler.Create)
	ingredients.Get("/categories", ingredientHandler.Categories)
	ingredients.Get("/:id", ingredientHandler.GetByID)
	ingredients.Put("/:id", ingredientHandler.Update)
	ingredients.Post("/:id/restock", ingredientHandler.Restock)
	ingredients.Delete("/:id", ingredientHandler.Delete)

	// Inventory (reposición)
	inventoryHandler := NewInventoryHandler(deps.ReplenishmentUC)
	api.Get("/inventory/replenishment", inventoryHandler.GetReplenishmentList)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Recipes
	recipes := api.Group("/recipes")
	recipeHandler := NewRecipeHandler(deps.RecipeUC)
	recipes.Get("/", recipeHandler.List)
	recipes.Post("/", recipeHandler.Create)
	recipes.Get("/:id", recipeHandler.GetByID)
	recipes.Put("/:id", recipeHandler.Update)
	recipes.Delete("/:id", recipeHandler.Delete)

	// Wastage
	wastage := api.Group("/wastage")
	wastageHandler := NewWastageHandler(deps.WastageUC)
	wastage.Get("/", wastageHandler.List)
	wastage.Post("/", wastageHandler.Create)
	wastage.Delete("/:id", wastageHandler.Delete)

	// Export (CSV / PDF)
	exports := api.Group("/export")
	exportHandler := NewExportHandler(deps.ExportUC)
	exports.Get("/inventory.csv", exportHandler.InventoryCSV)
	exports.Get("/suppliers.csv", exportHandler.SuppliersCSV)
	exports.Get("/recipes.csv", exportHandler.RecipesCSV)
	exports.Get("/inventory.pdf", exportHandler.InventoryPDF)

	// State (export / import del estado completo)
	stateHandler := NewStateHandler(deps.StateUC)
	api.Get("/state", stateHandler.Export)
	api.Post("/state", stateHandler.Import)
}
