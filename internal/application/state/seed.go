package state

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurant-ops/internal/domain/entity"
	"github.com/jhoicas/restaurant-ops/internal/domain/repository"
)

// SeedIfEmpty escribe el dataset de demostración cuando inventario, proveedores y recetas están vacíos.
// Devuelve true si sembró.
func (uc *UseCase) SeedIfEmpty(ctx context.Context) (bool, error) {
	ings, err := uc.ingredients.List(ctx)
	if err != nil {
		return false, err
	}
	sups, err := uc.suppliers.List(ctx)
	if err != nil {
		return false, err
	}
	items, err := uc.menuItems.List(ctx)
	if err != nil {
		return false, err
	}
	if len(ings) > 0 || len(sups) > 0 || len(items) > 0 {
		return false, nil
	}

	demoIngs, demoSups, demoItems := DemoData(time.Now())
	err = uc.tx.Run(ctx, func(repos repository.StateRepos) error {
		if err := repos.Suppliers.ReplaceAll(ctx, demoSups); err != nil {
			return err
		}
		if err := repos.Ingredients.ReplaceAll(ctx, demoIngs); err != nil {
			return err
		}
		return repos.MenuItems.ReplaceAll(ctx, demoItems)
	})
	if err != nil {
		return false, fmt.Errorf("state: sembrar demo: %w", err)
	}
	uc.log.Info().Int("ingredients", len(demoIngs)).Int("suppliers", len(demoSups)).Msg("dataset de demostración sembrado")
	return true, nil
}

// DemoData dataset inicial del tablero: 4 ingredientes, 2 proveedores y 2 recetas.
// Las fechas se calculan respecto de now para que el tablero muestre vencimientos próximos.
func DemoData(now time.Time) ([]*entity.Ingredient, []*entity.Supplier, []*entity.MenuItem) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	d := decimal.RequireFromString

	ings := []*entity.Ingredient{
		{
			ID: "1", Name: "Basmati Rice (Super Kernel)", Category: "Dry Goods",
			CurrentStock: d("45"), Unit: entity.UnitKilogram, MinStockLevel: d("20"), UnitCost: d("450"),
			ExpiryDate: day.AddDate(1, 0, 0), SupplierID: "s1", LastRestocked: day.AddDate(0, 0, -9),
		},
		{
			ID: "2", Name: "Desi Ghee", Category: "Dairy",
			CurrentStock: d("5"), Unit: entity.UnitKilogram, MinStockLevel: d("10"), UnitCost: d("1800"),
			ExpiryDate: day.AddDate(0, 2, 0), SupplierID: "s2", LastRestocked: day.AddDate(0, 0, -4),
		},
		{
			ID: "3", Name: "Chicken (Boneless)", Category: "Meat",
			CurrentStock: d("25"), Unit: entity.UnitKilogram, MinStockLevel: d("15"), UnitCost: d("950"),
			ExpiryDate: day.AddDate(0, 0, 3), SupplierID: "s1", LastRestocked: day.AddDate(0, 0, -1),
		},
		{
			ID: "4", Name: "Tomatoes", Category: "Vegetables",
			CurrentStock: d("12"), Unit: entity.UnitKilogram, MinStockLevel: d("10"), UnitCost: d("180"),
			ExpiryDate: day.AddDate(0, 0, 5), SupplierID: "s1", LastRestocked: day,
		},
	}
	sups := []*entity.Supplier{
		{
			ID: "s1", Name: "Al-Barakah Foods", ContactPerson: "Zubair Khan",
			Phone: "0300-1234567", Location: "Lahore", PaymentTerms: "Net 30", Balance: d("45000"),
		},
		{
			ID: "s2", Name: "Punjab Dairy Solutions", ContactPerson: "Saima Ahmed",
			Phone: "0321-7654321", Location: "Faisalabad", PaymentTerms: "Cash on Delivery", Balance: d("12000"),
		},
	}
	items := []*entity.MenuItem{
		{
			ID: "m1", Name: "Chicken Biryani", Category: "Main Course", Price: d("650"),
			Ingredients: []entity.RecipeLine{
				{IngredientID: "1", Quantity: d("0.2")},
				{IngredientID: "3", Quantity: d("0.25")},
				{IngredientID: "2", Quantity: d("0.05")},
			},
		},
		{
			ID: "m2", Name: "Chicken Karahi", Category: "Main Course", Price: d("1200"),
			Ingredients: []entity.RecipeLine{
				{IngredientID: "3", Quantity: d("0.5")},
				{IngredientID: "4", Quantity: d("0.3")},
				{IngredientID: "2", Quantity: d("0.1")},
			},
		},
	}
	return ings, sups, items
}
