package repository

import "context"

// StateRepos repositorios atados a una misma transacción.
type StateRepos struct {
	Ingredients IngredientRepository
	Suppliers   SupplierRepository
	MenuItems   MenuItemRepository
}

// StateTxRunner ejecuta fn con repositorios transaccionales; Commit si fn no falla, Rollback si falla.
type StateTxRunner interface {
	Run(ctx context.Context, fn func(repos StateRepos) error) error
}
