// Package sqlite implementa los repositorios sobre un almacén clave-valor en SQLite
// (driver puro Go modernc.org/sqlite). Cada colección se guarda como un arreglo JSON
// bajo su clave (p_inventory, p_suppliers, p_recipes, p_wastage), igual que el estado
// que el tablero web mantenía en el navegador.
package sqlite

import (
	"context"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/jhoicas/restaurant-ops/internal/domain/repository"
)

var _ repository.StateTxRunner = (*Store)(nil)

const schema = `CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// Store conexión SQLite compartida por los repositorios.
// mu serializa los ciclos leer-modificar-escribir sobre una misma colección.
type Store struct {
	db *sqlx.DB
	mu sync.Mutex
}

// Open abre (o crea) la base en path y aplica el esquema. Usar ":memory:" para pruebas.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sqlx.ConnectContext(ctx, "sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	// Una sola conexión: SQLite serializa escrituras y ":memory:" es por conexión.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("crear esquema kv_store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close cierra la base.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifica la conexión.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Run ejecuta fn dentro de una transacción con repositorios atados a ella.
func (s *Store) Run(ctx context.Context, fn func(repos repository.StateRepos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	repos := repository.StateRepos{
		Ingredients: &IngredientRepo{c: ingredientCollection(tx, nil)},
		Suppliers:   &SupplierRepo{c: supplierCollection(tx, nil)},
		MenuItems:   &MenuItemRepo{c: menuItemCollection(tx, nil)},
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
