package postgres

import (
	"context"
	"fmt"
)

// schema tablas del servicio. seq define el orden de presentación (mayor seq = más reciente).
var schema = []string{
	`CREATE TABLE IF NOT EXISTS ingredients (
		id              TEXT PRIMARY KEY,
		seq             BIGSERIAL,
		name            TEXT NOT NULL,
		category        TEXT NOT NULL,
		current_stock   NUMERIC(18,4) NOT NULL DEFAULT 0,
		unit            TEXT NOT NULL,
		min_stock_level NUMERIC(18,4) NOT NULL DEFAULT 0,
		unit_cost       NUMERIC(18,4) NOT NULL DEFAULT 0,
		expiry_date     DATE,
		supplier_id     TEXT NOT NULL DEFAULT '',
		last_restocked  DATE,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		id             TEXT PRIMARY KEY,
		seq            BIGSERIAL,
		name           TEXT NOT NULL,
		contact_person TEXT NOT NULL DEFAULT '',
		phone          TEXT NOT NULL DEFAULT '',
		location       TEXT NOT NULL DEFAULT '',
		payment_terms  TEXT NOT NULL DEFAULT '',
		balance        NUMERIC(18,4) NOT NULL DEFAULT 0,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id         TEXT PRIMARY KEY,
		seq        BIGSERIAL,
		name       TEXT NOT NULL,
		category   TEXT NOT NULL DEFAULT '',
		price      NUMERIC(18,4) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	// ingredient_id sin FK: una referencia colgante aporta costo cero.
	`CREATE TABLE IF NOT EXISTS menu_item_lines (
		menu_item_id  TEXT NOT NULL REFERENCES menu_items(id) ON DELETE CASCADE,
		position      INT NOT NULL,
		ingredient_id TEXT NOT NULL,
		quantity      NUMERIC(18,4) NOT NULL CHECK (quantity <> 0),
		PRIMARY KEY (menu_item_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS wastage_logs (
		id            TEXT PRIMARY KEY,
		seq           BIGSERIAL,
		ingredient_id TEXT NOT NULL,
		quantity      NUMERIC(18,4) NOT NULL,
		reason        TEXT NOT NULL,
		date          DATE,
		logged_by     TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Migrate crea las tablas si no existen.
func Migrate(ctx context.Context, q Querier) error {
	for i, stmt := range schema {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migración %d: %w", i+1, err)
		}
	}
	return nil
}
