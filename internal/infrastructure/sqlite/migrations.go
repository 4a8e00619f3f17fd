package sqlite

import (
	"context"
	"fmt"

	"github.com/jhoicas/billmate-pos/internal/domain/entity"
)

// schemaVersion es la versión de esquema que espera la aplicación.
// Se guarda en PRAGMA user_version.
const schemaVersion = 2

// migration es un paso de esquema aplicado dentro de una transacción.
type migration struct {
	version     int
	description string
	statements  []string
}

var migrations = []migration{
	{
		version:     1,
		description: "Esquema inicial: catálogo, ventas, gastos, clientes, configuración",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS products (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				category TEXT NOT NULL DEFAULT 'General',
				barcode TEXT NOT NULL DEFAULT '',
				selling_price TEXT NOT NULL,
				cost_price TEXT NOT NULL,
				stock_quantity INTEGER NOT NULL DEFAULT 0 CHECK (stock_quantity >= 0),
				frequently_used INTEGER NOT NULL DEFAULT 0,
				created_at DATETIME NOT NULL,
				updated_at DATETIME NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_products_name ON products(name)`,
			`CREATE INDEX IF NOT EXISTS idx_products_barcode ON products(barcode)`,

			`CREATE TABLE IF NOT EXISTS sales (
				id TEXT PRIMARY KEY,
				date DATETIME NOT NULL,
				total TEXT NOT NULL,
				profit TEXT NOT NULL,
				payment_method TEXT NOT NULL,
				refunded INTEGER NOT NULL DEFAULT 0,
				customer_id TEXT NOT NULL DEFAULT '',
				item_count INTEGER NOT NULL DEFAULT 0,
				created_at DATETIME NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_sales_date ON sales(date)`,
			`CREATE INDEX IF NOT EXISTS idx_sales_customer ON sales(customer_id)`,

			`CREATE TABLE IF NOT EXISTS sale_items (
				id TEXT PRIMARY KEY,
				sale_id TEXT NOT NULL,
				product_id TEXT NOT NULL,
				product_name TEXT NOT NULL,
				quantity INTEGER NOT NULL,
				selling_price TEXT NOT NULL,
				cost_price TEXT NOT NULL,
				subtotal TEXT NOT NULL,
				FOREIGN KEY (sale_id) REFERENCES sales(id)
			)`,
			`CREATE INDEX IF NOT EXISTS idx_sale_items_sale ON sale_items(sale_id)`,

			`CREATE TABLE IF NOT EXISTS expenses (
				id TEXT PRIMARY KEY,
				type TEXT NOT NULL,
				amount TEXT NOT NULL,
				date DATETIME NOT NULL,
				note TEXT NOT NULL DEFAULT '',
				created_at DATETIME NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date)`,

			`CREATE TABLE IF NOT EXISTS customers (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				phone TEXT NOT NULL DEFAULT '',
				balance TEXT NOT NULL DEFAULT '0',
				created_at DATETIME NOT NULL,
				updated_at DATETIME NOT NULL
			)`,

			`CREATE TABLE IF NOT EXISTS settings (
				key TEXT PRIMARY KEY,
				value TEXT NOT NULL
			)`,
		},
	},
	{
		version:     2,
		description: "Alertas descartadas (filtro de presentación)",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS dismissed_alerts (
				alert_id TEXT PRIMARY KEY,
				dismissed_at DATETIME NOT NULL
			)`,
		},
	},
}

// migrate lleva el esquema a schemaVersion aplicando las migraciones pendientes.
func (s *Store) migrate(ctx context.Context) error {
	var current int
	if err := s.db.QueryRowContext(ctx, `PRAGMA user_version`).Scan(&current); err != nil {
		return fmt.Errorf("leer user_version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin migración %d: %w", m.version, err)
		}
		for _, stmt := range m.statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("migración %d (%s): %w", m.version, m.description, err)
			}
		}
		// PRAGMA no acepta placeholders
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`PRAGMA user_version = %d`, m.version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("fijar user_version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migración %d: %w", m.version, err)
		}
	}
	return nil
}

// seedDefaultSettings inserta la configuración por defecto sin pisar valores existentes.
func (s *Store) seedDefaultSettings(ctx context.Context) error {
	for key, value := range entity.DefaultSettings {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO NOTHING`,
			key, value,
		)
		if err != nil {
			return fmt.Errorf("sembrar setting %s: %w", key, err)
		}
	}
	return nil
}
