// Package sqlite implementa los puertos de persistencia sobre una base de
// datos SQLite embebida (un solo archivo local, un solo proceso).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // driver SQLite
)

// Querier abstrae *sql.DB y *sql.Tx para que los repositorios funcionen
// igual dentro o fuera de una transacción.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store envuelve la conexión SQLite y fabrica repositorios y transacciones.
type Store struct {
	db   *sql.DB
	path string
}

// Open abre (o crea) la base de datos en path, aplica el esquema y siembra
// la configuración por defecto. Usar ":memory:" en tests.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return nil, fmt.Errorf("crear directorio de datos: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000&_loc=auto")
	if err != nil {
		return nil, fmt.Errorf("abrir base de datos: %w", err)
	}

	// SQLite no se beneficia de múltiples conexiones en un proceso único.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping base de datos: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.seedDefaultSettings(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close cierra la conexión.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB expone la conexión para los constructores de repositorios.
func (s *Store) DB() *sql.DB {
	return s.db
}
