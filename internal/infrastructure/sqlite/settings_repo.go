package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/billmate-pos/internal/domain/entity"
	"github.com/jhoicas/billmate-pos/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del almacén clave-valor sobre SQLite.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador para configuración.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devuelve el valor persistido o el default de entity.DefaultSettings
// si la clave no existe (contrato getSetting del núcleo de alertas).
func (r *SettingsRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.q.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.DefaultSettings[key], nil
		}
		return "", fmt.Errorf("get setting: %w", err)
	}
	return value, nil
}

// Set inserta o actualiza una clave.
func (r *SettingsRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set setting: %w", err)
	}
	return nil
}

// GetAll devuelve los defaults sobreescritos por los valores persistidos.
func (r *SettingsRepo) GetAll(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string, len(entity.DefaultSettings))
	for k, v := range entity.DefaultSettings {
		out[k] = v
	}
	rows, err := r.q.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		out[k] = v
	}
	return out, rows.Err()
}
