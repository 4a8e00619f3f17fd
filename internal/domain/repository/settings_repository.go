package repository

import "context"

// SettingsRepository define el puerto para el almacén clave-valor de configuración.
// Get aplica los valores por defecto de entity.DefaultSettings cuando la clave no existe.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// GetAll devuelve defaults sobreescritos por los valores persistidos.
	GetAll(ctx context.Context) (map[string]string, error)
}
