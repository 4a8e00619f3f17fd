package repository

import "context"

// DismissedAlertRepository persiste el conjunto de IDs de alerta descartados
// por el usuario. Es el colaborador de presentación del motor de alertas:
// el motor nunca lo consulta; el filtrado ocurre en la frontera HTTP.
type DismissedAlertRepository interface {
	Dismiss(ctx context.Context, alertID string) error
	ListIDs(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}
