package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/billmate-pos/internal/domain/repository"
)

var _ repository.DismissedAlertRepository = (*DismissedAlertRepo)(nil)

// DismissedAlertRepo persiste los IDs de alerta descartados por el usuario.
type DismissedAlertRepo struct {
	q Querier
}

// NewDismissedAlertRepository construye el adaptador.
func NewDismissedAlertRepository(q Querier) *DismissedAlertRepo {
	return &DismissedAlertRepo{q: q}
}

// Dismiss registra un ID como descartado (idempotente).
func (r *DismissedAlertRepo) Dismiss(ctx context.Context, alertID string) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO dismissed_alerts (alert_id, dismissed_at) VALUES (?, ?)
		 ON CONFLICT(alert_id) DO NOTHING`,
		alertID, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("dismiss alert: %w", err)
	}
	return nil
}

// ListIDs devuelve todos los IDs descartados.
func (r *DismissedAlertRepo) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT alert_id FROM dismissed_alerts`)
	if err != nil {
		return nil, fmt.Errorf("list dismissed alerts: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan dismissed alert: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// Clear vacía el conjunto de descartados.
func (r *DismissedAlertRepo) Clear(ctx context.Context) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM dismissed_alerts`)
	if err != nil {
		return fmt.Errorf("clear dismissed alerts: %w", err)
	}
	return nil
}
