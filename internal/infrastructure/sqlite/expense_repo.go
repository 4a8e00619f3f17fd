package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/billmate-pos/internal/domain/entity"
	"github.com/jhoicas/billmate-pos/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

const expenseColumns = `id, type, amount, date, note, created_at`

// ExpenseRepo implementación del puerto ExpenseRepository sobre SQLite.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador de persistencia para gastos.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste un gasto.
func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO expenses (`+expenseColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Type, e.Amount, e.Date, e.Note, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// List devuelve todos los gastos, más recientes primero.
func (r *ExpenseRepo) List(ctx context.Context) ([]entity.Expense, error) {
	return r.list(ctx, `SELECT `+expenseColumns+` FROM expenses ORDER BY date DESC`)
}

// ListByDateRange devuelve gastos con from <= date <= to, más recientes primero.
func (r *ExpenseRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]entity.Expense, error) {
	return r.list(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE date >= ? AND date <= ? ORDER BY date DESC`,
		from, to,
	)
}

// Delete elimina un gasto por ID.
func (r *ExpenseRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepo) list(ctx context.Context, query string, args ...any) ([]entity.Expense, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var out []entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.Type, &e.Amount, &e.Date, &e.Note, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
