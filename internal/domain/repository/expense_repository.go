package repository

import (
	"context"
	"time"

	"github.com/jhoicas/billmate-pos/internal/domain/entity"
)

// ExpenseRepository define el puerto de persistencia para Expense.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	List(ctx context.Context) ([]entity.Expense, error)
	// ListByDateRange devuelve gastos con from <= date <= to, más recientes primero.
	ListByDateRange(ctx context.Context, from, to time.Time) ([]entity.Expense, error)
	Delete(ctx context.Context, id string) error
}
