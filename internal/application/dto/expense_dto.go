package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest entrada para registrar un gasto.
// Date en cero usa la hora actual del servidor.
type CreateExpenseRequest struct {
	Type   string          `json:"type" validate:"required,min=1,max=100"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Note   string          `json:"note"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Note      string          `json:"note"`
	CreatedAt time.Time       `json:"created_at"`
}

// ExpenseTodayResponse total gastado en el día.
type ExpenseTodayResponse struct {
	Total decimal.Decimal `json:"total"`
}
