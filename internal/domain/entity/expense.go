package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense representa un gasto del negocio (renta, servicios, compras, etc.).
type Expense struct {
	ID        string
	Type      string // etiqueta de categoría libre
	Amount    decimal.Decimal
	Date      time.Time
	Note      string
	CreatedAt time.Time
}
