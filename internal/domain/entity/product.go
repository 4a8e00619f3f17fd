package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// StockQuantity nunca es negativo: los escritores (venta, ajuste, devolución)
// recortan en cero; el motor de alertas solo lee.
type Product struct {
	ID             string
	Name           string
	Category       string // "General" si no se indica
	Barcode        string
	SellingPrice   decimal.Decimal
	CostPrice      decimal.Decimal
	StockQuantity  int
	FrequentlyUsed bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
