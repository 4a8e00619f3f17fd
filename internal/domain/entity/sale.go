package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en caja.
const (
	PaymentCash   = "Cash"
	PaymentUPI    = "UPI"
	PaymentCredit = "Credit" // fiado: se carga al saldo del cliente (khata)
)

// Sale representa la cabecera de una venta.
// Una venta con Refunded=true queda excluida de todos los agregados de
// ingresos y utilidad; sus líneas se conservan para auditoría.
type Sale struct {
	ID            string
	Date          time.Time
	Total         decimal.Decimal
	Profit        decimal.Decimal // puede ser negativa si se vendió bajo costo
	PaymentMethod string
	Refunded      bool
	CustomerID    string // vacío si fue venta de mostrador sin cliente
	ItemCount     int    // unidades totales vendidas
	Items         []SaleItem
	CreatedAt     time.Time
}

// SaleItem representa una línea de venta.
// ProductName se desnormaliza al momento de la venta para que el historial
// sobreviva a cambios o borrados del producto.
type SaleItem struct {
	ID           string
	SaleID       string
	ProductID    string
	ProductName  string
	Quantity     int
	SellingPrice decimal.Decimal
	CostPrice    decimal.Decimal
	Subtotal     decimal.Decimal
}
