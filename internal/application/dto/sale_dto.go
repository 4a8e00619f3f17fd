package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLineRequest una línea del carrito al momento de cobrar.
type CartLineRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CheckoutRequest entrada de POST /api/sales/checkout.
// CustomerID es obligatorio solo cuando el método de pago es Credit.
type CheckoutRequest struct {
	Items         []CartLineRequest `json:"items" validate:"required,min=1"`
	PaymentMethod string            `json:"payment_method" validate:"required"`
	CustomerID    string            `json:"customer_id"`
}

// SaleItemResponse una línea de venta ya persistida.
type SaleItemResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Quantity     int             `json:"quantity"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// SaleResponse salida de una venta. Items se incluye solo en detalle y checkout.
type SaleResponse struct {
	ID            string             `json:"id"`
	Date          time.Time          `json:"date"`
	Total         decimal.Decimal    `json:"total"`
	Profit        decimal.Decimal    `json:"profit"`
	PaymentMethod string             `json:"payment_method"`
	Refunded      bool               `json:"refunded"`
	CustomerID    string             `json:"customer_id,omitempty"`
	ItemCount     int                `json:"item_count"`
	Items         []SaleItemResponse `json:"items,omitempty"`
}

// TodayStatsResponse KPIs del día para la barra superior de caja.
type TodayStatsResponse struct {
	Revenue      decimal.Decimal `json:"revenue"`
	Profit       decimal.Decimal `json:"profit"`
	Transactions int             `json:"transactions"`
}

// TopProductResponse producto agregado por unidades vendidas.
type TopProductResponse struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	QuantitySold int             `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}
