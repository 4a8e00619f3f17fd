package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	Category       string          `json:"category"`
	Barcode        string          `json:"barcode"`
	SellingPrice   decimal.Decimal `json:"selling_price"`
	CostPrice      decimal.Decimal `json:"cost_price"`
	StockQuantity  int             `json:"stock_quantity"`
	FrequentlyUsed bool            `json:"frequently_used"`
}

// UpdateProductRequest entrada para actualizar un producto. Campos nil no cambian.
type UpdateProductRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category       *string          `json:"category"`
	Barcode        *string          `json:"barcode"`
	SellingPrice   *decimal.Decimal `json:"selling_price"`
	CostPrice      *decimal.Decimal `json:"cost_price"`
	FrequentlyUsed *bool            `json:"frequently_used"`
}

// AdjustStockRequest delta de inventario; negativo descuenta, el resultado se recorta en cero.
type AdjustStockRequest struct {
	Delta int `json:"delta"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Barcode        string          `json:"barcode"`
	SellingPrice   decimal.Decimal `json:"selling_price"`
	CostPrice      decimal.Decimal `json:"cost_price"`
	StockQuantity  int             `json:"stock_quantity"`
	FrequentlyUsed bool            `json:"frequently_used"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
