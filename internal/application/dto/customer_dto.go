package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest entrada para registrar un cliente en la khata.
type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Phone string `json:"phone"`
}

// UpdateBalanceRequest delta sobre el saldo: positivo carga deuda, negativo abona.
type UpdateBalanceRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
