package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/billmate-pos/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer (khata).
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context) ([]entity.Customer, error)
	Search(ctx context.Context, query string) ([]entity.Customer, error)
	// UpdateBalance fija el saldo resultante; el delta lo calcula el caso de uso.
	UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) error
	Delete(ctx context.Context, id string) error
}
