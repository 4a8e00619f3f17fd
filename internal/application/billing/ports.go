package billing

import (
	"context"

	"github.com/jhoicas/billmate-pos/internal/domain/repository"
)

// TxRunner ejecuta una función con repositorios atados a una misma
// transacción. Cobro y devolución tocan venta, stock y saldo del cliente;
// o se persisten los tres o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}
