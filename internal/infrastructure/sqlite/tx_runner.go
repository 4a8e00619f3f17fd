package sqlite

import (
	"context"
	"fmt"

	"github.com/jhoicas/billmate-pos/internal/application/billing"
	"github.com/jhoicas/billmate-pos/internal/domain/repository"
)

var _ billing.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción SQLite.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Garantiza atomicidad entre venta, stock y khata.
func (r *TxRunner) Run(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	saleRepo := NewSaleRepository(tx)
	productRepo := NewProductRepository(tx)
	customerRepo := NewCustomerRepository(tx)

	if err := fn(saleRepo, productRepo, customerRepo); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
