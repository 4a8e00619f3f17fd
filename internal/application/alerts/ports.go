package alerts

import (
	"context"

	"github.com/jhoicas/billmate-pos/internal/domain/entity"
)

// Puertos de solo lectura del motor de alertas. Cada evaluador consume una o
// dos colecciones; los puertos se mantienen angostos para poder falsear una
// sola fuente en tests (aislamiento de fallas por evaluador).

// ProductSource lista el catálogo completo.
type ProductSource interface {
	List(ctx context.Context) ([]entity.Product, error)
}

// SaleSource lista todas las ventas, incluidas las devueltas.
type SaleSource interface {
	List(ctx context.Context) ([]entity.Sale, error)
}

// ExpenseSource lista todos los gastos.
type ExpenseSource interface {
	List(ctx context.Context) ([]entity.Expense, error)
}

// CustomerSource lista todos los clientes.
type CustomerSource interface {
	List(ctx context.Context) ([]entity.Customer, error)
}

// SettingSource resuelve una clave de configuración con su default.
type SettingSource interface {
	Get(ctx context.Context, key string) (string, error)
}
