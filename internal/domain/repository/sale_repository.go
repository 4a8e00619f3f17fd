package repository

import (
	"context"
	"time"

	"github.com/jhoicas/billmate-pos/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
type SaleRepository interface {
	// Create persiste la cabecera y todas sus líneas.
	Create(ctx context.Context, sale *entity.Sale) error
	// GetByID devuelve la venta con sus líneas cargadas; nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// List devuelve todas las ventas (incluidas devueltas), más recientes primero, sin líneas.
	List(ctx context.Context) ([]entity.Sale, error)
	// ListByDateRange devuelve ventas con from <= date < to, más recientes primero.
	ListByDateRange(ctx context.Context, from, to time.Time) ([]entity.Sale, error)
	// ListByCustomer devuelve las ventas asociadas a un cliente (historial de khata).
	ListByCustomer(ctx context.Context, customerID string) ([]entity.Sale, error)
	// MarkRefunded marca la venta como devuelta.
	MarkRefunded(ctx context.Context, id string) error
	// ListItems devuelve las líneas de una venta.
	ListItems(ctx context.Context, saleID string) ([]entity.SaleItem, error)
	// ListAllItems devuelve todas las líneas de venta (para agregados de top productos).
	ListAllItems(ctx context.Context) ([]entity.SaleItem, error)
}
