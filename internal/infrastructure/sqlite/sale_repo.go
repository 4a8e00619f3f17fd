package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/billmate-pos/internal/domain/entity"
	"github.com/jhoicas/billmate-pos/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, date, total, profit, payment_method, refunded, customer_id, item_count, created_at`
const saleItemColumns = `id, sale_id, product_id, product_name, quantity, selling_price, cost_price, subtotal`

// SaleRepo implementación del puerto SaleRepository sobre SQLite.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera y todas sus líneas. Para atomicidad entre
// cabecera, líneas y stock, invocar dentro de TxRunner.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO sales (`+saleColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Date, s.Total, s.Profit, s.PaymentMethod, s.Refunded, s.CustomerID, s.ItemCount, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	for i := range s.Items {
		it := &s.Items[i]
		_, err := r.q.ExecContext(ctx,
			`INSERT INTO sale_items (`+saleItemColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			it.ID, it.SaleID, it.ProductID, it.ProductName, it.Quantity,
			it.SellingPrice, it.CostPrice, it.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByID devuelve la venta con sus líneas; nil si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = ?`, id)
	s, err := scanSale(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	items, err := r.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Items = items
	return s, nil
}

// List devuelve todas las ventas, más recientes primero, sin líneas.
func (r *SaleRepo) List(ctx context.Context) ([]entity.Sale, error) {
	return r.list(ctx, `SELECT `+saleColumns+` FROM sales ORDER BY date DESC`)
}

// ListByDateRange devuelve ventas con from <= date < to, más recientes primero.
func (r *SaleRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]entity.Sale, error) {
	return r.list(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE date >= ? AND date < ? ORDER BY date DESC`,
		from, to,
	)
}

// ListByCustomer devuelve las ventas asociadas a un cliente.
func (r *SaleRepo) ListByCustomer(ctx context.Context, customerID string) ([]entity.Sale, error) {
	return r.list(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE customer_id = ? ORDER BY date DESC`,
		customerID,
	)
}

// MarkRefunded marca la venta como devuelta.
func (r *SaleRepo) MarkRefunded(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx, `UPDATE sales SET refunded = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("mark refunded: %w", err)
	}
	return nil
}

// ListItems devuelve las líneas de una venta.
func (r *SaleRepo) ListItems(ctx context.Context, saleID string) ([]entity.SaleItem, error) {
	return r.listItems(ctx,
		`SELECT `+saleItemColumns+` FROM sale_items WHERE sale_id = ?`, saleID)
}

// ListAllItems devuelve todas las líneas de venta.
func (r *SaleRepo) ListAllItems(ctx context.Context) ([]entity.SaleItem, error) {
	return r.listItems(ctx, `SELECT `+saleItemColumns+` FROM sale_items`)
}

func (r *SaleRepo) list(ctx context.Context, query string, args ...any) ([]entity.Sale, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var out []entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (r *SaleRepo) listItems(ctx context.Context, query string, args ...any) ([]entity.SaleItem, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var out []entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.ProductName,
			&it.Quantity, &it.SellingPrice, &it.CostPrice, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func scanSale(row rowScanner) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(&s.ID, &s.Date, &s.Total, &s.Profit, &s.PaymentMethod,
		&s.Refunded, &s.CustomerID, &s.ItemCount, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
