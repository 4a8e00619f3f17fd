package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/billmate-pos/internal/domain/entity"
	"github.com/jhoicas/billmate-pos/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, phone, balance, created_at, updated_at`

// CustomerRepo implementación del puerto CustomerRepository sobre SQLite.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador de persistencia para clientes.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente (saldo inicia en cero).
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO customers (`+customerColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Phone, c.Balance, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID; nil si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = ?`, id)
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// List devuelve todos los clientes ordenados por nombre.
func (r *CustomerRepo) List(ctx context.Context) ([]entity.Customer, error) {
	return r.list(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY name`)
}

// Search busca por nombre (insensible a acentos) o por teléfono.
func (r *CustomerRepo) Search(ctx context.Context, query string) ([]entity.Customer, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []entity.Customer
	for _, c := range all {
		if foldContains(c.Name, query) || strings.Contains(c.Phone, query) {
			out = append(out, c)
		}
	}
	return out, nil
}

// UpdateBalance fija el saldo del cliente.
func (r *CustomerRepo) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE customers SET balance = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		balance, id,
	)
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) list(ctx context.Context, query string, args ...any) ([]entity.Customer, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var out []entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func scanCustomer(row rowScanner) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Balance, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
