package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/billmate-pos/internal/domain/entity"
	"github.com/jhoicas/billmate-pos/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, category, barcode, selling_price, cost_price, stock_quantity, frequently_used, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre SQLite.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar *sql.DB o *sql.Tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.ExecContext(ctx, query,
		p.ID, p.Name, p.Category, p.Barcode, p.SellingPrice, p.CostPrice,
		p.StockQuantity, p.FrequentlyUsed, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List devuelve todos los productos ordenados por nombre.
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products ORDER BY name`)
}

// Search busca por nombre (insensible a acentos y mayúsculas) o por código de barras.
// El catálogo es pequeño: escaneo completo y filtro en memoria.
func (r *ProductRepo) Search(ctx context.Context, query string) ([]entity.Product, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []entity.Product
	for _, p := range all {
		if foldContains(p.Name, query) || (p.Barcode != "" && strings.Contains(p.Barcode, query)) {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListFrequent devuelve los productos marcados como de uso frecuente.
func (r *ProductRepo) ListFrequent(ctx context.Context) ([]entity.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products WHERE frequently_used = 1 ORDER BY name`)
}

// ListLowStock devuelve productos con existencia igual o menor al umbral.
func (r *ProductRepo) ListLowStock(ctx context.Context, threshold int) ([]entity.Product, error) {
	return r.list(ctx,
		`SELECT `+productColumns+` FROM products WHERE stock_quantity <= ? ORDER BY stock_quantity, name`,
		threshold,
	)
}

// ListCategories devuelve las categorías distintas en uso.
func (r *ProductRepo) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT DISTINCT category FROM products WHERE category <> '' ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Update actualiza un producto existente (incluido el stock, para ajustes manuales).
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products
		SET name = ?, category = ?, barcode = ?, selling_price = ?, cost_price = ?,
		    stock_quantity = ?, frequently_used = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.q.ExecContext(ctx, query,
		p.Name, p.Category, p.Barcode, p.SellingPrice, p.CostPrice,
		p.StockQuantity, p.FrequentlyUsed, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock fija la existencia del producto. El caller garantiza quantity >= 0.
func (r *ProductRepo) UpdateStock(ctx context.Context, id string, quantity int) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE products SET stock_quantity = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		quantity, id,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) list(ctx context.Context, query string, args ...any) ([]entity.Product, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var out []entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// rowScanner cubre *sql.Row y *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Category, &p.Barcode, &p.SellingPrice, &p.CostPrice,
		&p.StockQuantity, &p.FrequentlyUsed, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
