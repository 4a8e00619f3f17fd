package repository

import (
	"context"

	"github.com/jhoicas/billmate-pos/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]entity.Product, error)
	Search(ctx context.Context, query string) ([]entity.Product, error)
	ListFrequent(ctx context.Context) ([]entity.Product, error)
	ListLowStock(ctx context.Context, threshold int) ([]entity.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateStock fija la cantidad en bodega; el caller ya recortó en cero.
	UpdateStock(ctx context.Context, id string, quantity int) error
	Delete(ctx context.Context, id string) error
}
