package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/billmate-pos/internal/application/dto"
	"github.com/jhoicas/billmate-pos/internal/domain"
	"github.com/jhoicas/billmate-pos/internal/domain/entity"
	"github.com/jhoicas/billmate-pos/internal/domain/repository"
)

const defaultCategory = "General"

// ProductUseCase casos de uso del catálogo: CRUD, búsqueda y ajustes de stock.
type ProductUseCase struct {
	repo         repository.ProductRepository
	settingsRepo repository.SettingsRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, settingsRepo repository.SettingsRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, settingsRepo: settingsRepo}
}

// Create crea un producto. La categoría vacía cae en "General".
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.SellingPrice.IsNegative() || in.CostPrice.IsNegative() || in.StockQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = defaultCategory
	}
	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		Name:           name,
		Category:       category,
		Barcode:        strings.TrimSpace(in.Barcode),
		SellingPrice:   in.SellingPrice,
		CostPrice:      in.CostPrice,
		StockQuantity:  in.StockQuantity,
		FrequentlyUsed: in.FrequentlyUsed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List devuelve todo el catálogo.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Search busca por nombre o código de barras, insensible a acentos y mayúsculas.
func (uc *ProductUseCase) Search(ctx context.Context, query string) ([]dto.ProductResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return uc.List(ctx)
	}
	products, err := uc.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// ListFrequent devuelve los productos marcados de uso frecuente (accesos
// rápidos de la pantalla de cobro).
func (uc *ProductUseCase) ListFrequent(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.repo.ListFrequent(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// ListLowStock devuelve productos con stock en o bajo el umbral configurado.
func (uc *ProductUseCase) ListLowStock(ctx context.Context) ([]dto.ProductResponse, error) {
	threshold := uc.lowStockThreshold(ctx)
	products, err := uc.repo.ListLowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// ListCategories devuelve las categorías distintas del catálogo.
func (uc *ProductUseCase) ListCategories(ctx context.Context) ([]string, error) {
	return uc.repo.ListCategories(ctx)
}

// Update actualiza un producto. El stock no se toca aquí: va por AdjustStock
// o por las ventas.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.Category != nil {
		category := strings.TrimSpace(*in.Category)
		if category == "" {
			category = defaultCategory
		}
		product.Category = category
	}
	if in.Barcode != nil {
		product.Barcode = strings.TrimSpace(*in.Barcode)
	}
	if in.SellingPrice != nil {
		if in.SellingPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.SellingPrice = *in.SellingPrice
	}
	if in.CostPrice != nil {
		if in.CostPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.CostPrice = *in.CostPrice
	}
	if in.FrequentlyUsed != nil {
		product.FrequentlyUsed = *in.FrequentlyUsed
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// AdjustStock aplica un delta al inventario; el resultado se recorta en cero.
func (uc *ProductUseCase) AdjustStock(ctx context.Context, id string, delta int) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	quantity := product.StockQuantity + delta
	if quantity < 0 {
		quantity = 0
	}
	if err := uc.repo.UpdateStock(ctx, id, quantity); err != nil {
		return nil, err
	}
	product.StockQuantity = quantity
	return toProductResponse(product), nil
}

// Delete elimina un producto del catálogo. Las líneas de venta conservan el
// nombre desnormalizado, así que el historial no se rompe.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *ProductUseCase) lowStockThreshold(ctx context.Context) int {
	raw, err := uc.settingsRepo.Get(ctx, entity.SettingLowStockThreshold)
	if err != nil {
		raw = entity.DefaultSettings[entity.SettingLowStockThreshold]
	}
	threshold, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || threshold < 0 {
		threshold, _ = strconv.Atoi(entity.DefaultSettings[entity.SettingLowStockThreshold])
	}
	return threshold
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		Barcode:        p.Barcode,
		SellingPrice:   p.SellingPrice,
		CostPrice:      p.CostPrice,
		StockQuantity:  p.StockQuantity,
		FrequentlyUsed: p.FrequentlyUsed,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toProductResponses(products []entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *toProductResponse(&products[i]))
	}
	return out
}
