package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billmate-pos/internal/application/dto"
	"github.com/jhoicas/billmate-pos/internal/domain"
	"github.com/jhoicas/billmate-pos/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[string]*entity.Product{}}
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) List(_ context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *memProductRepo) Search(_ context.Context, _ string) ([]entity.Product, error) {
	return nil, nil
}

func (r *memProductRepo) ListFrequent(_ context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range r.products {
		if p.FrequentlyUsed {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProductRepo) ListLowStock(_ context.Context, threshold int) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range r.products {
		if p.StockQuantity <= threshold {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProductRepo) ListCategories(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, p := range r.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) UpdateStock(_ context.Context, id string, quantity int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockQuantity = quantity
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

// memSettingsRepo clave-valor en memoria con los mismos defaults del real.
type memSettingsRepo struct {
	values map[string]string
}

func newMemSettingsRepo() *memSettingsRepo { return &memSettingsRepo{values: map[string]string{}} }

func (r *memSettingsRepo) Get(_ context.Context, key string) (string, error) {
	if v, ok := r.values[key]; ok {
		return v, nil
	}
	return entity.DefaultSettings[key], nil
}

func (r *memSettingsRepo) Set(_ context.Context, key, value string) error {
	r.values[key] = value
	return nil
}

func (r *memSettingsRepo) GetAll(_ context.Context) (map[string]string, error) {
	out := make(map[string]string, len(entity.DefaultSettings))
	for k, v := range entity.DefaultSettings {
		out[k] = v
	}
	for k, v := range r.values {
		out[k] = v
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_CategoriaVaciaCaeEnGeneral(t *testing.T) {
	uc := NewProductUseCase(newMemProductRepo(), newMemSettingsRepo())

	resp, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:         "  Arroz Diana ",
		SellingPrice: decimal.NewFromInt(50),
		CostPrice:    decimal.NewFromInt(30),
	})
	require.NoError(t, err)
	assert.Equal(t, "Arroz Diana", resp.Name)
	assert.Equal(t, "General", resp.Category)
	assert.NotEmpty(t, resp.ID)
}

func TestProductCreate_Validaciones(t *testing.T) {
	uc := NewProductUseCase(newMemProductRepo(), newMemSettingsRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío")

	_, err = uc.Create(ctx, dto.CreateProductRequest{
		Name: "X", SellingPrice: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")

	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "X", StockQuantity: -3})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock inicial negativo")
}

func TestProductUpdate_SoloCamposEnviados(t *testing.T) {
	repo := newMemProductRepo()
	uc := NewProductUseCase(repo, newMemSettingsRepo())
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{
		Name: "Aceite", Category: "Despensa",
		SellingPrice: decimal.NewFromInt(120), CostPrice: decimal.NewFromInt(100),
		StockQuantity: 7,
	})
	require.NoError(t, err)

	newPrice := decimal.NewFromInt(130)
	updated, err := uc.Update(ctx, created.ID, dto.UpdateProductRequest{SellingPrice: &newPrice})
	require.NoError(t, err)

	assert.True(t, updated.SellingPrice.Equal(newPrice))
	assert.Equal(t, "Aceite", updated.Name, "los campos no enviados no cambian")
	assert.Equal(t, "Despensa", updated.Category)
	assert.Equal(t, 7, updated.StockQuantity, "Update nunca toca el stock")
}

func TestProductAdjustStock_RecortaEnCero(t *testing.T) {
	repo := newMemProductRepo()
	uc := NewProductUseCase(repo, newMemSettingsRepo())
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Sal", StockQuantity: 3})
	require.NoError(t, err)

	resp, err := uc.AdjustStock(ctx, created.ID, -10)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.StockQuantity, "el ajuste negativo recorta en cero")

	resp, err = uc.AdjustStock(ctx, created.ID, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, resp.StockQuantity)
}

func TestProductListLowStock_UmbralDeConfiguracion(t *testing.T) {
	repo := newMemProductRepo()
	settings := newMemSettingsRepo()
	uc := NewProductUseCase(repo, settings)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{Name: "A", StockQuantity: 2})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "B", StockQuantity: 8})
	require.NoError(t, err)

	low, err := uc.ListLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1, "con el umbral default 5 solo A está bajo")
	assert.Equal(t, "A", low[0].Name)

	require.NoError(t, settings.Set(ctx, entity.SettingLowStockThreshold, "10"))
	low, err = uc.ListLowStock(ctx)
	require.NoError(t, err)
	assert.Len(t, low, 2)
}

func TestProductListLowStock_UmbralInvalidoUsaDefault(t *testing.T) {
	repo := newMemProductRepo()
	settings := newMemSettingsRepo()
	uc := NewProductUseCase(repo, settings)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{Name: "A", StockQuantity: 4})
	require.NoError(t, err)
	require.NoError(t, settings.Set(ctx, entity.SettingLowStockThreshold, "muchos"))

	low, err := uc.ListLowStock(ctx)
	require.NoError(t, err)
	assert.Len(t, low, 1, "umbral ilegible cae en el default 5")
}
