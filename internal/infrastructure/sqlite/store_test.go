package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billmate-pos/internal/domain/entity"
	"github.com/jhoicas/billmate-pos/internal/domain/repository"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newProduct(name string, stock int) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:            "prod-" + name,
		Name:          name,
		Category:      "General",
		SellingPrice:  decimal.NewFromInt(50),
		CostPrice:     decimal.NewFromInt(30),
		StockQuantity: stock,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Esquema y configuración
// ──────────────────────────────────────────────────────────────────────────────

func TestOpen_SiembraLaConfiguracionPorDefecto(t *testing.T) {
	store := openTestStore(t)
	repo := NewSettingsRepository(store.DB())
	ctx := context.Background()

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "My Shop", all[entity.SettingShopName])
	assert.Equal(t, "₹", all[entity.SettingCurrency])
	assert.Equal(t, "5", all[entity.SettingLowStockThreshold])

	// Un valor persistido pisa el default, Get lo refleja.
	require.NoError(t, repo.Set(ctx, entity.SettingCurrency, "$"))
	got, err := repo.Get(ctx, entity.SettingCurrency)
	require.NoError(t, err)
	assert.Equal(t, "$", got)

	// Clave inexistente cae en el default del dominio.
	got, err = repo.Get(ctx, "clave_sin_fila")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepo_CRUDYBusqueda(t *testing.T) {
	store := openTestStore(t)
	repo := NewProductRepository(store.DB())
	ctx := context.Background()

	azucar := newProduct("Azúcar Manuelita", 3)
	azucar.Barcode = "7701234567890"
	require.NoError(t, repo.Create(ctx, azucar))
	require.NoError(t, repo.Create(ctx, newProduct("Arroz Diana", 20)))

	got, err := repo.GetByID(ctx, azucar.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Azúcar Manuelita", got.Name)
	assert.True(t, got.SellingPrice.Equal(decimal.NewFromInt(50)), "el precio sobrevive el viaje por TEXT")

	// Búsqueda insensible a acentos y por código de barras.
	found, err := repo.Search(ctx, "azucar")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, azucar.ID, found[0].ID)

	found, err = repo.Search(ctx, "7701234")
	require.NoError(t, err)
	require.Len(t, found, 1)

	// Stock bajo con umbral 5: solo Azúcar (3).
	low, err := repo.ListLowStock(ctx, 5)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, azucar.ID, low[0].ID)

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"General"}, categories)

	require.NoError(t, repo.UpdateStock(ctx, azucar.ID, 0))
	got, err = repo.GetByID(ctx, azucar.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.StockQuantity)

	require.NoError(t, repo.Delete(ctx, azucar.ID))
	got, err = repo.GetByID(ctx, azucar.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "GetByID de un borrado regresa nil, no error")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestSaleRepo_CabeceraYLineas(t *testing.T) {
	store := openTestStore(t)
	repo := NewSaleRepository(store.DB())
	ctx := context.Background()
	now := time.Now()

	sale := &entity.Sale{
		ID:            "s1",
		Date:          now,
		Total:         decimal.NewFromInt(100),
		Profit:        decimal.NewFromInt(40),
		PaymentMethod: entity.PaymentCash,
		CustomerID:    "c1",
		ItemCount:     2,
		CreatedAt:     now,
		Items: []entity.SaleItem{
			{
				ID: "i1", SaleID: "s1", ProductID: "p1", ProductName: "Arroz",
				Quantity: 2, SellingPrice: decimal.NewFromInt(50),
				CostPrice: decimal.NewFromInt(30), Subtotal: decimal.NewFromInt(100),
			},
		},
	}
	require.NoError(t, repo.Create(ctx, sale))

	got, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Arroz", got.Items[0].ProductName)
	assert.False(t, got.Refunded)

	require.NoError(t, repo.MarkRefunded(ctx, "s1"))
	got, err = repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, got.Refunded)

	byCustomer, err := repo.ListByCustomer(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, byCustomer, 1)
}

func TestSaleRepo_RangoSemiAbierto(t *testing.T) {
	store := openTestStore(t)
	repo := NewSaleRepository(store.DB())
	ctx := context.Background()

	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local)
	seed := func(id string, date time.Time) {
		require.NoError(t, repo.Create(ctx, &entity.Sale{
			ID: id, Date: date,
			Total: decimal.NewFromInt(10), Profit: decimal.Zero,
			PaymentMethod: entity.PaymentCash, CreatedAt: date,
		}))
	}
	seed("limite-inferior", day)
	seed("dentro", day.Add(12*time.Hour))
	seed("limite-superior", day.AddDate(0, 0, 1)) // medianoche siguiente: fuera

	got, err := repo.ListByDateRange(ctx, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, got, 2, "from incluido, to excluido")
	assert.Equal(t, "dentro", got[0].ID, "más reciente primero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Transacciones
// ──────────────────────────────────────────────────────────────────────────────

func TestTxRunner_RollbackDeshaceTodo(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	productRepo := NewProductRepository(store.DB())
	require.NoError(t, productRepo.Create(ctx, newProduct("Aceite", 10)))

	boom := errors.New("algo falló a mitad del cobro")
	err := NewTxRunner(store).Run(ctx, func(
		saleRepo repository.SaleRepository,
		txProductRepo repository.ProductRepository,
		_ repository.CustomerRepository,
	) error {
		now := time.Now()
		if err := saleRepo.Create(ctx, &entity.Sale{
			ID: "s-fallida", Date: now,
			Total: decimal.NewFromInt(50), Profit: decimal.Zero,
			PaymentMethod: entity.PaymentCash, CreatedAt: now,
		}); err != nil {
			return err
		}
		if err := txProductRepo.UpdateStock(ctx, "prod-Aceite", 9); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// Ni la venta ni el descuento de stock quedaron.
	sale, err := NewSaleRepository(store.DB()).GetByID(ctx, "s-fallida")
	require.NoError(t, err)
	assert.Nil(t, sale)

	p, err := productRepo.GetByID(ctx, "prod-Aceite")
	require.NoError(t, err)
	assert.Equal(t, 10, p.StockQuantity)
}

func TestTxRunner_CommitPersiste(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	err := NewTxRunner(store).Run(ctx, func(
		saleRepo repository.SaleRepository,
		_ repository.ProductRepository,
		_ repository.CustomerRepository,
	) error {
		now := time.Now()
		return saleRepo.Create(ctx, &entity.Sale{
			ID: "s-ok", Date: now,
			Total: decimal.NewFromInt(80), Profit: decimal.NewFromInt(20),
			PaymentMethod: entity.PaymentUPI, CreatedAt: now,
		})
	})
	require.NoError(t, err)

	sale, err := NewSaleRepository(store.DB()).GetByID(ctx, "s-ok")
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(80)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes y descartes
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerRepo_SaldoYBusqueda(t *testing.T) {
	store := openTestStore(t)
	repo := NewCustomerRepository(store.DB())
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Create(ctx, &entity.Customer{
		ID: "c1", Name: "José Pérez", Phone: "3001234567",
		Balance: decimal.Zero, CreatedAt: now, UpdatedAt: now,
	}))

	found, err := repo.Search(ctx, "jose")
	require.NoError(t, err)
	require.Len(t, found, 1, "la búsqueda ignora acentos")

	found, err = repo.Search(ctx, "300123")
	require.NoError(t, err)
	require.Len(t, found, 1, "también busca por teléfono")

	require.NoError(t, repo.UpdateBalance(ctx, "c1", decimal.NewFromInt(-25)))
	c, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, c.Balance.Equal(decimal.NewFromInt(-25)), "el saldo admite negativos")
}

func TestDismissedAlertRepo_Idempotente(t *testing.T) {
	store := openTestStore(t)
	repo := NewDismissedAlertRepository(store.DB())
	ctx := context.Background()

	require.NoError(t, repo.Dismiss(ctx, "out-of-stock"))
	require.NoError(t, repo.Dismiss(ctx, "out-of-stock"), "descartar dos veces no falla")
	require.NoError(t, repo.Dismiss(ctx, "milestone-tx-100"))

	ids, err := repo.ListIDs(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	require.NoError(t, repo.Clear(ctx))
	ids, err = repo.ListIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

// ──────────────────────────────────────────────────────────────────────────────
// Gastos
// ──────────────────────────────────────────────────────────────────────────────

func TestExpenseRepo_RangoInclusivo(t *testing.T) {
	store := openTestStore(t)
	repo := NewExpenseRepository(store.DB())
	ctx := context.Background()

	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &entity.Expense{
			ID: "e" + string(rune('a'+i)), Type: "Compra",
			Amount: decimal.NewFromInt(100), Date: day.AddDate(0, 0, -i),
			CreatedAt: day,
		}))
	}

	got, err := repo.ListByDateRange(ctx, day.AddDate(0, 0, -1), day)
	require.NoError(t, err)
	assert.Len(t, got, 2, "ambos extremos incluidos")

	require.NoError(t, repo.Delete(ctx, "ea"))
	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
