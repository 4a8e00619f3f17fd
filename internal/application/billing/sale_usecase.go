package billing

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/billmate-pos/internal/application/dto"
	"github.com/jhoicas/billmate-pos/internal/domain"
	"github.com/jhoicas/billmate-pos/internal/domain/entity"
	"github.com/jhoicas/billmate-pos/internal/domain/repository"
)

// Filtros de listado de ventas.
const (
	FilterToday = "today"
	FilterWeek  = "week"
	FilterMonth = "month"
	FilterAll   = "all"
)

// SaleUseCase cubre el ciclo de vida de las ventas: cobro del carrito,
// devolución, consultas e indicadores del día.
type SaleUseCase struct {
	txRunner     TxRunner
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:     txRunner,
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// Checkout cobra el carrito: crea la venta con sus líneas, descuenta stock
// (recortado en cero) y, si el pago es fiado, carga el total al saldo del
// cliente. Todo dentro de una sola transacción.
func (uc *SaleUseCase) Checkout(ctx context.Context, in dto.CheckoutRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	switch in.PaymentMethod {
	case entity.PaymentCash, entity.PaymentUPI, entity.PaymentCredit:
	default:
		return nil, fmt.Errorf("%w: método de pago %q", domain.ErrInvalidInput, in.PaymentMethod)
	}
	for _, line := range in.Items {
		if line.ProductID == "" || line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.PaymentMethod == entity.PaymentCredit && in.CustomerID == "" {
		return nil, fmt.Errorf("%w: venta fiada sin cliente", domain.ErrInvalidInput)
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		Date:          now,
		PaymentMethod: in.PaymentMethod,
		CustomerID:    in.CustomerID,
		CreatedAt:     now,
	}

	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
	) error {
		total := decimal.Zero
		profit := decimal.Zero
		for _, line := range in.Items {
			product, err := productRepo.GetByID(ctx, line.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("%w: producto %s", domain.ErrNotFound, line.ProductID)
			}

			qty := decimal.NewFromInt(int64(line.Quantity))
			subtotal := product.SellingPrice.Mul(qty)
			total = total.Add(subtotal)
			profit = profit.Add(product.SellingPrice.Sub(product.CostPrice).Mul(qty))

			sale.Items = append(sale.Items, entity.SaleItem{
				ID:           uuid.New().String(),
				SaleID:       sale.ID,
				ProductID:    product.ID,
				ProductName:  product.Name, // desnormalizado: el historial sobrevive al borrado
				Quantity:     line.Quantity,
				SellingPrice: product.SellingPrice,
				CostPrice:    product.CostPrice,
				Subtotal:     subtotal,
			})
			sale.ItemCount += line.Quantity

			remaining := product.StockQuantity - line.Quantity
			if remaining < 0 {
				remaining = 0
			}
			if err := productRepo.UpdateStock(ctx, product.ID, remaining); err != nil {
				return err
			}
		}
		sale.Total = total
		sale.Profit = profit

		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}

		if in.PaymentMethod == entity.PaymentCredit {
			customer, err := customerRepo.GetByID(ctx, in.CustomerID)
			if err != nil {
				return err
			}
			if customer == nil {
				return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, in.CustomerID)
			}
			return customerRepo.UpdateBalance(ctx, customer.ID, customer.Balance.Add(total))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale, true), nil
}

// Refund marca la venta como devuelta y restaura el stock de cada línea.
// Una segunda devolución de la misma venta es un conflicto, no un no-op:
// restaurar stock dos veces inflaría el inventario.
func (uc *SaleUseCase) Refund(ctx context.Context, saleID string) (*dto.SaleResponse, error) {
	var refunded *entity.Sale
	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		_ repository.CustomerRepository,
	) error {
		sale, err := saleRepo.GetByID(ctx, saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if sale.Refunded {
			return domain.ErrAlreadyRefunded
		}
		if err := saleRepo.MarkRefunded(ctx, sale.ID); err != nil {
			return err
		}
		for _, item := range sale.Items {
			product, err := productRepo.GetByID(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				// El producto fue borrado después de la venta; no hay stock que devolver.
				continue
			}
			if err := productRepo.UpdateStock(ctx, product.ID, product.StockQuantity+item.Quantity); err != nil {
				return err
			}
		}
		sale.Refunded = true
		refunded = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(refunded, true), nil
}

// GetSale devuelve una venta con sus líneas; nil si no existe.
func (uc *SaleUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return toSaleResponse(sale, true), nil
}

// ListSales lista ventas según el filtro: today, week (últimos 7 días),
// month (mes calendario en curso), all, o un rango explícito [from, to].
// Las ventas devueltas se incluyen, marcadas, para el historial.
func (uc *SaleUseCase) ListSales(ctx context.Context, filter string, from, to time.Time) ([]dto.SaleResponse, error) {
	var (
		sales []entity.Sale
		err   error
	)
	now := time.Now()
	today := startOfDay(now)
	switch filter {
	case FilterToday:
		sales, err = uc.saleRepo.ListByDateRange(ctx, today, today.AddDate(0, 0, 1))
	case FilterWeek:
		sales, err = uc.saleRepo.ListByDateRange(ctx, today.AddDate(0, 0, -6), today.AddDate(0, 0, 1))
	case FilterMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		sales, err = uc.saleRepo.ListByDateRange(ctx, first, today.AddDate(0, 0, 1))
	case FilterAll, "":
		sales, err = uc.saleRepo.List(ctx)
	default:
		if from.IsZero() || to.IsZero() {
			return nil, fmt.Errorf("%w: filtro %q", domain.ErrInvalidInput, filter)
		}
		sales, err = uc.saleRepo.ListByDateRange(ctx, startOfDay(from), startOfDay(to).AddDate(0, 0, 1))
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		out = append(out, *toSaleResponse(&sales[i], false))
	}
	return out, nil
}

// ListByRange lista ventas en un rango de fechas explícito, ambos extremos
// incluidos a nivel de día.
func (uc *SaleUseCase) ListByRange(ctx context.Context, from, to time.Time) ([]dto.SaleResponse, error) {
	return uc.ListSales(ctx, "range", from, to)
}

// TodayStats calcula ingresos, utilidad y número de transacciones de hoy.
// Las devoluciones quedan fuera de los tres agregados.
func (uc *SaleUseCase) TodayStats(ctx context.Context) (*dto.TodayStatsResponse, error) {
	today := startOfDay(time.Now())
	sales, err := uc.saleRepo.ListByDateRange(ctx, today, today.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	stats := &dto.TodayStatsResponse{Revenue: decimal.Zero, Profit: decimal.Zero}
	for _, s := range sales {
		if s.Refunded {
			continue
		}
		stats.Revenue = stats.Revenue.Add(s.Total)
		stats.Profit = stats.Profit.Add(s.Profit)
		stats.Transactions++
	}
	return stats, nil
}

// TopProducts agrega unidades vendidas por producto sobre ventas no
// devueltas, de mayor a menor, hasta limit entradas.
func (uc *SaleUseCase) TopProducts(ctx context.Context, limit int) ([]dto.TopProductResponse, error) {
	if limit <= 0 {
		limit = 5
	}
	sales, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	refunded := make(map[string]bool)
	for _, s := range sales {
		if s.Refunded {
			refunded[s.ID] = true
		}
	}

	items, err := uc.saleRepo.ListAllItems(ctx)
	if err != nil {
		return nil, err
	}
	byProduct := make(map[string]*dto.TopProductResponse)
	order := make([]string, 0)
	for _, item := range items {
		if refunded[item.SaleID] {
			continue
		}
		agg, ok := byProduct[item.ProductID]
		if !ok {
			agg = &dto.TopProductResponse{
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				Revenue:     decimal.Zero,
			}
			byProduct[item.ProductID] = agg
			order = append(order, item.ProductID)
		}
		agg.QuantitySold += item.Quantity
		agg.Revenue = agg.Revenue.Add(item.Subtotal)
	}

	out := make([]dto.TopProductResponse, 0, len(byProduct))
	for _, id := range order {
		out = append(out, *byProduct[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].QuantitySold > out[j].QuantitySold })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func toSaleResponse(sale *entity.Sale, withItems bool) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            sale.ID,
		Date:          sale.Date,
		Total:         sale.Total,
		Profit:        sale.Profit,
		PaymentMethod: sale.PaymentMethod,
		Refunded:      sale.Refunded,
		CustomerID:    sale.CustomerID,
		ItemCount:     sale.ItemCount,
	}
	if withItems {
		resp.Items = make([]dto.SaleItemResponse, 0, len(sale.Items))
		for _, item := range sale.Items {
			resp.Items = append(resp.Items, dto.SaleItemResponse{
				ID:           item.ID,
				ProductID:    item.ProductID,
				ProductName:  item.ProductName,
				Quantity:     item.Quantity,
				SellingPrice: item.SellingPrice,
				Subtotal:     item.Subtotal,
			})
		}
	}
	return resp
}
