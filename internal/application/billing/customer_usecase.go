package billing

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/billmate-pos/internal/application/dto"
	"github.com/jhoicas/billmate-pos/internal/domain"
	"github.com/jhoicas/billmate-pos/internal/domain/entity"
	"github.com/jhoicas/billmate-pos/internal/domain/repository"
)

// CustomerUseCase administra la khata: clientes, saldos de fiado y su
// historial de compras.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customerRepo repository.CustomerRepository, saleRepo repository.SaleRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo, saleRepo: saleRepo}
}

// Create registra un cliente con saldo en cero.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     strings.TrimSpace(in.Phone),
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Get devuelve un cliente por ID; nil si no existe.
func (uc *CustomerUseCase) Get(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return toCustomerResponse(customer), nil
}

// List devuelve todos los clientes.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := uc.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toCustomerResponses(customers), nil
}

// Search busca por nombre o teléfono, insensible a acentos.
func (uc *CustomerUseCase) Search(ctx context.Context, query string) ([]dto.CustomerResponse, error) {
	customers, err := uc.customerRepo.Search(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, err
	}
	return toCustomerResponses(customers), nil
}

// UpdateBalance aplica un delta al saldo: positivo carga deuda, negativo
// abona. El saldo puede quedar negativo (abonos por adelantado).
func (uc *CustomerUseCase) UpdateBalance(ctx context.Context, id string, amount decimal.Decimal) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	customer.Balance = customer.Balance.Add(amount)
	if err := uc.customerRepo.UpdateBalance(ctx, id, customer.Balance); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// History devuelve las ventas asociadas al cliente, más recientes primero.
func (uc *CustomerUseCase) History(ctx context.Context, id string) ([]dto.SaleResponse, error) {
	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	sales, err := uc.saleRepo.ListByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		out = append(out, *toSaleResponse(&sales[i], false))
	}
	return out, nil
}

// Delete elimina un cliente. Sus ventas conservan el customer_id para auditoría.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	return uc.customerRepo.Delete(ctx, id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Balance:   c.Balance,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCustomerResponses(customers []entity.Customer) []dto.CustomerResponse {
	out := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, *toCustomerResponse(&customers[i]))
	}
	return out
}
