package usecase

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

// ExpenseUseCase registra y consulta los gastos del negocio.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// Create registra un gasto. La fecha en cero usa la hora actual.
func (uc *ExpenseUseCase) Create(ctx context.Context, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	kind := strings.TrimSpace(in.Type)
	if kind == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	expense := &entity.Expense{
		ID:        uuid.New().String(),
		Type:      kind,
		Amount:    in.Amount,
		Date:      date,
		Note:      strings.TrimSpace(in.Note),
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// List devuelve todos los gastos, más recientes primero.
func (uc *ExpenseUseCase) List(ctx context.Context) ([]dto.ExpenseResponse, error) {
	expenses, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toExpenseResponses(expenses), nil
}

// ListByRange devuelve gastos entre dos fechas, ambos días incluidos.
func (uc *ExpenseUseCase) ListByRange(ctx context.Context, from, to time.Time) ([]dto.ExpenseResponse, error) {
	from = startOfDay(from)
	to = startOfDay(to).AddDate(0, 0, 1).Add(-time.Nanosecond)
	expenses, err := uc.repo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return toExpenseResponses(expenses), nil
}

// ListToday devuelve los gastos del día.
func (uc *ExpenseUseCase) ListToday(ctx context.Context) ([]dto.ExpenseResponse, error) {
	now := time.Now()
	return uc.ListByRange(ctx, now, now)
}

// TodayTotal suma los gastos del día.
func (uc *ExpenseUseCase) TodayTotal(ctx context.Context) (*dto.ExpenseTodayResponse, error) {
	expenses, err := uc.ListToday(ctx)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return &dto.ExpenseTodayResponse{Total: total}, nil
}

// Delete elimina un gasto.
func (uc *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:        e.ID,
		Type:      e.Type,
		Amount:    e.Amount,
		Date:      e.Date,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}
}

func toExpenseResponses(expenses []entity.Expense) []dto.ExpenseResponse {
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, *toExpenseResponse(&expenses[i]))
	}
	return out
}
