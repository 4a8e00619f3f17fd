package alerts

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/billmate-pos/internal/domain/entity"
)

// expenseAnomalyFactor: el gasto de hoy dispara la alerta al superar
// promedio diario * 1.5.
var expenseAnomalyFactor = decimal.NewFromFloat(1.5)

// rollingWindowDays divisor fijo del promedio móvil. Se divide entre 7 aunque
// haya menos historial, lo que subestima el promedio en tiendas nuevas;
// comportamiento heredado que se conserva a propósito.
var rollingWindowDays = decimal.NewFromInt(7)

// checkExpenseAnomalies compara el gasto de hoy contra el promedio diario de
// la ventana de 7 días inmediatamente anterior a hoy (hoy excluido).
func (e *Engine) checkExpenseAnomalies(ctx context.Context) ([]entity.Alert, error) {
	now := e.now()
	startOfToday := startOfDay(now)
	weekAgo := startOfToday.AddDate(0, 0, -7)

	expenses, err := e.expenses.List(ctx)
	if err != nil {
		return nil, err
	}

	todayTotal, weekTotal := decimal.Zero, decimal.Zero
	for _, ex := range expenses {
		switch {
		case !ex.Date.Before(startOfToday):
			todayTotal = todayTotal.Add(ex.Amount)
		case !ex.Date.Before(weekAgo):
			weekTotal = weekTotal.Add(ex.Amount)
		}
	}
	if todayTotal.IsZero() {
		return nil, nil
	}

	avgDaily := weekTotal.Div(rollingWindowDays)
	if !avgDaily.IsPositive() || !todayTotal.GreaterThan(avgDaily.Mul(expenseAnomalyFactor)) {
		return nil, nil
	}

	currency, err := e.currencySymbol(ctx)
	if err != nil {
		return nil, err
	}

	pctAbove := todayTotal.Sub(avgDaily).Div(avgDaily).Mul(decimal.NewFromInt(100))
	return []entity.Alert{{
		ID:    "expense-high",
		Type:  entity.AlertTypeExpense,
		Icon:  "⚠️",
		Title: "High Expenses Today",
		Message: fmt.Sprintf("%s spent today — %s%% above your daily average of %s",
			money(currency, todayTotal), percent(pctAbove), money(currency, avgDaily)),
		Severity: entity.SeverityWarning,
	}}, nil
}
