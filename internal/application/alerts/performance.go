package alerts

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/billmate-pos/internal/domain/entity"
)

// noSalesReminderHour hora local a partir de la cual se recuerda que aún no hay ventas.
const noSalesReminderHour = 10

// performanceDropThreshold caída porcentual (negativa) que dispara la alerta de bajón.
var performanceDropThreshold = decimal.NewFromInt(-20)

// checkDailyPerformance compara los ingresos de hoy contra los de ayer
// (fronteras de día calendario local, ventas devueltas excluidas).
//
// Regla de salida temprana: sin ventas hoy y con la mañana avanzada
// (hora >= 10) se emite solo el recordatorio y no se evalúa la comparación.
func (e *Engine) checkDailyPerformance(ctx context.Context) ([]entity.Alert, error) {
	now := e.now()
	startOfToday := startOfDay(now)
	startOfYesterday := startOfToday.AddDate(0, 0, -1)

	sales, err := e.sales.List(ctx)
	if err != nil {
		return nil, err
	}

	var todayCount int
	todayRevenue, yesterdayRevenue := decimal.Zero, decimal.Zero
	for _, s := range sales {
		if s.Refunded {
			continue
		}
		switch {
		case !s.Date.Before(startOfToday):
			todayCount++
			todayRevenue = todayRevenue.Add(s.Total)
		case !s.Date.Before(startOfYesterday):
			yesterdayRevenue = yesterdayRevenue.Add(s.Total)
		}
	}

	currency, err := e.currencySymbol(ctx)
	if err != nil {
		return nil, err
	}

	if todayCount == 0 && now.Hour() >= noSalesReminderHour {
		return []entity.Alert{{
			ID:       "no-sales-today",
			Type:     entity.AlertTypePerformance,
			Icon:     "📢",
			Title:    "No Sales Yet Today",
			Message:  "Start your first sale to get the day going!",
			Severity: entity.SeverityInfo,
		}}, nil
	}

	if !yesterdayRevenue.IsPositive() || todayCount == 0 {
		return nil, nil
	}

	change := todayRevenue.Sub(yesterdayRevenue).Div(yesterdayRevenue).Mul(decimal.NewFromInt(100))
	switch {
	case change.IsPositive():
		return []entity.Alert{{
			ID:    "performance-up",
			Type:  entity.AlertTypePerformance,
			Icon:  "📈",
			Title: "Sales Are Up!",
			Message: fmt.Sprintf("Today's revenue %s is %s%% higher than yesterday (%s)",
				money(currency, todayRevenue), percent(change), money(currency, yesterdayRevenue)),
			Severity: entity.SeveritySuccess,
		}}, nil
	case change.LessThan(performanceDropThreshold):
		return []entity.Alert{{
			ID:    "performance-down",
			Type:  entity.AlertTypePerformance,
			Icon:  "📉",
			Title: "Sales Dip Today",
			Message: fmt.Sprintf("Revenue is %s%% lower than yesterday. Yesterday: %s, Today: %s",
				percent(change.Abs()), money(currency, yesterdayRevenue), money(currency, todayRevenue)),
			Severity: entity.SeverityInfo,
		}}, nil
	}

	// Caída leve o sin cambio: silencio.
	return nil, nil
}
