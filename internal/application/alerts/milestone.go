package alerts

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/billmate-pos/internal/domain/entity"
)

// Escaleras de hitos. Cada escalera emite a lo más una alerta: el primer
// hito cuya ventana "recién cruzado" contiene el total actual.
var (
	txMilestones  = []int{10, 25, 50, 100, 250, 500, 1000}
	revMilestones = []int64{10_000, 50_000, 100_000, 500_000, 1_000_000}

	// Ventana de la escalera de ingresos: [m, m*1.1).
	revMilestoneWindow = decimal.NewFromFloat(1.1)
)

// txMilestoneWindow amplitud de la ventana de transacciones: [m, m+5).
const txMilestoneWindow = 5

// checkMilestones celebra hitos de cantidad de ventas y de ingresos totales
// (ambos sobre ventas no devueltas). Las dos escaleras son independientes y
// pueden disparar en la misma llamada.
func (e *Engine) checkMilestones(ctx context.Context) ([]entity.Alert, error) {
	sales, err := e.sales.List(ctx)
	if err != nil {
		return nil, err
	}

	totalTransactions := 0
	totalRevenue := decimal.Zero
	for _, s := range sales {
		if s.Refunded {
			continue
		}
		totalTransactions++
		totalRevenue = totalRevenue.Add(s.Total)
	}

	currency, err := e.currencySymbol(ctx)
	if err != nil {
		return nil, err
	}

	var alerts []entity.Alert
	for _, m := range txMilestones {
		if totalTransactions >= m && totalTransactions < m+txMilestoneWindow {
			alerts = append(alerts, entity.Alert{
				ID:       fmt.Sprintf("milestone-tx-%d", m),
				Type:     entity.AlertTypeMilestone,
				Icon:     "🎉",
				Title:    fmt.Sprintf("%d Sales Milestone!", m),
				Message:  fmt.Sprintf("Congratulations! You've completed %d+ transactions on BillMate!", m),
				Severity: entity.SeveritySuccess,
			})
			break
		}
	}

	for _, m := range revMilestones {
		threshold := decimal.NewFromInt(m)
		if totalRevenue.GreaterThanOrEqual(threshold) &&
			totalRevenue.LessThan(threshold.Mul(revMilestoneWindow)) {
			label := revenueLabel(m)
			alerts = append(alerts, entity.Alert{
				ID:       fmt.Sprintf("milestone-rev-%d", m),
				Type:     entity.AlertTypeMilestone,
				Icon:     "🏆",
				Title:    fmt.Sprintf("%s%s Revenue Crossed!", currency, label),
				Message:  fmt.Sprintf("Your total revenue has crossed %s%s. Your business is growing!", currency, label),
				Severity: entity.SeveritySuccess,
			})
			break
		}
	}

	return alerts, nil
}

// revenueLabel formatea el hito con numeración local: lakhs a partir de
// 100000 ("1L", "5L", "10L"), miles por debajo ("10K", "50K").
func revenueLabel(m int64) string {
	if m >= 100_000 {
		return fmt.Sprintf("%dL", m/100_000)
	}
	return fmt.Sprintf("%dK", m/1_000)
}
