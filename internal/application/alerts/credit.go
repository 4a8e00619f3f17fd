package alerts

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/billmate-pos/internal/domain/entity"
)

// creditWarningDebtors a partir de cuántos deudores la alerta sube de info a warning.
const creditWarningDebtors = 3

// checkOutstandingCredit resume el fiado pendiente: total adeudado y el
// cliente con mayor saldo. Emite a lo más una alerta.
func (e *Engine) checkOutstandingCredit(ctx context.Context) ([]entity.Alert, error) {
	customers, err := e.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	var withDebt []entity.Customer
	totalCredit := decimal.Zero
	for _, c := range customers {
		if c.Balance.IsPositive() {
			withDebt = append(withDebt, c)
			totalCredit = totalCredit.Add(c.Balance)
		}
	}
	if len(withDebt) == 0 {
		return nil, nil
	}

	// Mayor deudor: orden descendente determinista; en empate gana el primero.
	sort.SliceStable(withDebt, func(i, j int) bool {
		return withDebt[i].Balance.GreaterThan(withDebt[j].Balance)
	})
	biggest := withDebt[0]

	currency, err := e.currencySymbol(ctx)
	if err != nil {
		return nil, err
	}

	severity := entity.SeverityInfo
	if len(withDebt) > creditWarningDebtors {
		severity = entity.SeverityWarning
	}

	return []entity.Alert{{
		ID:    "credit-outstanding",
		Type:  entity.AlertTypeCredit,
		Icon:  "💰",
		Title: fmt.Sprintf("%s Outstanding Credit", money(currency, totalCredit)),
		Message: fmt.Sprintf("%d customer%s pending payments. Highest: %s (%s)",
			len(withDebt), pluralHasHave(len(withDebt)), biggest.Name, money(currency, biggest.Balance)),
		Severity: severity,
	}}, nil
}

// pluralHasHave completa "customer(s) has/have" según la cuenta.
func pluralHasHave(n int) string {
	if n > 1 {
		return "s have"
	}
	return " has"
}
