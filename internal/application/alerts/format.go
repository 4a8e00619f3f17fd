package alerts

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/billmate-pos/internal/domain/entity"
)

// money formatea un monto para texto de alerta: símbolo + cero decimales
// (las alertas usan montos redondeados, no de contabilidad).
func money(currency string, amount decimal.Decimal) string {
	return currency + amount.StringFixed(0)
}

// percent formatea un porcentaje a entero, sin el signo %.
func percent(p decimal.Decimal) string {
	return p.StringFixed(0)
}

// currencySymbol resuelve el símbolo de moneda configurado.
func (e *Engine) currencySymbol(ctx context.Context) (string, error) {
	symbol, err := e.settings.Get(ctx, entity.SettingCurrency)
	if err != nil {
		return "", err
	}
	if symbol == "" {
		symbol = entity.DefaultSettings[entity.SettingCurrency]
	}
	return symbol, nil
}

// startOfDay devuelve la medianoche local del día de t.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
