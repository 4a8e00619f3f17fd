// Package alerts implementa el motor de alertas inteligentes: cinco
// evaluadores independientes sobre catálogo, ventas, gastos y clientes,
// agregados en una lista ordenada por severidad.
package alerts

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/billmate-pos/internal/domain/entity"
	"github.com/jhoicas/billmate-pos/pkg/logger"
)

// Engine ejecuta los evaluadores y mezcla sus resultados. No tiene estado
// entre llamadas: cada Generate recalcula todo desde los datos actuales.
type Engine struct {
	products  ProductSource
	sales     SaleSource
	expenses  ExpenseSource
	customers CustomerSource
	settings  SettingSource
	log       *logger.Logger

	// now se inyecta en tests para fijar la hora local (regla de las 10:00
	// y fronteras de día calendario).
	now func() time.Time
}

// NewEngine construye el motor con sus fuentes de datos.
func NewEngine(
	products ProductSource,
	sales SaleSource,
	expenses ExpenseSource,
	customers CustomerSource,
	settings SettingSource,
	log *logger.Logger,
) *Engine {
	return &Engine{
		products:  products,
		sales:     sales,
		expenses:  expenses,
		customers: customers,
		settings:  settings,
		log:       log,
		now:       time.Now,
	}
}

// evaluator es un paso analítico independiente. name solo se usa en el log
// de depuración cuando el evaluador falla.
type evaluator struct {
	name string
	run  func(ctx context.Context) ([]entity.Alert, error)
}

// Generate ejecuta los cinco evaluadores (concurrentes, sin dependencias
// entre sí) y devuelve la lista concatenada con orden estable por severidad:
// critical < warning < info < success.
//
// Un evaluador que falla o entra en pánico aporta cero alertas y no impide
// que los demás aporten las suyas; la falla solo se registra en debug. Las
// alertas son un camino no crítico: nunca deben romper el flujo de cobro.
func (e *Engine) Generate(ctx context.Context) []entity.Alert {
	evaluators := []evaluator{
		{name: "stock", run: e.checkLowStock},
		{name: "credit", run: e.checkOutstandingCredit},
		{name: "performance", run: e.checkDailyPerformance},
		{name: "expense", run: e.checkExpenseAnomalies},
		{name: "milestone", run: e.checkMilestones},
	}

	// Fan-out con un canal por evaluador; la recolección en orden fijo
	// conserva el orden de emisión para el empate de severidades.
	results := make([]chan []entity.Alert, len(evaluators))
	for i, ev := range evaluators {
		ch := make(chan []entity.Alert, 1)
		results[i] = ch
		go func(ev evaluator, ch chan<- []entity.Alert) {
			defer func() {
				if r := recover(); r != nil {
					e.log.Debug().Str("evaluator", ev.name).Any("panic", r).
						Msg("evaluador de alertas entró en pánico")
					ch <- nil
				}
			}()
			found, err := ev.run(ctx)
			if err != nil {
				e.log.Debug().Str("evaluator", ev.name).Err(err).
					Msg("evaluador de alertas falló")
				ch <- nil
				return
			}
			ch <- found
		}(ev, ch)
	}

	var all []entity.Alert
	for _, ch := range results {
		all = append(all, <-ch...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return entity.SeverityRank(all[i].Severity) < entity.SeverityRank(all[j].Severity)
	})
	return all
}
