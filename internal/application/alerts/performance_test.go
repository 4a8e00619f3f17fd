package alerts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billmate-pos/internal/domain/entity"
)

func TestCheckDailyPerformance_VentasArriba(t *testing.T) {
	yesterday := baseClock.AddDate(0, 0, -1)
	e := testEngine{
		sales: salesStub{items: []entity.Sale{
			sale(baseClock.Add(-time.Hour), 1300, false),
			sale(yesterday, 1000, false),
		}},
		now: baseClock,
	}.build()

	alerts, err := e.checkDailyPerformance(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	a := alerts[0]
	assert.Equal(t, "performance-up", a.ID)
	assert.Equal(t, entity.SeveritySuccess, a.Severity)
	assert.Equal(t,
		"Today's revenue ₹1300 is 30% higher than yesterday (₹1000)",
		a.Message)
}

func TestCheckDailyPerformance_BajonMayorAlVeinte(t *testing.T) {
	yesterday := baseClock.AddDate(0, 0, -1)
	e := testEngine{
		sales: salesStub{items: []entity.Sale{
			sale(baseClock.Add(-time.Hour), 700, false),
			sale(yesterday, 1000, false),
		}},
		now: baseClock,
	}.build()

	alerts, err := e.checkDailyPerformance(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	a := alerts[0]
	assert.Equal(t, "performance-down", a.ID)
	assert.Equal(t, entity.SeverityInfo, a.Severity)
	assert.Equal(t,
		"Revenue is 30% lower than yesterday. Yesterday: ₹1000, Today: ₹700",
		a.Message)
}

func TestCheckDailyPerformance_CaidaLeveCalla(t *testing.T) {
	yesterday := baseClock.AddDate(0, 0, -1)
	e := testEngine{
		sales: salesStub{items: []entity.Sale{
			sale(baseClock.Add(-time.Hour), 900, false), // -10%: dentro de la tolerancia
			sale(yesterday, 1000, false),
		}},
		now: baseClock,
	}.build()

	alerts, err := e.checkDailyPerformance(context.Background())
	require.NoError(t, err)
	assert.Empty(t, alerts, "una caída menor al 20% no genera alerta")
}

func TestCheckDailyPerformance_SinVentasHoyDespuesDeLasDiez(t *testing.T) {
	elevenAM := time.Date(2026, time.March, 13, 11, 0, 0, 0, time.Local)
	e := testEngine{
		sales: salesStub{items: []entity.Sale{
			sale(elevenAM.AddDate(0, 0, -1), 1000, false), // ayer sí hubo ventas
		}},
		now: elevenAM,
	}.build()

	alerts, err := e.checkDailyPerformance(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1, "salida temprana: solo el recordatorio, sin comparación")
	assert.Equal(t, "no-sales-today", alerts[0].ID)
	assert.Equal(t, entity.SeverityInfo, alerts[0].Severity)
}

func TestCheckDailyPerformance_SinVentasAntesDeLasDiezCalla(t *testing.T) {
	nineAM := time.Date(2026, time.March, 13, 9, 59, 0, 0, time.Local)
	e := testEngine{now: nineAM}.build()

	alerts, err := e.checkDailyPerformance(context.Background())
	require.NoError(t, err)
	assert.Empty(t, alerts, "antes de las 10:00 no se recuerda la falta de ventas")
}

func TestCheckDailyPerformance_DevolucionesExcluidas(t *testing.T) {
	yesterday := baseClock.AddDate(0, 0, -1)
	e := testEngine{
		sales: salesStub{items: []entity.Sale{
			sale(baseClock.Add(-time.Hour), 1300, false),
			sale(baseClock.Add(-2*time.Hour), 5000, true), // devuelta: fuera del agregado
			sale(yesterday, 1000, false),
			sale(yesterday.Add(time.Hour), 9000, true), // devuelta
		}},
		now: baseClock,
	}.build()

	alerts, err := e.checkDailyPerformance(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t,
		"Today's revenue ₹1300 is 30% higher than yesterday (₹1000)",
		alerts[0].Message,
		"las devoluciones no cuentan en ninguno de los dos días")
}

func TestCheckDailyPerformance_SinAyerNoCompara(t *testing.T) {
	e := testEngine{
		sales: salesStub{items: []entity.Sale{
			sale(baseClock.Add(-time.Hour), 500, false),
		}},
		now: baseClock,
	}.build()

	alerts, err := e.checkDailyPerformance(context.Background())
	require.NoError(t, err)
	assert.Empty(t, alerts, "sin ingresos ayer no hay base de comparación")
}
