package alerts

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billmate-pos/internal/domain/entity"
)

// nSales genera n ventas no devueltas con el total indicado.
func nSales(n int, total int64) []entity.Sale {
	out := make([]entity.Sale, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, sale(baseClock.Add(-time.Duration(i)*time.Minute), total, false))
	}
	return out
}

func milestoneAlerts(t *testing.T, sales []entity.Sale) []entity.Alert {
	t.Helper()
	e := testEngine{sales: salesStub{items: sales}, now: baseClock}.build()
	alerts, err := e.checkMilestones(context.Background())
	require.NoError(t, err)
	return alerts
}

// La ventana de transacciones es [m, m+5): dispara al entrar y deja de
// disparar exactamente en m+5.
func TestCheckMilestones_VentanaDeTransacciones(t *testing.T) {
	cases := []struct {
		total    int
		wantID   string
		wantFire bool
	}{
		{total: 9, wantFire: false},
		{total: 10, wantID: "milestone-tx-10", wantFire: true},
		{total: 14, wantID: "milestone-tx-10", wantFire: true},
		{total: 15, wantFire: false}, // frontera exclusiva
		{total: 1000, wantID: "milestone-tx-1000", wantFire: true},
		{total: 1004, wantID: "milestone-tx-1000", wantFire: true},
		{total: 1005, wantFire: false},
		{total: 1006, wantFire: false},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("total=%d", tc.total), func(t *testing.T) {
			alerts := milestoneAlerts(t, nSales(tc.total, 1))
			var txAlerts []entity.Alert
			for _, a := range alerts {
				if a.Type == entity.AlertTypeMilestone && a.ID[:13] == "milestone-tx-" {
					txAlerts = append(txAlerts, a)
				}
			}
			if !tc.wantFire {
				assert.Empty(t, txAlerts)
				return
			}
			require.Len(t, txAlerts, 1)
			assert.Equal(t, tc.wantID, txAlerts[0].ID)
			assert.Equal(t, entity.SeveritySuccess, txAlerts[0].Severity)
		})
	}
}

// La ventana de ingresos es [m, m*1.1).
func TestCheckMilestones_VentanaDeIngresos(t *testing.T) {
	cases := []struct {
		revenue   int64
		wantID    string
		wantLabel string
		wantFire  bool
	}{
		{revenue: 9_999, wantFire: false},
		{revenue: 10_000, wantID: "milestone-rev-10000", wantLabel: "₹10K", wantFire: true},
		{revenue: 10_999, wantID: "milestone-rev-10000", wantLabel: "₹10K", wantFire: true},
		{revenue: 11_000, wantFire: false}, // 10000*1.1: frontera exclusiva
		{revenue: 100_000, wantID: "milestone-rev-100000", wantLabel: "₹1L", wantFire: true},
		{revenue: 500_000, wantID: "milestone-rev-500000", wantLabel: "₹5L", wantFire: true},
		{revenue: 1_000_000, wantID: "milestone-rev-1000000", wantLabel: "₹10L", wantFire: true},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("revenue=%d", tc.revenue), func(t *testing.T) {
			// una sola venta para no cruzar hitos de transacciones relevantes
			alerts := milestoneAlerts(t, nSales(1, tc.revenue))
			var revAlerts []entity.Alert
			for _, a := range alerts {
				if len(a.ID) > 14 && a.ID[:14] == "milestone-rev-" {
					revAlerts = append(revAlerts, a)
				}
			}
			if !tc.wantFire {
				assert.Empty(t, revAlerts)
				return
			}
			require.Len(t, revAlerts, 1)
			assert.Equal(t, tc.wantID, revAlerts[0].ID)
			assert.Contains(t, revAlerts[0].Title, tc.wantLabel+" Revenue Crossed!",
				"la etiqueta usa miles (K) o lakhs (L)")
		})
	}
}

// Las dos escaleras son independientes: pueden disparar en la misma llamada.
func TestCheckMilestones_AmbasEscalerasSimultaneas(t *testing.T) {
	alerts := milestoneAlerts(t, nSales(10, 1_000)) // 10 ventas, ₹10000 en total

	require.Len(t, alerts, 2)
	assert.Equal(t, "milestone-tx-10", alerts[0].ID)
	assert.Equal(t, "milestone-rev-10000", alerts[1].ID)
}

// Las devoluciones salen de ambos totales: pueden regresar un hito a su ventana.
func TestCheckMilestones_DevolucionesExcluidas(t *testing.T) {
	sales := nSales(10, 1)
	sales = append(sales, sale(baseClock.Add(-2*time.Hour), 99_999, true)) // devuelta

	alerts := milestoneAlerts(t, sales)
	require.Len(t, alerts, 1)
	assert.Equal(t, "milestone-tx-10", alerts[0].ID,
		"la venta devuelta no suma ni a transacciones ni a ingresos")
}

func TestCheckMilestones_SoloElPrimerHitoPorEscalera(t *testing.T) {
	// 25 transacciones: dentro de [25,30) pero ya fuera de [10,15)
	alerts := milestoneAlerts(t, nSales(25, 1))
	require.Len(t, alerts, 1)
	assert.Equal(t, "milestone-tx-25", alerts[0].ID)
}
