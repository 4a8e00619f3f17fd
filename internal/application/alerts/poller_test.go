package alerts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billmate-pos/internal/domain/entity"
	"github.com/jhoicas/billmate-pos/pkg/logger"
)

// dismissedStub conjunto de descartados en memoria.
type dismissedStub struct {
	ids []string
}

func (s *dismissedStub) Dismiss(_ context.Context, id string) error {
	s.ids = append(s.ids, id)
	return nil
}
func (s *dismissedStub) ListIDs(_ context.Context) ([]string, error) { return s.ids, nil }
func (s *dismissedStub) Clear(_ context.Context) error              { s.ids = nil; return nil }

func TestPoller_CuentaSoloNoDescartadas(t *testing.T) {
	engine := testEngine{
		products: productsStub{items: []entity.Product{
			{Name: "A", StockQuantity: 0}, // out-of-stock
			{Name: "B", StockQuantity: 2}, // low-stock
		}},
		now: baseClock.Add(-5 * time.Hour), // antes de las 10:00
	}.build()

	dismissed := &dismissedStub{ids: []string{"low-stock"}}
	p := NewPoller(engine, dismissed, time.Hour, logger.New(logger.Config{Level: "error"}))

	p.refresh(context.Background())
	assert.Equal(t, 1, p.Count(), "low-stock está descartada, solo cuenta out-of-stock")
}

func TestPoller_StartYStopSinFugas(t *testing.T) {
	engine := testEngine{now: baseClock.Add(-5 * time.Hour)}.build()
	p := NewPoller(engine, &dismissedStub{}, 10*time.Millisecond, logger.New(logger.Config{Level: "error"}))

	p.Start(context.Background())
	require.Eventually(t, func() bool { return p.Count() == 0 }, time.Second, 5*time.Millisecond)

	done := make(chan struct{})
	go func() {
		p.Stop()
		p.Stop() // segundo Stop debe ser inocuo
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop no terminó: el goroutine del poller quedó vivo")
	}
}

func TestPoller_IntervaloNoPositivoUsaDefault(t *testing.T) {
	engine := testEngine{}.build()
	p := NewPoller(engine, &dismissedStub{}, 0, logger.New(logger.Config{Level: "error"}))
	assert.Equal(t, DefaultPollInterval, p.interval)
}
