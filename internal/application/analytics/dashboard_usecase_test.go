package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billmate-pos/internal/application/dto"
)

type salesStub struct {
	stats    *dto.TodayStatsResponse
	statsErr error
	top      []dto.TopProductResponse
	topErr   error
	topLimit int
}

func (s *salesStub) TodayStats(_ context.Context) (*dto.TodayStatsResponse, error) {
	return s.stats, s.statsErr
}

func (s *salesStub) TopProducts(_ context.Context, limit int) ([]dto.TopProductResponse, error) {
	s.topLimit = limit
	return s.top, s.topErr
}

type catalogStub struct {
	low []dto.ProductResponse
	err error
}

func (s catalogStub) ListLowStock(_ context.Context) ([]dto.ProductResponse, error) {
	return s.low, s.err
}

func TestGetSummary_CombinaLasTresConsultas(t *testing.T) {
	sales := &salesStub{
		stats: &dto.TodayStatsResponse{
			Revenue:      decimal.NewFromInt(1200),
			Profit:       decimal.NewFromInt(300),
			Transactions: 8,
		},
		top: []dto.TopProductResponse{{ProductName: "Arroz", QuantitySold: 12}},
	}
	catalog := catalogStub{low: []dto.ProductResponse{{Name: "Aceite", StockQuantity: 1}}}

	summary, err := NewDashboardUseCase(sales, catalog).GetSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.Today.Revenue.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, 8, summary.Today.Transactions)
	require.Len(t, summary.LowStock, 1)
	assert.Equal(t, "Aceite", summary.LowStock[0].Name)
	require.Len(t, summary.TopProducts, 1)
	assert.Equal(t, dashboardTopProducts, sales.topLimit)
}

func TestGetSummary_PropagaErrores(t *testing.T) {
	boom := errors.New("sin conexión")

	_, err := NewDashboardUseCase(
		&salesStub{statsErr: boom, stats: nil},
		catalogStub{},
	).GetSummary(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = NewDashboardUseCase(
		&salesStub{stats: &dto.TodayStatsResponse{}},
		catalogStub{err: boom},
	).GetSummary(context.Background())
	assert.ErrorIs(t, err, boom)
}
