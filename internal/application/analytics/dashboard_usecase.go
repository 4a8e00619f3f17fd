// Package analytics arma el resumen de la pantalla principal combinando
// ventas, inventario y top de productos en una sola llamada.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/billmate-pos/internal/application/dto"
)

const dashboardTopProducts = 5 // número de productos en el widget del dashboard

// SaleStats subconjunto del caso de uso de ventas que consume el dashboard.
type SaleStats interface {
	TodayStats(ctx context.Context) (*dto.TodayStatsResponse, error)
	TopProducts(ctx context.Context, limit int) ([]dto.TopProductResponse, error)
}

// Catalog subconjunto del catálogo que consume el dashboard.
type Catalog interface {
	ListLowStock(ctx context.Context) ([]dto.ProductResponse, error)
}

// DashboardUseCase genera el resumen del día para la pantalla principal.
type DashboardUseCase struct {
	sales   SaleStats
	catalog Catalog
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(sales SaleStats, catalog Catalog) *DashboardUseCase {
	return &DashboardUseCase{sales: sales, catalog: catalog}
}

// GetSummary construye el DashboardSummaryResponse.
//
// Tres consultas en paralelo:
//  1. TodayStats      → ingresos, utilidad y transacciones de hoy
//  2. ListLowStock    → productos por reabastecer
//  3. TopProducts(5)  → los más vendidos
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	type statsResult struct {
		stats *dto.TodayStatsResponse
		err   error
	}
	type lowStockResult struct {
		products []dto.ProductResponse
		err      error
	}
	type topResult struct {
		products []dto.TopProductResponse
		err      error
	}

	statsCh := make(chan statsResult, 1)
	lowCh := make(chan lowStockResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		stats, err := uc.sales.TodayStats(ctx)
		statsCh <- statsResult{stats, err}
	}()
	go func() {
		products, err := uc.catalog.ListLowStock(ctx)
		lowCh <- lowStockResult{products, err}
	}()
	go func() {
		products, err := uc.sales.TopProducts(ctx, dashboardTopProducts)
		topCh <- topResult{products, err}
	}()

	stats := <-statsCh
	low := <-lowCh
	top := <-topCh

	if stats.err != nil {
		return nil, fmt.Errorf("dashboard: métricas de hoy: %w", stats.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", low.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top productos: %w", top.err)
	}

	return &dto.DashboardSummaryResponse{
		Today:       *stats.stats,
		LowStock:    low.products,
		TopProducts: top.products,
	}, nil
}
