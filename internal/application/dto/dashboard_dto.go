package dto

// DashboardSummaryResponse respuesta de GET /api/dashboard/summary.
// Agrega los widgets de la pantalla principal en una sola llamada.
type DashboardSummaryResponse struct {
	Today       TodayStatsResponse   `json:"today"`
	LowStock    []ProductResponse    `json:"low_stock"`
	TopProducts []TopProductResponse `json:"top_products"`
}
