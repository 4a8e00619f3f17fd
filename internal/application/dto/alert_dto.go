package dto

// AlertResponse una alerta activa del centro de notificaciones.
type AlertResponse struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Icon     string `json:"icon"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// AlertListResponse lista de alertas activas (ya filtradas por descartes).
type AlertListResponse struct {
	Alerts []AlertResponse `json:"alerts"`
}

// AlertBadgeResponse contador para la campana de notificaciones.
type AlertBadgeResponse struct {
	Count int `json:"count"`
}
