package dto

// UpdateSettingRequest entrada de PUT /api/settings/:key.
type UpdateSettingRequest struct {
	Value string `json:"value" validate:"required"`
}

// SettingsResponse mapa completo de configuración (defaults ya aplicados).
type SettingsResponse struct {
	Settings map[string]string `json:"settings"`
}
