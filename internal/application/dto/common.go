package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación simple para operaciones sin cuerpo de salida.
type MessageResponse struct {
	Message string `json:"message"`
}
