package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrEmptyCart       = errors.New("el carrito está vacío")
	ErrAlreadyRefunded = errors.New("la venta ya fue devuelta")
)
