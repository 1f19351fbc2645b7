package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrInvalidQuantity = errors.New("cantidad inválida: debe ser un número mayor o igual a cero")
	ErrInvalidMonth    = errors.New("mes inválido: se espera formato YYYY-MM")
)
