package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrNoInvoices      = errors.New("no se encontraron facturas para este cliente")
	ErrSessionNotFound = errors.New("sesión no encontrada")
	ErrInvalidInput    = errors.New("entrada inválida")
)
