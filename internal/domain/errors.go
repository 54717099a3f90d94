package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// ErrAPIKeyMissing condición distinguida y recuperable: el asistente no tiene
	// credencial configurada. Debe detectarse antes de cualquier llamada de red
	// para que la interfaz pueda pedir y persistir una clave sin perder la conversación.
	ErrAPIKeyMissing = errors.New("clave de API del asistente no configurada")
)
