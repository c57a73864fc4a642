package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los casos de uso los envuelven con fmt.Errorf("%w: ...") y la capa HTTP los traduce con errors.Is.
var (
	ErrValidation          = errors.New("entrada inválida")
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrTenancyMismatch     = errors.New("el recurso pertenece a otra empresa")
	ErrCapacity            = errors.New("límite del paquete alcanzado")
	ErrInvalidStatus       = errors.New("estado inválido")
	ErrGenerationExhausted = errors.New("no se pudo generar un identificador único")
	ErrRequestNotPending   = errors.New("la solicitud ya fue procesada")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrUserIDAlreadyExists = errors.New("el userId ya está registrado")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
)
