package ports

import (
	"context"
	"time"
)

// Tipos de plantilla de notificación.
const (
	AudienceAdmin = "admin"
	AudienceUser  = "user"
)

// RegistrationNotice aviso de alta de cuenta con credenciales iniciales.
type RegistrationNotice struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
	Audience  string // admin | user: decide la guía PDF adjunta
}

// PermissionNotice aviso de concesión de acceso a una puerta.
type PermissionNotice struct {
	Email    string
	DoorCode string
	RoomName string
	Location string
	Date     time.Time
	InTime   string
	OutTime  string
	Message  string
}

// Notifier puerto de notificaciones diferidas (best-effort).
// Las implementaciones encolan el trabajo y vuelven de inmediato; la entrega ocurre en segundo plano
// con su propia política de reintentos. Un error aquí indica que no se pudo encolar.
type Notifier interface {
	NotifyRegistration(ctx context.Context, n RegistrationNotice) error
	NotifyPermissionGranted(ctx context.Context, n PermissionNotice) error
}
