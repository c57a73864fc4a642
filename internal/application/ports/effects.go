package ports

import (
	"context"

	"github.com/rs/zerolog"
)

// Effects agrupa los colaboradores best-effort invocados tras el commit.
// Sus fallos se registran en el log y nunca llegan al llamador.
type Effects struct {
	Notifier Notifier
	Events   EventPublisher
	Log      zerolog.Logger
}

// Registration encola el aviso de alta de cuenta.
func (e Effects) Registration(ctx context.Context, n RegistrationNotice) {
	if e.Notifier == nil {
		return
	}
	if err := e.Notifier.NotifyRegistration(context.WithoutCancel(ctx), n); err != nil {
		e.Log.Error().Err(err).Str("email", n.Email).Msg("no se pudo encolar el correo de registro")
	}
}

// PermissionGranted encola el aviso de concesión de acceso.
func (e Effects) PermissionGranted(ctx context.Context, n PermissionNotice) {
	if e.Notifier == nil {
		return
	}
	if err := e.Notifier.NotifyPermissionGranted(context.WithoutCancel(ctx), n); err != nil {
		e.Log.Error().Err(err).Str("email", n.Email).Msg("no se pudo encolar el correo de permiso")
	}
}

// Publish publica un evento de dominio.
func (e Effects) Publish(ctx context.Context, ev DomainEvent) {
	if e.Events == nil {
		return
	}
	if err := e.Events.Publish(context.WithoutCancel(ctx), ev); err != nil {
		e.Log.Warn().Err(err).Str("event", ev.Name).Str("subject_id", ev.SubjectID).Msg("no se pudo publicar el evento")
	}
}
