// Package notify entrega los avisos por correo en segundo plano.
//
// Flujo: Notifier (puerto de los casos de uso) -> Queue (memoria o RabbitMQ)
// -> Pool de workers -> Composer (plantilla + guía PDF) -> Mailer (SMTP).
// Un fallo de entrega se reintenta con backoff y, agotados los intentos, se registra y se descarta.
package notify

import (
	"context"

	"github.com/jhoicas/securepass-api/internal/application/ports"
)

// Tipos de trabajo.
const (
	KindRegistration      = "registration"
	KindPermissionGranted = "permission_granted"
)

// EmailJob trabajo de correo serializable (viaja como JSON por RabbitMQ).
type EmailJob struct {
	Kind         string                    `json:"kind"`
	Registration *ports.RegistrationNotice `json:"registration,omitempty"`
	Permission   *ports.PermissionNotice   `json:"permission,omitempty"`
}

// Recipient destinatario del trabajo, para logs.
func (j EmailJob) Recipient() string {
	switch {
	case j.Registration != nil:
		return j.Registration.Email
	case j.Permission != nil:
		return j.Permission.Email
	}
	return ""
}

// Attachment adjunto en memoria.
type Attachment struct {
	Filename string
	Content  []byte
}

// Message correo listo para enviar.
type Message struct {
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Mailer entrega un Message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
