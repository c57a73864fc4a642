package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/securepass-api/internal/application/ports"
)

// GuideRenderer genera la guía PDF que se adjunta al correo de registro (admin o user).
type GuideRenderer interface {
	RenderGuide(audience, displayName string) ([]byte, error)
}

var templates = template.Must(template.New("registration").Parse(`<div style="font-family: Arial, sans-serif; padding: 20px;">
  <h2 style="color: #2563eb;">Bienvenido a SecurePass</h2>
  <div style="background: #f3f4f6; padding: 20px; border-radius: 8px;">
    <p>Hola {{.Name}}, tu cuenta fue creada correctamente.</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Contraseña:</strong> {{.Password}}</p>
    <p style="color: #ef4444;">Guarda tus credenciales y no las compartas con nadie.</p>
  </div>
  <p style="margin-top: 20px;">Adjuntamos la guía de uso.</p>
</div>`))

func init() {
	template.Must(templates.New("permission").Parse(`<div style="font-family: Arial, sans-serif; padding: 20px;">
  <h2>Tu permiso de acceso fue aprobado</h2>
  <p><strong>Puerta:</strong> {{.DoorCode}}</p>
  <p><strong>Sala:</strong> {{.RoomName}}</p>
  <p><strong>Ubicación:</strong> {{.Location}}</p>
  <p><strong>Fecha:</strong> {{.Date}}</p>
  <p><strong>Horario:</strong> {{.InTime}} - {{.OutTime}}</p>
  {{if .Message}}<p>{{.Message}}</p>{{end}}
</div>`))
}

// Composer arma el Message de cada EmailJob.
// Es seguro para varios workers: el Caser se crea por llamada porque guarda estado.
type Composer struct {
	guides GuideRenderer
}

// NewComposer construye el compositor. guides puede ser nil (correo sin adjunto).
func NewComposer(guides GuideRenderer) *Composer {
	return &Composer{guides: guides}
}

// Compose renderiza la plantilla del trabajo.
func (c *Composer) Compose(job EmailJob) (Message, error) {
	switch job.Kind {
	case KindRegistration:
		if job.Registration == nil {
			return Message{}, fmt.Errorf("notify: trabajo %s sin datos", job.Kind)
		}
		return c.registration(*job.Registration)
	case KindPermissionGranted:
		if job.Permission == nil {
			return Message{}, fmt.Errorf("notify: trabajo %s sin datos", job.Kind)
		}
		return c.permission(*job.Permission)
	}
	return Message{}, fmt.Errorf("notify: tipo de trabajo desconocido %q", job.Kind)
}

// DisplayName normaliza nombre y apellido para mostrar ("ANA ruiz" -> "Ana Ruiz").
func (c *Composer) DisplayName(first, last string) string {
	return cases.Title(language.Spanish).String(strings.TrimSpace(strings.Join(strings.Fields(first+" "+last), " ")))
}

func (c *Composer) registration(n ports.RegistrationNotice) (Message, error) {
	name := c.DisplayName(n.FirstName, n.LastName)
	var body bytes.Buffer
	err := templates.ExecuteTemplate(&body, "registration", map[string]string{
		"Name":     name,
		"Email":    n.Email,
		"Password": n.Password,
	})
	if err != nil {
		return Message{}, fmt.Errorf("notify: plantilla de registro: %w", err)
	}

	msg := Message{To: n.Email, Subject: "Registro exitoso", HTML: body.String()}
	if c.guides != nil {
		pdf, err := c.guides.RenderGuide(n.Audience, name)
		if err != nil {
			return Message{}, fmt.Errorf("notify: guía PDF: %w", err)
		}
		msg.Attachments = append(msg.Attachments, Attachment{Filename: guideFilename(n.Audience), Content: pdf})
	}
	return msg, nil
}

func (c *Composer) permission(n ports.PermissionNotice) (Message, error) {
	var body bytes.Buffer
	err := templates.ExecuteTemplate(&body, "permission", map[string]string{
		"DoorCode": n.DoorCode,
		"RoomName": n.RoomName,
		"Location": n.Location,
		"Date":     n.Date.UTC().Format("02/01/2006"),
		"InTime":   n.InTime,
		"OutTime":  n.OutTime,
		"Message":  n.Message,
	})
	if err != nil {
		return Message{}, fmt.Errorf("notify: plantilla de permiso: %w", err)
	}
	return Message{To: n.Email, Subject: "Permiso de acceso aprobado", HTML: body.String()}, nil
}

func guideFilename(audience string) string {
	if audience == ports.AudienceAdmin {
		return "Admin-Guide-SecurePass.pdf"
	}
	return "User-Guide-SecurePass.pdf"
}
