package notify

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/securepass-api/pkg/config"
)

// SMTPMailer envía por SMTP con gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer construye el mailer. From vacío usa el usuario SMTP.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   from,
	}
}

// Send abre una conexión por mensaje. gomail no acepta contexto; se respeta solo la cancelación previa.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.HTML)
	for _, a := range msg.Attachments {
		content := a.Content
		gm.Attach(a.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}
	return m.dialer.DialAndSend(gm)
}

// LogMailer registra el correo en vez de enviarlo (SMTP sin configurar).
type LogMailer struct {
	log zerolog.Logger
}

// NewLogMailer construye el mailer de desarrollo.
func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

// Send solo deja traza del envío.
func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.log.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Int("attachments", len(msg.Attachments)).
		Msg("SMTP no configurado; correo no enviado")
	return nil
}
