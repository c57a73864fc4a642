package notify

import (
	"context"

	"github.com/jhoicas/securepass-api/internal/application/ports"
)

// Notifier implementa ports.Notifier encolando trabajos; no espera la entrega.
type Notifier struct {
	queue Queue
}

var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier construye el notificador sobre la cola dada.
func NewNotifier(q Queue) *Notifier {
	return &Notifier{queue: q}
}

// NotifyRegistration encola el correo de bienvenida.
func (n *Notifier) NotifyRegistration(ctx context.Context, notice ports.RegistrationNotice) error {
	return n.queue.Enqueue(ctx, EmailJob{Kind: KindRegistration, Registration: &notice})
}

// NotifyPermissionGranted encola el correo de permiso aprobado.
func (n *Notifier) NotifyPermissionGranted(ctx context.Context, notice ports.PermissionNotice) error {
	return n.queue.Enqueue(ctx, EmailJob{Kind: KindPermissionGranted, Permission: &notice})
}
