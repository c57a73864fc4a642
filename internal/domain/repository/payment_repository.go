package repository

import (
	"context"

	"github.com/jhoicas/securepass-api/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para Payment.
type PaymentRepository interface {
	Create(ctx context.Context, p *entity.Payment) error
	GetByOrderID(ctx context.Context, orderID string) (*entity.Payment, error)
	ExistsOrderID(ctx context.Context, orderID string) (bool, error)
	Update(ctx context.Context, p *entity.Payment) error
	// RelinkToCompany asigna companyID a todos los pagos de la solicitud. Devuelve filas afectadas.
	RelinkToCompany(ctx context.Context, companyRequestID, companyID string) (int64, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Payment, error)
}

// AuditRepository define el puerto de la bitácora de auditoría (solo append).
type AuditRepository interface {
	Append(ctx context.Context, ev *entity.AuditEvent) error
	ListByCompany(ctx context.Context, companyID string, limit int) ([]*entity.AuditEvent, error)
}
