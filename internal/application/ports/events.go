package ports

import "context"

// Nombres de eventos de dominio publicados hacia el bus.
const (
	EventCompanyApproved    = "company.approved"
	EventCompanyRejected    = "company.rejected"
	EventPermissionApproved = "permission.approved"
	EventPermissionRejected = "permission.rejected"
	EventDoorAccessRevoked  = "door_access.revoked"
	EventPaymentCompleted   = "payment.completed"
)

// DomainEvent sobre publicado tras el commit.
type DomainEvent struct {
	Name      string         `json:"name"`
	CompanyID string         `json:"company_id,omitempty"`
	SubjectID string         `json:"subject_id"`
	Data      map[string]any `json:"data,omitempty"`
}

// EventPublisher publica eventos de dominio (Kafka u otro bus). Best-effort.
type EventPublisher interface {
	Publish(ctx context.Context, ev DomainEvent) error
}
