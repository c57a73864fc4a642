package entity

import "time"

// Acciones registradas en la bitácora de auditoría.
const (
	AuditCompanyRequestApproved = "COMPANY_REQUEST_APPROVED"
	AuditCompanyRequestRejected = "COMPANY_REQUEST_REJECTED"
	AuditCompanyDeleted         = "COMPANY_DELETED"
	AuditPermissionApproved     = "PERMISSION_APPROVED"
	AuditPermissionRejected     = "PERMISSION_REJECTED"
	AuditPermissionAutoApproved = "PERMISSION_AUTO_APPROVED"
	AuditDoorAccessRemoved      = "DOOR_ACCESS_REMOVED"
	AuditPaymentCompleted       = "PAYMENT_COMPLETED"
)

// AuditEvent entrada de la bitácora; se escribe en la misma transacción que el cambio que describe.
type AuditEvent struct {
	ID        string
	ActorID   string // vacío para acciones de invitado o callbacks externos
	CompanyID string
	Action    string
	TargetID  string
	Metadata  map[string]any
	CreatedAt time.Time
}
