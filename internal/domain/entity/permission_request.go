package entity

import "time"

// PermissionRequest solicitud de acceso de un usuario a una puerta en una fecha y franja.
// Máquina de estados: Pending -> {Approved, Rejected}; ambos terminales.
type PermissionRequest struct {
	ID        string
	UserID    string
	CompanyID string
	DoorID    string
	Name      string
	Location  string
	RoomName  string
	InTime    string
	OutTime   string
	Date      time.Time
	Message   string
	Status    string // Pending, Approved, Rejected
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending informa si la solicitud aún admite transición.
func (p *PermissionRequest) IsPending() bool {
	return p.Status == RequestStatusPending
}

// Grant construye la concesión que la aprobación añade al usuario.
func (p *PermissionRequest) Grant(id string, door *Door) DoorAccess {
	return DoorAccess{
		ID:        id,
		DoorID:    door.ID,
		RequestID: p.ID,
		DoorCode:  door.DoorCode,
		RoomName:  door.RoomName,
		Location:  door.Location,
		InTime:    p.InTime,
		OutTime:   p.OutTime,
		Date:      p.Date,
	}
}

// AccessEvent evento de entrada/salida por una puerta (historial de auditoría de accesos).
type AccessEvent struct {
	ID        string
	UserID    string
	CompanyID string
	DoorID    string
	DoorCode  string
	RoomName  string
	Location  string
	EntryTime time.Time
	ExitTime  *time.Time
	CreatedAt time.Time
}
