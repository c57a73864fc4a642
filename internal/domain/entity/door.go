package entity

import "time"

// Estados de una puerta.
const (
	DoorStatusActive   = "active"
	DoorStatusInactive = "inactive"
)

// Door puerta física controlada, asociada a una empresa y al admin que la registró.
// ApprovedUsers refleja los usuarios con una concesión activa para la puerta.
type Door struct {
	ID            string
	DoorCode      string
	RoomName      string
	Location      string
	CompanyID     string
	AdminID       string
	ApprovedUsers []string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
