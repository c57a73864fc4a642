package dto

import "time"

// MakePermissionInput entrada del flujo de autoservicio (se aprueba al crearse).
type MakePermissionInput struct {
	UserID  string `json:"user"`
	DoorID  string `json:"door"`
	Date    string `json:"date"` // YYYY-MM-DD o RFC3339
	InTime  string `json:"inTime"`
	OutTime string `json:"outTime"`
	Message string `json:"message"`
}

// CreatePermissionInput entrada del flujo con revisión del Admin (queda Pending).
type CreatePermissionInput struct {
	UserID  string `json:"userId"`
	DoorID  string `json:"doorId"`
	Date    string `json:"date"`
	InTime  string `json:"inTime"`
	OutTime string `json:"outTime"`
	Message string `json:"message"`
}

// PermissionSummaryResponse resumen devuelto al crear una solicitud autoaprobada.
type PermissionSummaryResponse struct {
	ID       string    `json:"_id"`
	DoorCode string    `json:"door"`
	RoomName string    `json:"roomName"`
	Location string    `json:"location"`
	Date     time.Time `json:"date"`
	InTime   string    `json:"inTime"`
	OutTime  string    `json:"outTime"`
	Message  string    `json:"message"`
	Status   string    `json:"status"`
}

// PermissionRequestResponse salida completa de una solicitud de permiso.
type PermissionRequestResponse struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"user"`
	CompanyID string    `json:"company"`
	DoorID    string    `json:"door"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	RoomName  string    `json:"roomName"`
	InTime    string    `json:"inTime"`
	OutTime   string    `json:"outTime"`
	Date      time.Time `json:"date"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
