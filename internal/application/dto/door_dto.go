package dto

import "time"

// CreateDoorInput entrada para registrar una puerta.
type CreateDoorInput struct {
	DoorCode string `json:"doorCode"`
	RoomName string `json:"roomName"`
	Location string `json:"location"`
}

// DoorResponse salida de una puerta.
type DoorResponse struct {
	ID            string    `json:"_id"`
	DoorCode      string    `json:"doorCode"`
	RoomName      string    `json:"roomName"`
	Location      string    `json:"location"`
	CompanyID     string    `json:"company"`
	AdminID       string    `json:"admin"`
	ApprovedUsers []string  `json:"approvedUsers"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// RecordAccessInput evento de entrada/salida reportado por el controlador de la puerta.
type RecordAccessInput struct {
	UserID    string     `json:"user"`
	DoorID    string     `json:"door"`
	EntryTime time.Time  `json:"entryTime"`
	ExitTime  *time.Time `json:"exitTime"`
}

// AccessEventResponse entrada del historial de accesos.
type AccessEventResponse struct {
	ID        string     `json:"_id"`
	UserID    string     `json:"user"`
	CompanyID string     `json:"company"`
	DoorID    string     `json:"door"`
	DoorCode  string     `json:"doorCode"`
	RoomName  string     `json:"roomName"`
	Location  string     `json:"location"`
	EntryTime time.Time  `json:"entryTime"`
	ExitTime  *time.Time `json:"exitTime"`
}
