package dto

import "time"

// CreateAdminInput entrada para que el SuperAdmin cree un administrador.
type CreateAdminInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	CompanyID string `json:"companyId"`
}

// AdminResponse salida de un administrador (sin password).
type AdminResponse struct {
	ID        string    `json:"_id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CompanyID string    `json:"company"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterUserInput entrada para que un Admin registre un usuario final.
type RegisterUserInput struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	UserID         string `json:"userId"`
	ProfilePicture string `json:"profilePicture"`
}

// UpdateUserInput entrada para editar un usuario. Password vacío conserva el actual.
type UpdateUserInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	UserID    string `json:"userId"`
	Password  string `json:"password"`
}

// DoorAccessResponse concesión de acceso de un usuario.
type DoorAccessResponse struct {
	ID        string    `json:"_id"`
	DoorID    string    `json:"door"`
	RequestID string    `json:"requestId,omitempty"`
	DoorCode  string    `json:"doorCode"`
	RoomName  string    `json:"roomName"`
	Location  string    `json:"location"`
	InTime    string    `json:"inTime"`
	OutTime   string    `json:"outTime"`
	Date      time.Time `json:"date"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID              string               `json:"_id"`
	FirstName       string               `json:"firstName"`
	LastName        string               `json:"lastName"`
	Email           string               `json:"email"`
	UserID          string               `json:"userId"`
	ProfilePicture  string               `json:"profilePicture,omitempty"`
	CompanyID       string               `json:"company,omitempty"`
	AdminID         string               `json:"admin,omitempty"`
	DoorAccess      []DoorAccessResponse `json:"doorAccess"`
	PendingRequests []string             `json:"pendingRequests"`
	CreatedAt       time.Time            `json:"createdAt"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token JWT y datos del principal autenticado.
type LoginResponse struct {
	Token     string `json:"token"`
	ID        string `json:"_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CompanyID string `json:"company,omitempty"`
}

// MeResponse datos del principal del token.
type MeResponse struct {
	ID        string `json:"_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CompanyID string `json:"company,omitempty"`
}
