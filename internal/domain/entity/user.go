package entity

import "time"

// Roles de AdminUser.
const (
	RoleAdmin      = "Admin"
	RoleSuperAdmin = "SuperAdmin"
	// RoleUser no se persiste; identifica en el JWT a los usuarios finales (no administradores).
	RoleUser = "User"
)

// AdminUser administrador de una empresa (Admin) o de la plataforma (SuperAdmin).
type AdminUser struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string // único entre Users y AdminUsers
	PasswordHash string // bcrypt
	Role         string // Admin, SuperAdmin
	CompanyID    string // vacío para SuperAdmin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName nombre para mostrar.
func (a *AdminUser) FullName() string {
	return a.FirstName + " " + a.LastName
}

// DoorAccess concesión de acceso (puerta, fecha, franja horaria) registrada en un User.
// RequestID referencia la PermissionRequest que originó la concesión.
type DoorAccess struct {
	ID        string
	DoorID    string
	RequestID string
	DoorCode  string
	RoomName  string
	Location  string
	InTime    string // HH:MM
	OutTime   string // HH:MM
	Date      time.Time
}

// User usuario final de una empresa (empleado con acceso físico).
type User struct {
	ID              string
	FirstName       string
	LastName        string
	Email           string
	PasswordHash    string
	UserID          string // identificador de negocio (carnet), único
	ProfilePicture  string
	CompanyID       string
	AdminID         string
	DoorAccess      []DoorAccess
	PendingRequests []string // IDs de PermissionRequest
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FullName nombre para mostrar.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// FindDoorAccess busca una concesión por ID.
func (u *User) FindDoorAccess(id string) (DoorAccess, bool) {
	for _, da := range u.DoorAccess {
		if da.ID == id {
			return da, true
		}
	}
	return DoorAccess{}, false
}

// HasAccess informa si el usuario tiene una concesión para la puerta en la fecha indicada (UTC).
func (u *User) HasAccess(doorID string, day time.Time) bool {
	y, m, d := day.UTC().Date()
	for _, da := range u.DoorAccess {
		if da.DoorID != doorID {
			continue
		}
		dy, dm, dd := da.Date.UTC().Date()
		if dy == y && dm == m && dd == d {
			return true
		}
	}
	return false
}
