package entity

import "time"

// Paquetes de suscripción (tier) disponibles para una empresa.
const (
	PackageStarter   = "Starter"
	PackageEssential = "Essential"
	PackagePremium   = "Premium"
)

// Estados de una empresa.
const (
	CompanyStatusActive   = "active"
	CompanyStatusInactive = "inactive"
)

// Company representa una organización/tenant del sistema de control de acceso.
// Es la raíz de aislamiento: AdminUsers, Users, Doors y PermissionRequests pertenecen a una sola Company.
type Company struct {
	ID          string
	Name        string
	Address     string
	Locations   []string
	Admins      []string // IDs de AdminUser
	Status      string   // active, inactive
	Package     string   // Starter, Essential, Premium
	ExpiredDate *time.Time
	Payment     bool // marcado por el callback de la pasarela de pago
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasLocation informa si la ubicación ya está registrada.
func (c *Company) HasLocation(location string) bool {
	for _, l := range c.Locations {
		if l == location {
			return true
		}
	}
	return false
}

// RemoveLocation quita todas las apariciones de la ubicación.
func (c *Company) RemoveLocation(location string) {
	out := c.Locations[:0]
	for _, l := range c.Locations {
		if l != location {
			out = append(out, l)
		}
	}
	c.Locations = out
}

// ToggleStatus alterna active <-> inactive.
func (c *Company) ToggleStatus() {
	if c.Status == CompanyStatusActive {
		c.Status = CompanyStatusInactive
		return
	}
	c.Status = CompanyStatusActive
}
