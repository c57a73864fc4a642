package dto

import "github.com/jhoicas/securepass-api/internal/domain/entity"

// PageRequest paginación para listados.
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// MaxPage tope de página; mantiene Offset lejos del desbordamiento.
const MaxPage = 100_000

// DefaultPage aplica valores por defecto si Page/Limit son cero o negativos y acota ambos.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit <= 0 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Offset desplazamiento correspondiente a la página.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination metadatos de página en respuestas.
type Pagination struct {
	CurrentPage   int `json:"currentPage"`
	TotalPages    int `json:"totalPages"`
	TotalRequests int `json:"totalRequests"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// UniqueResponse respuesta de los chequeos de unicidad.
type UniqueResponse struct {
	IsUnique bool `json:"isUnique"`
}

// Principal identidad autenticada extraída del JWT.
type Principal struct {
	ID        string
	CompanyID string
	Role      string
}

// IsSuperAdmin informa si el principal opera sobre todas las empresas.
func (p Principal) IsSuperAdmin() bool {
	return p.Role == entity.RoleSuperAdmin
}

// CanAccessCompany informa si el principal puede operar sobre datos de companyID.
func (p Principal) CanAccessCompany(companyID string) bool {
	return p.IsSuperAdmin() || (p.CompanyID != "" && p.CompanyID == companyID)
}
