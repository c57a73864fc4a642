package dto

import "time"

// RequestAdminInput administrador propuesto en el formulario de invitado.
type RequestAdminInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// CreateCompanyRequestInput entrada del formulario público de alta de empresa.
type CreateCompanyRequestInput struct {
	Name        string              `json:"name"`
	Address     string              `json:"address"`
	Admins      []RequestAdminInput `json:"admins"`
	PackageType string              `json:"packageType"`
}

// UpdateCompanyRequestInput entrada para editar nombre y dirección de la solicitud.
type UpdateCompanyRequestInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ToggleCompanyRequestInput decisión del SuperAdmin: "Approve" o "Reject".
type ToggleCompanyRequestInput struct {
	Status         string   `json:"status"`
	SelectedAdmins []string `json:"selectedAdmins"`
}

// RequestAdminResponse administrador propuesto (con su ID de sub-registro).
type RequestAdminResponse struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// CompanyRequestResponse salida de una solicitud de empresa.
type CompanyRequestResponse struct {
	ID          string                 `json:"_id"`
	Name        string                 `json:"name"`
	Address     string                 `json:"address"`
	Admins      []RequestAdminResponse `json:"admins"`
	Status      string                 `json:"status"`
	PackageType string                 `json:"packageType"`
	Payment     bool                   `json:"payment"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// CreateCompanyRequestResponse salida del alta de solicitud.
type CreateCompanyRequestResponse struct {
	Message        string                 `json:"message"`
	CompanyRequest CompanyRequestResponse `json:"companyRequest"`
}

// ApprovalResponse resultado de aprobar una solicitud: empresa creada y administradores provisionados.
type ApprovalResponse struct {
	Company CompanyResponse `json:"company"`
	Admins  []AdminResponse `json:"admins"`
}

// ToggleCompanyRequestResult resultado de la decisión; Approval es nil en el rechazo.
type ToggleCompanyRequestResult struct {
	Request  *CompanyRequestResponse
	Approval *ApprovalResponse
}

// CreateTrialRequestInput entrada del formulario de prueba gratuita.
type CreateTrialRequestInput struct {
	CompanyName string `json:"companyName"`
	Address     string `json:"address"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
}

// TrialRequestResponse salida de una solicitud de prueba.
type TrialRequestResponse struct {
	ID          string    `json:"_id"`
	CompanyName string    `json:"companyName"`
	Address     string    `json:"address"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TrialRequestListResponse listado paginado de solicitudes de prueba.
type TrialRequestListResponse struct {
	Success    bool                   `json:"success"`
	Data       []TrialRequestResponse `json:"data"`
	Pagination Pagination             `json:"pagination"`
}
