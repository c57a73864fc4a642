package dto

import "time"

// CreateCompanyRequest entrada para que el SuperAdmin cree una empresa directamente.
type CreateCompanyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Package string `json:"package"`
}

// UpdateCompanyRequest entrada para actualizar nombre y dirección.
type UpdateCompanyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// LocationRequest entrada para añadir o quitar una ubicación.
type LocationRequest struct {
	CompanyID string `json:"companyId"`
	Location  string `json:"location"`
}

// CompanyResponse salida de una empresa. Admins solo se rellena en las vistas con administradores.
type CompanyResponse struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Address     string          `json:"address"`
	Locations   []string        `json:"locations"`
	AdminIDs    []string        `json:"adminIds"`
	Admins      []AdminResponse `json:"admins,omitempty"`
	Status      string          `json:"status"`
	Package     string          `json:"package"`
	ExpiredDate *time.Time      `json:"expiredDate"`
	Payment     bool            `json:"payment"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// CompanyStatusResponse salida del toggle de estado.
type CompanyStatusResponse struct {
	Message string `json:"message"`
	Company struct {
		ID     string `json:"_id"`
		Name   string `json:"name"`
		Status string `json:"status"`
	} `json:"company"`
}

// ExpirationResponse salida de la renovación del periodo.
type ExpirationResponse struct {
	Message     string    `json:"message"`
	ExpiredDate time.Time `json:"expiredDate"`
}

// CompanyWithPaymentsResponse empresa con sus pagos vinculados.
type CompanyWithPaymentsResponse struct {
	CompanyResponse
	Payments []PaymentResponse `json:"payments"`
}
