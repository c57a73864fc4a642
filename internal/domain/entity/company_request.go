package entity

import "time"

// Estados de una solicitud de empresa.
const (
	RequestStatusPending  = "Pending"
	RequestStatusApproved = "Approved"
	RequestStatusRejected = "Rejected"
)

// RequestAdmin es un administrador propuesto dentro de una CompanyRequest.
type RequestAdmin struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
}

// CompanyRequest es la solicitud de alta enviada por un invitado. Solo el SuperAdmin la aprueba o rechaza.
type CompanyRequest struct {
	ID          string
	Name        string
	Address     string
	Admins      []RequestAdmin
	Status      string // Pending, Approved, Rejected
	PackageType string
	Payment     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsPending informa si la solicitud aún admite transición.
func (r *CompanyRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}

// FindAdmin busca el administrador propuesto por ID.
func (r *CompanyRequest) FindAdmin(id string) (RequestAdmin, bool) {
	for _, a := range r.Admins {
		if a.ID == id {
			return a, true
		}
	}
	return RequestAdmin{}, false
}

// Approve mueve Pending -> Approved. No hace nada si la solicitud ya es terminal.
func (r *CompanyRequest) Approve(now time.Time) {
	if !r.IsPending() {
		return
	}
	r.Status = RequestStatusApproved
	r.UpdatedAt = now
}

// Reject mueve Pending -> Rejected. No hace nada si la solicitud ya es terminal.
func (r *CompanyRequest) Reject(now time.Time) {
	if !r.IsPending() {
		return
	}
	r.Status = RequestStatusRejected
	r.UpdatedAt = now
}

// TrialRequest solicitud de prueba gratuita enviada desde la web pública.
type TrialRequest struct {
	ID          string
	CompanyName string
	Address     string
	FirstName   string
	LastName    string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
