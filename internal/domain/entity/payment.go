package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pago.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Payment registro de un checkout. Se crea en pending y pasa a completed con el callback de la pasarela.
// CompanyID se rellena cuando la CompanyRequest asociada es aprobada.
type Payment struct {
	ID               string
	OrderID          string // único, 16 dígitos
	CompanyRequestID string
	CompanyID        string
	Amount           decimal.Decimal
	Currency         string
	PaymentMethod    string
	BillingFirstName string
	BillingLastName  string
	BillingPhone     string
	BillingEmail     string
	BillingAddress   string
	BillingCity      string
	BillingCountry   string
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
