package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentInput datos del checkout enviados por el frontend antes de redirigir a la pasarela.
type CreatePaymentInput struct {
	PaymentID        string          `json:"paymentID"`
	CompanyID        string          `json:"companyId"`
	CompanyRequestID string          `json:"companyRequestId"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	PaymentMethod    string          `json:"paymentMethod"`
	BillingFirstName string          `json:"billingFirstName"`
	BillingLastName  string          `json:"billingLastName"`
	BillingPhone     string          `json:"billingPhone"`
	BillingEmail     string          `json:"billingEmail"`
	BillingAddress   string          `json:"billingAddress"`
	BillingCity      string          `json:"billingCity"`
	BillingCountry   string          `json:"billingCountry"`
}

// CreatePaymentResponse salida del registro de pago.
type CreatePaymentResponse struct {
	Message   string `json:"message"`
	PaymentID string `json:"paymentID"`
}

// GeneratedIDResponse salida de la generación de orderId.
type GeneratedIDResponse struct {
	UniquePaymentID string `json:"uniquePaymentId"`
	Message         string `json:"message"`
}

// PaymentSuccessResponse salida del callback de la pasarela.
type PaymentSuccessResponse struct {
	Message   string `json:"message"`
	OrderID   string `json:"orderId"`
	CompanyID string `json:"companyId"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID               string          `json:"_id"`
	OrderID          string          `json:"orderId"`
	CompanyRequestID string          `json:"companyRequestId,omitempty"`
	CompanyID        string          `json:"companyId,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	PaymentMethod    string          `json:"paymentMethod"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
}
