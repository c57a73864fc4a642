package repository

import "context"

// CompanyRequestFilter acota el conteo de solicitudes de empresa. Paid nil no filtra por pago.
type CompanyRequestFilter struct {
	Status string
	Paid   *bool
}

// MetricsRepository consultas de solo lectura para el dashboard del SuperAdmin.
type MetricsRepository interface {
	CountUsers(ctx context.Context) (int, error)
	CountAdminUsers(ctx context.Context) (int, error)
	CountCompanies(ctx context.Context) (int, error)
	CountDoors(ctx context.Context) (int, error)
	CountAccessEvents(ctx context.Context) (int, error)
	CountCompanyRequests(ctx context.Context, f CompanyRequestFilter) (int, error)
}
