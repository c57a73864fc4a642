package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/securepass-api/internal/domain/repository"
)

var _ repository.MetricsRepository = (*MetricsRepo)(nil)

// MetricsRepo conteos de solo lectura para el dashboard.
type MetricsRepo struct {
	q Querier
}

// NewMetricsRepository construye el adaptador de métricas.
func NewMetricsRepository(q Querier) *MetricsRepo {
	return &MetricsRepo{q: q}
}

// countRows ejecuta un SELECT count(*); table nunca viene de la entrada del cliente.
func (r *MetricsRepo) countRows(ctx context.Context, table, where string, args ...any) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM `+table+` WHERE `+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// CountUsers cuenta los usuarios finales.
func (r *MetricsRepo) CountUsers(ctx context.Context) (int, error) {
	return r.countRows(ctx, "users", "TRUE")
}

// CountAdminUsers cuenta administradores y SuperAdmins.
func (r *MetricsRepo) CountAdminUsers(ctx context.Context) (int, error) {
	return r.countRows(ctx, "admin_users", "TRUE")
}

// CountCompanies cuenta las empresas.
func (r *MetricsRepo) CountCompanies(ctx context.Context) (int, error) {
	return r.countRows(ctx, "companies", "TRUE")
}

// CountDoors cuenta las puertas.
func (r *MetricsRepo) CountDoors(ctx context.Context) (int, error) {
	return r.countRows(ctx, "doors", "TRUE")
}

// CountAccessEvents cuenta el historial de accesos.
func (r *MetricsRepo) CountAccessEvents(ctx context.Context) (int, error) {
	return r.countRows(ctx, "access_events", "TRUE")
}

// CountCompanyRequests cuenta solicitudes de empresa por estado y, opcionalmente, por pago.
func (r *MetricsRepo) CountCompanyRequests(ctx context.Context, f repository.CompanyRequestFilter) (int, error) {
	return r.countRows(ctx, "company_requests",
		"($1 = '' OR status = $1) AND ($2::boolean IS NULL OR payment = $2)", f.Status, f.Paid)
}
