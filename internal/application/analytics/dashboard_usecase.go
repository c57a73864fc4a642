// Package analytics contiene las vistas globales del SuperAdmin: métricas del
// dashboard y listados de usuarios y puertas de todas las empresas.
package analytics

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/securepass-api/internal/application/dto"
	"github.com/jhoicas/securepass-api/internal/domain/entity"
	"github.com/jhoicas/securepass-api/internal/domain/repository"
)

// DashboardUseCase genera los totales del panel del SuperAdmin.
//
// Fuente de datos: MetricsRepository (consultas read-only).
type DashboardUseCase struct {
	metrics repository.MetricsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(metrics repository.MetricsRepository) *DashboardUseCase {
	return &DashboardUseCase{metrics: metrics}
}

// GetMetrics lanza los ocho conteos en paralelo. Pendientes son las solicitudes
// Pending sin pago; pagadas, las Pending con pago confirmado.
func (uc *DashboardUseCase) GetMetrics(ctx context.Context) (*dto.DashboardMetricsResponse, error) {
	var out dto.DashboardMetricsResponse
	unpaid, paid := false, true

	group, ctx := errgroup.WithContext(ctx)
	count := func(label string, dst *int, fn func(context.Context) (int, error)) {
		group.Go(func() error {
			n, err := fn(ctx)
			if err != nil {
				return fmt.Errorf("dashboard: %s: %w", label, err)
			}
			*dst = n
			return nil
		})
	}
	requests := func(f repository.CompanyRequestFilter) func(context.Context) (int, error) {
		return func(ctx context.Context) (int, error) { return uc.metrics.CountCompanyRequests(ctx, f) }
	}

	count("usuarios", &out.TotalUsers, uc.metrics.CountUsers)
	count("administradores", &out.TotalAdminUsers, uc.metrics.CountAdminUsers)
	count("empresas", &out.TotalCompanies, uc.metrics.CountCompanies)
	count("puertas", &out.TotalDoors, uc.metrics.CountDoors)
	count("historial", &out.TotalHistories, uc.metrics.CountAccessEvents)
	count("pendientes", &out.TotalPendingRequests,
		requests(repository.CompanyRequestFilter{Status: entity.RequestStatusPending, Paid: &unpaid}))
	count("rechazadas", &out.TotalRejectedRequests,
		requests(repository.CompanyRequestFilter{Status: entity.RequestStatusRejected}))
	count("pagadas", &out.TotalPaidRequests,
		requests(repository.CompanyRequestFilter{Status: entity.RequestStatusPending, Paid: &paid}))

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
