package memory

import (
	"context"

	"github.com/jhoicas/securepass-api/internal/domain/entity"
	"github.com/jhoicas/securepass-api/internal/domain/repository"
)

type metricsRepo struct{ v *view }

func (r *metricsRepo) count(ctx context.Context, fn func(d *data) int) (n int, err error) {
	err = r.v.read(ctx, func(d *data) error {
		n = fn(d)
		return nil
	})
	return n, err
}

func (r *metricsRepo) CountUsers(ctx context.Context) (int, error) {
	return r.count(ctx, func(d *data) int { return len(d.users.rows) })
}

func (r *metricsRepo) CountAdminUsers(ctx context.Context) (int, error) {
	return r.count(ctx, func(d *data) int { return len(d.admins.rows) })
}

func (r *metricsRepo) CountCompanies(ctx context.Context) (int, error) {
	return r.count(ctx, func(d *data) int { return len(d.companies.rows) })
}

func (r *metricsRepo) CountDoors(ctx context.Context) (int, error) {
	return r.count(ctx, func(d *data) int { return len(d.doors.rows) })
}

func (r *metricsRepo) CountAccessEvents(ctx context.Context) (int, error) {
	return r.count(ctx, func(d *data) int { return len(d.accessEvents.rows) })
}

func (r *metricsRepo) CountCompanyRequests(ctx context.Context, f repository.CompanyRequestFilter) (int, error) {
	return r.count(ctx, func(d *data) int {
		return len(collect(d.companyRequests, func(req *entity.CompanyRequest) bool {
			return (f.Status == "" || req.Status == f.Status) && (f.Paid == nil || req.Payment == *f.Paid)
		}))
	})
}
