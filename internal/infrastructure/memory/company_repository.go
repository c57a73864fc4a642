package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/securepass-api/internal/domain"
	"github.com/jhoicas/securepass-api/internal/domain/entity"
	"github.com/jhoicas/securepass-api/internal/domain/subscription"
)

type companyRepo struct{ v *view }

func (r *companyRepo) Create(ctx context.Context, c *entity.Company) error {
	return r.v.write(ctx, func(d *data) error {
		if _, ok := d.companies.get(c.ID); ok {
			return fmt.Errorf("%w: empresa %s", domain.ErrDuplicate, c.ID)
		}
		d.companies.put(c.ID, cloneCompany(c))
		return nil
	})
}

func (r *companyRepo) GetByID(ctx context.Context, id string) (out *entity.Company, err error) {
	err = r.v.read(ctx, func(d *data) error {
		if c, ok := d.companies.get(id); ok {
			out = cloneCompany(c)
		}
		return nil
	})
	return out, err
}

func (r *companyRepo) GetByNameAndAddress(ctx context.Context, name, address string) (out *entity.Company, err error) {
	err = r.v.read(ctx, func(d *data) error {
		d.companies.newest(func(c *entity.Company) bool {
			if c.Name == name && c.Address == address {
				out = cloneCompany(c)
				return false
			}
			return true
		})
		return nil
	})
	return out, err
}

func (r *companyRepo) Update(ctx context.Context, c *entity.Company) error {
	return r.v.write(ctx, func(d *data) error {
		if _, ok := d.companies.get(c.ID); !ok {
			return fmt.Errorf("%w: empresa %s", domain.ErrNotFound, c.ID)
		}
		d.companies.put(c.ID, cloneCompany(c))
		return nil
	})
}

func (r *companyRepo) List(ctx context.Context, limit, offset int) (out []*entity.Company, err error) {
	err = r.v.read(ctx, func(d *data) error {
		i := 0
		d.companies.newest(func(c *entity.Company) bool {
			if i >= offset {
				out = append(out, cloneCompany(c))
			}
			i++
			return limit <= 0 || len(out) < limit
		})
		return nil
	})
	return out, err
}

func (r *companyRepo) Delete(ctx context.Context, id string) error {
	return r.v.write(ctx, func(d *data) error {
		d.companies.del(id)
		for _, p := range collect(d.permissions, func(p *entity.PermissionRequest) bool { return p.CompanyID == id }) {
			d.permissions.del(p.ID)
		}
		return nil
	})
}

func (r *companyRepo) SetPaymentFlag(ctx context.Context, id string, paid bool) (found bool, err error) {
	err = r.v.write(ctx, func(d *data) error {
		c, ok := d.companies.get(id)
		if !ok {
			return nil
		}
		c.Payment = paid
		found = true
		return nil
	})
	return found, err
}

func (r *companyRepo) DeactivateExpired(ctx context.Context, now time.Time) (n int64, err error) {
	err = r.v.write(ctx, func(d *data) error {
		for _, c := range d.companies.rows {
			if c.Status == entity.CompanyStatusActive && subscription.IsExpired(c.ExpiredDate, now) {
				c.Status = entity.CompanyStatusInactive
				c.UpdatedAt = now
				n++
			}
		}
		return nil
	})
	return n, err
}

type companyRequestRepo struct{ v *view }

func (r *companyRequestRepo) Create(ctx context.Context, req *entity.CompanyRequest) error {
	return r.v.write(ctx, func(d *data) error {
		d.companyRequests.put(req.ID, cloneCompanyRequest(req))
		return nil
	})
}

func (r *companyRequestRepo) GetByID(ctx context.Context, id string) (out *entity.CompanyRequest, err error) {
	err = r.v.read(ctx, func(d *data) error {
		if req, ok := d.companyRequests.get(id); ok {
			out = cloneCompanyRequest(req)
		}
		return nil
	})
	return out, err
}

func (r *companyRequestRepo) Update(ctx context.Context, req *entity.CompanyRequest) error {
	return r.v.write(ctx, func(d *data) error {
		if _, ok := d.companyRequests.get(req.ID); !ok {
			return fmt.Errorf("%w: solicitud de empresa %s", domain.ErrNotFound, req.ID)
		}
		d.companyRequests.put(req.ID, cloneCompanyRequest(req))
		return nil
	})
}

// GetByIDForUpdate equivale a GetByID: dentro de Run el Store ya es exclusivo.
func (r *companyRequestRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.CompanyRequest, error) {
	return r.GetByID(ctx, id)
}

func (r *companyRequestRepo) List(ctx context.Context) (out []*entity.CompanyRequest, err error) {
	err = r.v.read(ctx, func(d *data) error {
		d.companyRequests.newest(func(req *entity.CompanyRequest) bool {
			out = append(out, cloneCompanyRequest(req))
			return true
		})
		return nil
	})
	return out, err
}

func (r *companyRequestRepo) Delete(ctx context.Context, id string) error {
	return r.v.write(ctx, func(d *data) error {
		d.companyRequests.del(id)
		return nil
	})
}

func (r *companyRequestRepo) SetPaymentFlag(ctx context.Context, id string, paid bool) error {
	return r.v.write(ctx, func(d *data) error {
		if req, ok := d.companyRequests.get(id); ok {
			req.Payment = paid
		}
		return nil
	})
}

type trialRequestRepo struct{ v *view }

func (r *trialRequestRepo) Create(ctx context.Context, t *entity.TrialRequest) error {
	return r.v.write(ctx, func(d *data) error {
		dup := collect(d.trials, func(x *entity.TrialRequest) bool { return x.Email == t.Email })
		if len(dup) > 0 {
			return fmt.Errorf("%w: solicitud de prueba %s", domain.ErrDuplicate, t.Email)
		}
		d.trials.put(t.ID, cloneTrial(t))
		return nil
	})
}

func (r *trialRequestRepo) List(ctx context.Context, limit, offset int) (out []*entity.TrialRequest, err error) {
	err = r.v.read(ctx, func(d *data) error {
		i := 0
		d.trials.newest(func(t *entity.TrialRequest) bool {
			if i >= offset {
				out = append(out, cloneTrial(t))
			}
			i++
			return limit <= 0 || len(out) < limit
		})
		return nil
	})
	return out, err
}

func (r *trialRequestRepo) Count(ctx context.Context) (n int, err error) {
	err = r.v.read(ctx, func(d *data) error {
		n = len(d.trials.rows)
		return nil
	})
	return n, err
}

// collect devuelve, del más reciente al más antiguo, las filas que cumplen match.
func collect[T any](t *table[T], match func(T) bool) []T {
	var out []T
	t.newest(func(v T) bool {
		if match(v) {
			out = append(out, v)
		}
		return true
	})
	return out
}
