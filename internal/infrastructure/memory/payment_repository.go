package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/securepass-api/internal/domain"
	"github.com/jhoicas/securepass-api/internal/domain/entity"
)

type paymentRepo struct{ v *view }

func (r *paymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	return r.v.write(ctx, func(d *data) error {
		if len(collect(d.payments, func(x *entity.Payment) bool { return x.OrderID == p.OrderID })) > 0 {
			return fmt.Errorf("%w: orderId %s", domain.ErrDuplicate, p.OrderID)
		}
		d.payments.put(p.ID, clonePayment(p))
		return nil
	})
}

func (r *paymentRepo) GetByOrderID(ctx context.Context, orderID string) (out *entity.Payment, err error) {
	err = r.v.read(ctx, func(d *data) error {
		if found := collect(d.payments, func(p *entity.Payment) bool { return p.OrderID == orderID }); len(found) > 0 {
			out = clonePayment(found[0])
		}
		return nil
	})
	return out, err
}

func (r *paymentRepo) ExistsOrderID(ctx context.Context, orderID string) (bool, error) {
	p, err := r.GetByOrderID(ctx, orderID)
	return p != nil, err
}

func (r *paymentRepo) Update(ctx context.Context, p *entity.Payment) error {
	return r.v.write(ctx, func(d *data) error {
		if _, ok := d.payments.get(p.ID); !ok {
			return fmt.Errorf("%w: pago %s", domain.ErrNotFound, p.ID)
		}
		d.payments.put(p.ID, clonePayment(p))
		return nil
	})
}

func (r *paymentRepo) RelinkToCompany(ctx context.Context, companyRequestID, companyID string) (n int64, err error) {
	err = r.v.write(ctx, func(d *data) error {
		for _, p := range d.payments.rows {
			if p.CompanyRequestID == companyRequestID {
				p.CompanyID = companyID
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r *paymentRepo) ListByCompany(ctx context.Context, companyID string) (out []*entity.Payment, err error) {
	err = r.v.read(ctx, func(d *data) error {
		for _, p := range collect(d.payments, func(p *entity.Payment) bool { return p.CompanyID == companyID }) {
			out = append(out, clonePayment(p))
		}
		return nil
	})
	return out, err
}

type auditRepo struct{ v *view }

func (r *auditRepo) Append(ctx context.Context, ev *entity.AuditEvent) error {
	return r.v.write(ctx, func(d *data) error {
		d.audit.put(ev.ID, cloneAudit(ev))
		return nil
	})
}

func (r *auditRepo) ListByCompany(ctx context.Context, companyID string, limit int) (out []*entity.AuditEvent, err error) {
	err = r.v.read(ctx, func(d *data) error {
		d.audit.newest(func(ev *entity.AuditEvent) bool {
			if companyID == "" || ev.CompanyID == companyID {
				out = append(out, cloneAudit(ev))
			}
			return limit <= 0 || len(out) < limit
		})
		return nil
	})
	return out, err
}
