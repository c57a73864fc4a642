package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/jhoicas/securepass-api/internal/domain"
	"github.com/jhoicas/securepass-api/internal/domain/entity"
)

type doorRepo struct{ v *view }

func (r *doorRepo) Create(ctx context.Context, door *entity.Door) error {
	return r.v.write(ctx, func(d *data) error {
		dup := collect(d.doors, func(x *entity.Door) bool {
			return x.CompanyID == door.CompanyID && x.DoorCode == door.DoorCode
		})
		if len(dup) > 0 {
			return fmt.Errorf("%w: puerta %s", domain.ErrDuplicate, door.DoorCode)
		}
		d.doors.put(door.ID, cloneDoor(door))
		return nil
	})
}

func (r *doorRepo) GetByID(ctx context.Context, id string) (out *entity.Door, err error) {
	err = r.v.read(ctx, func(d *data) error {
		if door, ok := d.doors.get(id); ok {
			out = cloneDoor(door)
		}
		return nil
	})
	return out, err
}

func (r *doorRepo) list(ctx context.Context, match func(*entity.Door) bool) (out []*entity.Door, err error) {
	err = r.v.read(ctx, func(d *data) error {
		for _, door := range collect(d.doors, match) {
			out = append(out, cloneDoor(door))
		}
		return nil
	})
	return out, err
}

func (r *doorRepo) ListAll(ctx context.Context) ([]*entity.Door, error) {
	return r.list(ctx, func(*entity.Door) bool { return true })
}

func (r *doorRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Door, error) {
	return r.list(ctx, func(door *entity.Door) bool { return door.CompanyID == companyID })
}

func (r *doorRepo) ListByAdmin(ctx context.Context, adminID string) ([]*entity.Door, error) {
	return r.list(ctx, func(door *entity.Door) bool { return door.AdminID == adminID })
}

func (r *doorRepo) Delete(ctx context.Context, id string) error {
	return r.v.write(ctx, func(d *data) error {
		deleteDoor(d, id)
		return nil
	})
}

func (r *doorRepo) DeleteByCompany(ctx context.Context, companyID string) error {
	return r.v.write(ctx, func(d *data) error {
		for _, door := range collect(d.doors, func(door *entity.Door) bool { return door.CompanyID == companyID }) {
			deleteDoor(d, door.ID)
		}
		return nil
	})
}

// deleteDoor borra la puerta y las concesiones que la referencian.
func deleteDoor(d *data, id string) {
	if !d.doors.del(id) {
		return
	}
	for _, u := range d.users.rows {
		u.DoorAccess = slices.DeleteFunc(u.DoorAccess, func(da entity.DoorAccess) bool { return da.DoorID == id })
	}
}

func (r *doorRepo) AddApprovedUser(ctx context.Context, doorID, userID string) error {
	return r.v.write(ctx, func(d *data) error {
		door, ok := d.doors.get(doorID)
		if !ok {
			return fmt.Errorf("%w: puerta %s", domain.ErrNotFound, doorID)
		}
		if !slices.Contains(door.ApprovedUsers, userID) {
			door.ApprovedUsers = append(door.ApprovedUsers, userID)
		}
		return nil
	})
}

func (r *doorRepo) PullApprovedUser(ctx context.Context, doorID, userID string) error {
	return r.v.write(ctx, func(d *data) error {
		if door, ok := d.doors.get(doorID); ok {
			door.ApprovedUsers = slices.DeleteFunc(door.ApprovedUsers, func(id string) bool { return id == userID })
		}
		return nil
	})
}

type permissionRequestRepo struct{ v *view }

func (r *permissionRequestRepo) Create(ctx context.Context, p *entity.PermissionRequest) error {
	return r.v.write(ctx, func(d *data) error {
		d.permissions.put(p.ID, clonePermission(p))
		return nil
	})
}

func (r *permissionRequestRepo) GetByID(ctx context.Context, id string) (out *entity.PermissionRequest, err error) {
	err = r.v.read(ctx, func(d *data) error {
		if p, ok := d.permissions.get(id); ok {
			out = clonePermission(p)
		}
		return nil
	})
	return out, err
}

// GetByIDForUpdate equivale a GetByID: dentro de Run el Store ya es exclusivo.
func (r *permissionRequestRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.PermissionRequest, error) {
	return r.GetByID(ctx, id)
}

func (r *permissionRequestRepo) Update(ctx context.Context, p *entity.PermissionRequest) error {
	return r.v.write(ctx, func(d *data) error {
		if _, ok := d.permissions.get(p.ID); !ok {
			return fmt.Errorf("%w: solicitud de permiso %s", domain.ErrNotFound, p.ID)
		}
		d.permissions.put(p.ID, clonePermission(p))
		return nil
	})
}

func (r *permissionRequestRepo) Delete(ctx context.Context, id string) error {
	return r.v.write(ctx, func(d *data) error {
		d.permissions.del(id)
		return nil
	})
}

func (r *permissionRequestRepo) list(ctx context.Context, match func(*entity.PermissionRequest) bool) (out []*entity.PermissionRequest, err error) {
	err = r.v.read(ctx, func(d *data) error {
		for _, p := range collect(d.permissions, match) {
			out = append(out, clonePermission(p))
		}
		return nil
	})
	return out, err
}

func (r *permissionRequestRepo) ListByCompanyAndStatus(ctx context.Context, companyID, status string) ([]*entity.PermissionRequest, error) {
	return r.list(ctx, func(p *entity.PermissionRequest) bool { return p.CompanyID == companyID && p.Status == status })
}

func (r *permissionRequestRepo) ListByUser(ctx context.Context, userID string) ([]*entity.PermissionRequest, error) {
	return r.list(ctx, func(p *entity.PermissionRequest) bool { return p.UserID == userID })
}

func (r *permissionRequestRepo) ListByUserAndStatus(ctx context.Context, userID, status string) ([]*entity.PermissionRequest, error) {
	return r.list(ctx, func(p *entity.PermissionRequest) bool { return p.UserID == userID && p.Status == status })
}

type accessEventRepo struct{ v *view }

func (r *accessEventRepo) Create(ctx context.Context, ev *entity.AccessEvent) error {
	return r.v.write(ctx, func(d *data) error {
		d.accessEvents.put(ev.ID, cloneAccessEvent(ev))
		return nil
	})
}

func (r *accessEventRepo) list(ctx context.Context, limit int, match func(*entity.AccessEvent) bool) (out []*entity.AccessEvent, err error) {
	err = r.v.read(ctx, func(d *data) error {
		for _, ev := range collect(d.accessEvents, match) {
			out = append(out, cloneAccessEvent(ev))
		}
		return nil
	})
	slices.SortStableFunc(out, func(a, b *entity.AccessEvent) int { return b.EntryTime.Compare(a.EntryTime) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, err
}

func (r *accessEventRepo) ListByCompany(ctx context.Context, companyID string, limit int) ([]*entity.AccessEvent, error) {
	return r.list(ctx, limit, func(ev *entity.AccessEvent) bool { return ev.CompanyID == companyID })
}

func (r *accessEventRepo) ListRecent(ctx context.Context, limit int) ([]*entity.AccessEvent, error) {
	return r.list(ctx, limit, func(*entity.AccessEvent) bool { return true })
}
