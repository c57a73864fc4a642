package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/jhoicas/securepass-api/internal/domain"
	"github.com/jhoicas/securepass-api/internal/domain/entity"
)

type adminUserRepo struct{ v *view }

func (r *adminUserRepo) Create(ctx context.Context, a *entity.AdminUser) error {
	return r.v.write(ctx, func(d *data) error {
		if len(collect(d.admins, func(x *entity.AdminUser) bool { return x.Email == a.Email })) > 0 {
			return fmt.Errorf("%w: %s", domain.ErrEmailAlreadyExists, a.Email)
		}
		d.admins.put(a.ID, cloneAdmin(a))
		return nil
	})
}

func (r *adminUserRepo) GetByID(ctx context.Context, id string) (out *entity.AdminUser, err error) {
	err = r.v.read(ctx, func(d *data) error {
		if a, ok := d.admins.get(id); ok {
			out = cloneAdmin(a)
		}
		return nil
	})
	return out, err
}

func (r *adminUserRepo) GetByEmail(ctx context.Context, email string) (out *entity.AdminUser, err error) {
	err = r.v.read(ctx, func(d *data) error {
		if found := collect(d.admins, func(a *entity.AdminUser) bool { return a.Email == email }); len(found) > 0 {
			out = cloneAdmin(found[0])
		}
		return nil
	})
	return out, err
}

func (r *adminUserRepo) ListByIDs(ctx context.Context, ids []string) (out []*entity.AdminUser, err error) {
	err = r.v.read(ctx, func(d *data) error {
		for _, id := range ids {
			if a, ok := d.admins.get(id); ok {
				out = append(out, cloneAdmin(a))
			}
		}
		return nil
	})
	return out, err
}

func (r *adminUserRepo) CountByCompany(ctx context.Context, companyID string) (n int, err error) {
	err = r.v.read(ctx, func(d *data) error {
		n = len(collect(d.admins, func(a *entity.AdminUser) bool { return a.CompanyID == companyID }))
		return nil
	})
	return n, err
}

func (r *adminUserRepo) DeleteByCompany(ctx context.Context, companyID string) error {
	return r.v.write(ctx, func(d *data) error {
		for _, a := range collect(d.admins, func(a *entity.AdminUser) bool { return a.CompanyID == companyID }) {
			d.admins.del(a.ID)
		}
		return nil
	})
}

type userRepo struct{ v *view }

func (r *userRepo) Create(ctx context.Context, u *entity.User) error {
	return r.v.write(ctx, func(d *data) error {
		if err := uniqueUser(d, u); err != nil {
			return err
		}
		d.users.put(u.ID, cloneUser(u))
		return nil
	})
}

func uniqueUser(d *data, u *entity.User) error {
	for _, x := range d.users.rows {
		if x.ID == u.ID {
			continue
		}
		if x.Email == u.Email {
			return fmt.Errorf("%w: %s", domain.ErrEmailAlreadyExists, u.Email)
		}
		if x.UserID == u.UserID {
			return fmt.Errorf("%w: %s", domain.ErrUserIDAlreadyExists, u.UserID)
		}
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (out *entity.User, err error) {
	err = r.v.read(ctx, func(d *data) error {
		if u, ok := d.users.get(id); ok {
			out = cloneUser(u)
		}
		return nil
	})
	return out, err
}

// GetByIDForUpdate equivale a GetByID: dentro de Run el Store ya es exclusivo.
func (r *userRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.User, error) {
	return r.GetByID(ctx, id)
}

func (r *userRepo) find(ctx context.Context, match func(*entity.User) bool) (out *entity.User, err error) {
	err = r.v.read(ctx, func(d *data) error {
		if found := collect(d.users, match); len(found) > 0 {
			out = cloneUser(found[0])
		}
		return nil
	})
	return out, err
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.find(ctx, func(u *entity.User) bool { return u.Email == email })
}

func (r *userRepo) GetByUserID(ctx context.Context, userID string) (*entity.User, error) {
	return r.find(ctx, func(u *entity.User) bool { return u.UserID == userID })
}

// Update copia solo el perfil; doorAccess y pendingRequests del almacenado se conservan.
func (r *userRepo) Update(ctx context.Context, u *entity.User) error {
	return r.v.write(ctx, func(d *data) error {
		cur, ok := d.users.get(u.ID)
		if !ok {
			return fmt.Errorf("%w: usuario %s", domain.ErrNotFound, u.ID)
		}
		if err := uniqueUser(d, u); err != nil {
			return err
		}
		cur.FirstName = u.FirstName
		cur.LastName = u.LastName
		cur.Email = u.Email
		cur.PasswordHash = u.PasswordHash
		cur.UserID = u.UserID
		cur.ProfilePicture = u.ProfilePicture
		cur.AdminID = u.AdminID
		cur.UpdatedAt = u.UpdatedAt
		return nil
	})
}

func (r *userRepo) list(ctx context.Context, match func(*entity.User) bool) (out []*entity.User, err error) {
	err = r.v.read(ctx, func(d *data) error {
		for _, u := range collect(d.users, match) {
			out = append(out, cloneUser(u))
		}
		return nil
	})
	return out, err
}

func (r *userRepo) ListAll(ctx context.Context) ([]*entity.User, error) {
	return r.list(ctx, func(*entity.User) bool { return true })
}

func (r *userRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.User, error) {
	return r.list(ctx, func(u *entity.User) bool { return u.CompanyID == companyID })
}

func (r *userRepo) ListByAdmin(ctx context.Context, adminID string) ([]*entity.User, error) {
	return r.list(ctx, func(u *entity.User) bool { return u.AdminID == adminID })
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	return r.v.write(ctx, func(d *data) error {
		deleteUser(d, id)
		return nil
	})
}

// deleteUser borra el usuario y sus solicitudes de permiso.
func deleteUser(d *data, id string) {
	if !d.users.del(id) {
		return
	}
	for _, p := range collect(d.permissions, func(p *entity.PermissionRequest) bool { return p.UserID == id }) {
		d.permissions.del(p.ID)
	}
}

func (r *userRepo) DeleteByCompany(ctx context.Context, companyID string) error {
	return r.v.write(ctx, func(d *data) error {
		for _, u := range collect(d.users, func(u *entity.User) bool { return u.CompanyID == companyID }) {
			deleteUser(d, u.ID)
		}
		return nil
	})
}

func (r *userRepo) PullPendingRequest(ctx context.Context, userID, requestID string) error {
	return r.v.write(ctx, func(d *data) error {
		if u, ok := d.users.get(userID); ok {
			u.PendingRequests = slices.DeleteFunc(u.PendingRequests, func(id string) bool { return id == requestID })
		}
		return nil
	})
}

func (r *userRepo) PushPendingRequest(ctx context.Context, userID, requestID string) error {
	return r.v.write(ctx, func(d *data) error {
		if u, ok := d.users.get(userID); ok && !slices.Contains(u.PendingRequests, requestID) {
			u.PendingRequests = append(u.PendingRequests, requestID)
		}
		return nil
	})
}

func (r *userRepo) AddDoorAccess(ctx context.Context, userID string, grant entity.DoorAccess) error {
	return r.v.write(ctx, func(d *data) error {
		u, ok := d.users.get(userID)
		if !ok {
			return fmt.Errorf("%w: usuario %s", domain.ErrNotFound, userID)
		}
		u.DoorAccess = append(u.DoorAccess, grant)
		return nil
	})
}

func (r *userRepo) RemoveDoorAccess(ctx context.Context, userID, grantID string) error {
	return r.v.write(ctx, func(d *data) error {
		if u, ok := d.users.get(userID); ok {
			u.DoorAccess = slices.DeleteFunc(u.DoorAccess, func(da entity.DoorAccess) bool { return da.ID == grantID })
		}
		return nil
	})
}
