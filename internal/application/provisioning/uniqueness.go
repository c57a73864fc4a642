package provisioning

import (
	"context"
	"fmt"

	"github.com/jhoicas/securepass-api/internal/domain"
	"github.com/jhoicas/securepass-api/internal/domain/repository"
)

// MinPasswordLength longitud mínima de contraseña.
const MinPasswordLength = 6

// emailOwner busca el email en User y AdminUser. Devuelve los IDs del dueño (ID interno y, para User,
// su userId de negocio) o vacíos si el email está libre.
func emailOwner(ctx context.Context, repos repository.Repositories, email string) (ids []string, err error) {
	u, err := repos.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return []string{u.ID, u.UserID}, nil
	}
	a, err := repos.AdminUsers.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if a != nil {
		return []string{a.ID}, nil
	}
	return nil, nil
}

// isEmailUnique informa si el email está libre. excludeID (ID interno o userId) excluye el registro en edición.
func isEmailUnique(ctx context.Context, repos repository.Repositories, email, excludeID string) (bool, error) {
	owner, err := emailOwner(ctx, repos, email)
	if err != nil {
		return false, err
	}
	if owner == nil {
		return true, nil
	}
	if excludeID == "" {
		return false, nil
	}
	for _, id := range owner {
		if id == excludeID {
			return true, nil
		}
	}
	return false, nil
}

func ensureEmailFree(ctx context.Context, repos repository.Repositories, email, excludeID string) error {
	ok, err := isEmailUnique(ctx, repos, email, excludeID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrEmailAlreadyExists, email)
	}
	return nil
}
