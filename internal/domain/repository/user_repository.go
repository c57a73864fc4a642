package repository

import (
	"context"

	"github.com/jhoicas/securepass-api/internal/domain/entity"
)

// AdminUserRepository define el puerto de persistencia para AdminUser.
type AdminUserRepository interface {
	Create(ctx context.Context, admin *entity.AdminUser) error
	GetByID(ctx context.Context, id string) (*entity.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*entity.AdminUser, error)
	ListByIDs(ctx context.Context, ids []string) ([]*entity.AdminUser, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)
	DeleteByCompany(ctx context.Context, companyID string) error
}

// UserRepository define el puerto de persistencia para User.
// Update persiste solo el perfil; DoorAccess y PendingRequests cambian con
// operaciones puntuales para no pisar concesiones escritas en paralelo.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByIDForUpdate bloquea la fila hasta el fin de la transacción en curso.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUserID(ctx context.Context, userID string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	ListAll(ctx context.Context) ([]*entity.User, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.User, error)
	ListByAdmin(ctx context.Context, adminID string) ([]*entity.User, error)
	Delete(ctx context.Context, id string) error
	DeleteByCompany(ctx context.Context, companyID string) error
	// PullPendingRequest quita requestID de pendingRequests; no-op si no está.
	PullPendingRequest(ctx context.Context, userID, requestID string) error
	// PushPendingRequest añade requestID a pendingRequests si aún no está.
	PushPendingRequest(ctx context.Context, userID, requestID string) error
	// AddDoorAccess añade la concesión al final de doorAccess.
	AddDoorAccess(ctx context.Context, userID string, grant entity.DoorAccess) error
	// RemoveDoorAccess quita la concesión; no-op si no existe.
	RemoveDoorAccess(ctx context.Context, userID, grantID string) error
}
