package repository

import (
	"context"

	"github.com/jhoicas/securepass-api/internal/domain/entity"
)

// DoorRepository define el puerto de persistencia para Door.
type DoorRepository interface {
	Create(ctx context.Context, door *entity.Door) error
	GetByID(ctx context.Context, id string) (*entity.Door, error)
	ListAll(ctx context.Context) ([]*entity.Door, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Door, error)
	ListByAdmin(ctx context.Context, adminID string) ([]*entity.Door, error)
	Delete(ctx context.Context, id string) error
	DeleteByCompany(ctx context.Context, companyID string) error
	AddApprovedUser(ctx context.Context, doorID, userID string) error
	PullApprovedUser(ctx context.Context, doorID, userID string) error
}

// PermissionRequestRepository define el puerto de persistencia para PermissionRequest.
// Los listados van ordenados del más reciente al más antiguo.
type PermissionRequestRepository interface {
	Create(ctx context.Context, req *entity.PermissionRequest) error
	GetByID(ctx context.Context, id string) (*entity.PermissionRequest, error)
	// GetByIDForUpdate bloquea la solicitud hasta el fin de la transacción en curso.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.PermissionRequest, error)
	Update(ctx context.Context, req *entity.PermissionRequest) error
	Delete(ctx context.Context, id string) error
	ListByCompanyAndStatus(ctx context.Context, companyID, status string) ([]*entity.PermissionRequest, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.PermissionRequest, error)
	ListByUserAndStatus(ctx context.Context, userID, status string) ([]*entity.PermissionRequest, error)
}

// AccessEventRepository define el puerto de persistencia para el historial de accesos.
type AccessEventRepository interface {
	Create(ctx context.Context, ev *entity.AccessEvent) error
	ListByCompany(ctx context.Context, companyID string, limit int) ([]*entity.AccessEvent, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.AccessEvent, error)
}
