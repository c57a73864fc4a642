package repository

import (
	"context"
	"time"

	"github.com/jhoicas/securepass-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure. GetBy* devuelve (nil, nil) si no existe.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByNameAndAddress(ctx context.Context, name, address string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
	Delete(ctx context.Context, id string) error
	// SetPaymentFlag marca el flag payment; found=false si la empresa no existe.
	SetPaymentFlag(ctx context.Context, id string, paid bool) (found bool, err error)
	// DeactivateExpired pasa a inactive las empresas activas cuyo vencimiento ya pasó.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

// CompanyRequestRepository define el puerto de persistencia para CompanyRequest.
type CompanyRequestRepository interface {
	Create(ctx context.Context, req *entity.CompanyRequest) error
	GetByID(ctx context.Context, id string) (*entity.CompanyRequest, error)
	// GetByIDForUpdate bloquea la solicitud hasta el fin de la transacción en curso.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.CompanyRequest, error)
	Update(ctx context.Context, req *entity.CompanyRequest) error
	List(ctx context.Context) ([]*entity.CompanyRequest, error)
	Delete(ctx context.Context, id string) error
	SetPaymentFlag(ctx context.Context, id string, paid bool) error
}

// TrialRequestRepository define el puerto de persistencia para TrialRequest.
type TrialRequestRepository interface {
	Create(ctx context.Context, req *entity.TrialRequest) error
	List(ctx context.Context, limit, offset int) ([]*entity.TrialRequest, error)
	Count(ctx context.Context) (int, error)
}
