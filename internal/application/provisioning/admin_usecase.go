package provisioning

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/securepass-api/internal/application/auth"
	"github.com/jhoicas/securepass-api/internal/application/dto"
	"github.com/jhoicas/securepass-api/internal/application/ports"
	"github.com/jhoicas/securepass-api/internal/domain"
	"github.com/jhoicas/securepass-api/internal/domain/entity"
	"github.com/jhoicas/securepass-api/internal/domain/repository"
	"github.com/jhoicas/securepass-api/internal/domain/subscription"
)

// AdminUseCase alta directa de administradores por el SuperAdmin.
type AdminUseCase struct {
	tx      ports.TxRunner
	effects ports.Effects
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(tx ports.TxRunner, effects ports.Effects) *AdminUseCase {
	return &AdminUseCase{tx: tx, effects: effects}
}

// CreateAdminUser crea un Admin para la empresa respetando el cupo del paquete Starter.
func (uc *AdminUseCase) CreateAdminUser(ctx context.Context, in dto.CreateAdminInput) (*dto.AdminResponse, error) {
	email := auth.NormalizeEmail(in.Email)
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" || email == "" || in.CompanyID == "" {
		return nil, fmt.Errorf("%w: firstName, lastName, email y companyId son obligatorios", domain.ErrValidation)
	}
	if len(in.Password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: la contraseña debe tener al menos %d caracteres", domain.ErrValidation, MinPasswordLength)
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	var admin *entity.AdminUser
	err = uc.tx.Run(ctx, func(repos repository.Repositories) error {
		company, err := repos.Companies.GetByID(ctx, in.CompanyID)
		if err != nil {
			return err
		}
		if company == nil {
			return fmt.Errorf("%w: empresa %s", domain.ErrNotFound, in.CompanyID)
		}
		if limit := subscription.AdminSeatLimit(company.Package); limit > 0 {
			n, err := repos.AdminUsers.CountByCompany(ctx, company.ID)
			if err != nil {
				return err
			}
			if n >= limit {
				return fmt.Errorf("%w: el paquete %s permite como máximo %d administradores", domain.ErrCapacity, company.Package, limit)
			}
		}
		if err := ensureEmailFree(ctx, repos, email, ""); err != nil {
			return err
		}

		now := time.Now()
		admin = &entity.AdminUser{
			ID:           uuid.New().String(),
			FirstName:    strings.TrimSpace(in.FirstName),
			LastName:     strings.TrimSpace(in.LastName),
			Email:        email,
			PasswordHash: hash,
			Role:         entity.RoleAdmin,
			CompanyID:    company.ID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := repos.AdminUsers.Create(ctx, admin); err != nil {
			return err
		}
		company.Admins = append(company.Admins, admin.ID)
		company.UpdatedAt = now
		return repos.Companies.Update(ctx, company)
	})
	if err != nil {
		return nil, err
	}

	uc.effects.Registration(ctx, ports.RegistrationNotice{
		Email:     admin.Email,
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		Password:  in.Password,
		Audience:  ports.AudienceAdmin,
	})
	out := dto.FromAdmin(admin)
	return &out, nil
}
