package tenancy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/securepass-api/internal/application/dto"
	"github.com/jhoicas/securepass-api/internal/application/ports"
	"github.com/jhoicas/securepass-api/internal/domain"
	"github.com/jhoicas/securepass-api/internal/domain/entity"
	"github.com/jhoicas/securepass-api/internal/domain/repository"
	"github.com/jhoicas/securepass-api/internal/domain/subscription"
)

// CompanyUseCase administración de empresas por el SuperAdmin.
type CompanyUseCase struct {
	repos repository.Repositories
	tx    ports.TxRunner
	log   zerolog.Logger
	now   func() time.Time
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repos repository.Repositories, tx ports.TxRunner, log zerolog.Logger) *CompanyUseCase {
	return &CompanyUseCase{repos: repos, tx: tx, log: log, now: time.Now}
}

// Create da de alta una empresa activa con el vencimiento del paquete.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	name := strings.TrimSpace(in.Name)
	address := strings.TrimSpace(in.Address)
	if name == "" || address == "" || in.Package == "" {
		return nil, fmt.Errorf("%w: name, address y package son obligatorios", domain.ErrValidation)
	}
	now := uc.now()
	expiredDate, ok := subscription.ExpirationFrom(in.Package, now)
	if !ok {
		return nil, fmt.Errorf("%w: paquete inválido %q", domain.ErrValidation, in.Package)
	}
	company := &entity.Company{
		ID:          uuid.New().String(),
		Name:        name,
		Address:     address,
		Status:      entity.CompanyStatusActive,
		Package:     in.Package,
		ExpiredDate: &expiredDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repos.Companies.Create(ctx, company); err != nil {
		return nil, err
	}
	out := dto.FromCompany(company, nil)
	return &out, nil
}

// List devuelve las empresas paginadas; withAdmins incluye los administradores (sin password).
func (uc *CompanyUseCase) List(ctx context.Context, page dto.PageRequest, withAdmins bool) ([]dto.CompanyResponse, error) {
	page.DefaultPage()
	companies, err := uc.repos.Companies.List(ctx, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		var admins []*entity.AdminUser
		if withAdmins && len(c.Admins) > 0 {
			if admins, err = uc.repos.AdminUsers.ListByIDs(ctx, c.Admins); err != nil {
				return nil, err
			}
		}
		out = append(out, dto.FromCompany(c, admins))
	}
	return out, nil
}

// Get devuelve la empresa con sus administradores.
func (uc *CompanyUseCase) Get(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.load(ctx, uc.repos, id)
	if err != nil {
		return nil, err
	}
	admins, err := uc.repos.AdminUsers.ListByIDs(ctx, company.Admins)
	if err != nil {
		return nil, err
	}
	out := dto.FromCompany(company, admins)
	return &out, nil
}

// Update edita nombre y dirección.
func (uc *CompanyUseCase) Update(ctx context.Context, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	name := strings.TrimSpace(in.Name)
	address := strings.TrimSpace(in.Address)
	if name == "" || address == "" {
		return nil, fmt.Errorf("%w: name y address son obligatorios", domain.ErrValidation)
	}
	company, err := uc.load(ctx, uc.repos, id)
	if err != nil {
		return nil, err
	}
	company.Name = name
	company.Address = address
	company.UpdatedAt = uc.now()
	if err := uc.repos.Companies.Update(ctx, company); err != nil {
		return nil, err
	}
	out := dto.FromCompany(company, nil)
	return &out, nil
}

// Delete elimina la empresa y en cascada sus AdminUsers, Users y Doors.
func (uc *CompanyUseCase) Delete(ctx context.Context, actorID, id string) error {
	return uc.tx.Run(ctx, func(repos repository.Repositories) error {
		company, err := uc.load(ctx, repos, id)
		if err != nil {
			return err
		}
		if err := repos.Users.DeleteByCompany(ctx, id); err != nil {
			return err
		}
		if err := repos.Doors.DeleteByCompany(ctx, id); err != nil {
			return err
		}
		if err := repos.AdminUsers.DeleteByCompany(ctx, id); err != nil {
			return err
		}
		if err := repos.Companies.Delete(ctx, id); err != nil {
			return err
		}
		return repos.Audit.Append(ctx, &entity.AuditEvent{
			ID:        uuid.New().String(),
			ActorID:   actorID,
			CompanyID: id,
			Action:    entity.AuditCompanyDeleted,
			TargetID:  id,
			Metadata:  map[string]any{"name": company.Name},
			CreatedAt: uc.now(),
		})
	})
}

// AddLocation añade una ubicación a la empresa.
func (uc *CompanyUseCase) AddLocation(ctx context.Context, in dto.LocationRequest) (*dto.CompanyResponse, error) {
	location := strings.TrimSpace(in.Location)
	if location == "" {
		return nil, fmt.Errorf("%w: location es obligatorio", domain.ErrValidation)
	}
	company, err := uc.load(ctx, uc.repos, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company.HasLocation(location) {
		return nil, fmt.Errorf("%w: la ubicación %q ya existe", domain.ErrDuplicate, location)
	}
	company.Locations = append(company.Locations, location)
	return uc.save(ctx, company)
}

// RemoveLocation quita una ubicación de la empresa.
func (uc *CompanyUseCase) RemoveLocation(ctx context.Context, in dto.LocationRequest) (*dto.CompanyResponse, error) {
	company, err := uc.load(ctx, uc.repos, in.CompanyID)
	if err != nil {
		return nil, err
	}
	company.RemoveLocation(strings.TrimSpace(in.Location))
	return uc.save(ctx, company)
}

// ToggleStatus alterna active/inactive.
func (uc *CompanyUseCase) ToggleStatus(ctx context.Context, id string) (*dto.CompanyStatusResponse, error) {
	company, err := uc.load(ctx, uc.repos, id)
	if err != nil {
		return nil, err
	}
	company.ToggleStatus()
	if _, err := uc.save(ctx, company); err != nil {
		return nil, err
	}
	out := &dto.CompanyStatusResponse{Message: "Estado de la empresa actualizado a " + company.Status}
	out.Company.ID = company.ID
	out.Company.Name = company.Name
	out.Company.Status = company.Status
	return out, nil
}

// RenewExpiration extiende el periodo un ciclo del paquete desde el vencimiento actual.
// Sin vencimiento previo se toma la fecha actual como base.
func (uc *CompanyUseCase) RenewExpiration(ctx context.Context, id string) (*dto.ExpirationResponse, error) {
	company, err := uc.load(ctx, uc.repos, id)
	if err != nil {
		return nil, err
	}
	base := uc.now()
	if company.ExpiredDate != nil {
		base = *company.ExpiredDate
	}
	next, ok := subscription.ExpirationFrom(company.Package, base)
	if !ok {
		return nil, fmt.Errorf("%w: paquete inválido %q", domain.ErrValidation, company.Package)
	}
	company.ExpiredDate = &next
	if _, err := uc.save(ctx, company); err != nil {
		return nil, err
	}
	return &dto.ExpirationResponse{Message: "Fecha de vencimiento actualizada", ExpiredDate: next}, nil
}

// CheckNameAddressUnique informa si no hay otra empresa (distinta de excludeID) con ese nombre y dirección.
func (uc *CompanyUseCase) CheckNameAddressUnique(ctx context.Context, name, address, excludeID string) (bool, error) {
	company, err := uc.repos.Companies.GetByNameAndAddress(ctx, strings.TrimSpace(name), strings.TrimSpace(address))
	if err != nil {
		return false, err
	}
	return company == nil || company.ID == excludeID, nil
}

func (uc *CompanyUseCase) save(ctx context.Context, company *entity.Company) (*dto.CompanyResponse, error) {
	company.UpdatedAt = uc.now()
	if err := uc.repos.Companies.Update(ctx, company); err != nil {
		return nil, err
	}
	out := dto.FromCompany(company, nil)
	return &out, nil
}

func (uc *CompanyUseCase) load(ctx context.Context, repos repository.Repositories, id string) (*entity.Company, error) {
	company, err := repos.Companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: empresa %s", domain.ErrNotFound, id)
	}
	return company, nil
}
