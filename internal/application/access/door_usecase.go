package access

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/securepass-api/internal/application/dto"
	"github.com/jhoicas/securepass-api/internal/domain"
	"github.com/jhoicas/securepass-api/internal/domain/entity"
	"github.com/jhoicas/securepass-api/internal/domain/repository"
)

// DoorUseCase gestión de puertas por los Admin de la empresa.
type DoorUseCase struct {
	doors     repository.DoorRepository
	companies repository.CompanyRepository
}

// NewDoorUseCase construye el caso de uso.
func NewDoorUseCase(repos repository.Repositories) *DoorUseCase {
	return &DoorUseCase{doors: repos.Doors, companies: repos.Companies}
}

// Create registra una puerta en la empresa del Admin. La ubicación debe existir en la empresa
// cuando la empresa tiene ubicaciones registradas.
func (uc *DoorUseCase) Create(ctx context.Context, caller dto.Principal, in dto.CreateDoorInput) (*dto.DoorResponse, error) {
	code := strings.TrimSpace(in.DoorCode)
	room := strings.TrimSpace(in.RoomName)
	location := strings.TrimSpace(in.Location)
	if code == "" || room == "" || location == "" {
		return nil, fmt.Errorf("%w: doorCode, roomName y location son obligatorios", domain.ErrValidation)
	}
	if caller.CompanyID == "" {
		return nil, fmt.Errorf("%w: el administrador no pertenece a una empresa", domain.ErrForbidden)
	}
	company, err := uc.companies.GetByID(ctx, caller.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: empresa %s", domain.ErrNotFound, caller.CompanyID)
	}
	if len(company.Locations) > 0 && !company.HasLocation(location) {
		return nil, fmt.Errorf("%w: la ubicación %q no pertenece a la empresa", domain.ErrValidation, location)
	}

	now := time.Now()
	door := &entity.Door{
		ID:        uuid.New().String(),
		DoorCode:  code,
		RoomName:  room,
		Location:  location,
		CompanyID: company.ID,
		AdminID:   caller.ID,
		Status:    entity.DoorStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.doors.Create(ctx, door); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("%w: el código de puerta %s ya existe", domain.ErrDuplicate, code)
		}
		return nil, err
	}
	out := dto.FromDoor(door)
	return &out, nil
}

// List devuelve las puertas de la empresa del llamador.
func (uc *DoorUseCase) List(ctx context.Context, caller dto.Principal) ([]dto.DoorResponse, error) {
	doors, err := uc.doors.ListByCompany(ctx, caller.CompanyID)
	if err != nil {
		return nil, err
	}
	return toDoorResponses(doors), nil
}

// ListByAdmin devuelve las puertas registradas por un administrador.
func (uc *DoorUseCase) ListByAdmin(ctx context.Context, adminID string) ([]dto.DoorResponse, error) {
	doors, err := uc.doors.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}
	return toDoorResponses(doors), nil
}

// Get devuelve una puerta de la empresa del llamador.
func (uc *DoorUseCase) Get(ctx context.Context, caller dto.Principal, id string) (*dto.DoorResponse, error) {
	door, err := uc.load(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromDoor(door)
	return &out, nil
}

// Delete elimina una puerta de la empresa del llamador.
func (uc *DoorUseCase) Delete(ctx context.Context, caller dto.Principal, id string) error {
	if _, err := uc.load(ctx, caller, id); err != nil {
		return err
	}
	return uc.doors.Delete(ctx, id)
}

func (uc *DoorUseCase) load(ctx context.Context, caller dto.Principal, id string) (*entity.Door, error) {
	door, err := uc.doors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if door == nil {
		return nil, fmt.Errorf("%w: puerta %s", domain.ErrNotFound, id)
	}
	if !caller.CanAccessCompany(door.CompanyID) {
		return nil, domain.ErrTenancyMismatch
	}
	return door, nil
}

func toDoorResponses(doors []*entity.Door) []dto.DoorResponse {
	out := make([]dto.DoorResponse, 0, len(doors))
	for _, d := range doors {
		out = append(out, dto.FromDoor(d))
	}
	return out
}
