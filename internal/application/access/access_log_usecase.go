package access

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/securepass-api/internal/application/dto"
	"github.com/jhoicas/securepass-api/internal/application/ports"
	"github.com/jhoicas/securepass-api/internal/domain"
	"github.com/jhoicas/securepass-api/internal/domain/entity"
	"github.com/jhoicas/securepass-api/internal/domain/repository"
)

// Límites de los listados de accesos recientes.
const (
	RecentCompanyLimit = 50
	RecentGlobalLimit  = 100
)

// AccessLogUseCase historial de entradas/salidas por las puertas.
type AccessLogUseCase struct {
	repos    repository.Repositories
	renderer ports.AccessReportRenderer
}

// NewAccessLogUseCase construye el caso de uso. renderer puede ser nil si no se ofrecen informes.
func NewAccessLogUseCase(repos repository.Repositories, renderer ports.AccessReportRenderer) *AccessLogUseCase {
	return &AccessLogUseCase{repos: repos, renderer: renderer}
}

// Record registra un evento de acceso. La puerta debe ser de la empresa del usuario y el usuario
// debe tener una concesión para esa puerta en la fecha de entrada.
func (uc *AccessLogUseCase) Record(ctx context.Context, caller dto.Principal, in dto.RecordAccessInput) (*dto.AccessEventResponse, error) {
	userID := in.UserID
	if caller.Role == entity.RoleUser {
		if userID == "" {
			userID = caller.ID
		}
		if userID != caller.ID {
			return nil, domain.ErrForbidden
		}
	}
	if userID == "" || in.DoorID == "" || in.EntryTime.IsZero() {
		return nil, fmt.Errorf("%w: user, door y entryTime son obligatorios", domain.ErrValidation)
	}
	if in.ExitTime != nil && in.ExitTime.Before(in.EntryTime) {
		return nil, fmt.Errorf("%w: exitTime anterior a entryTime", domain.ErrValidation)
	}

	user, door, err := loadPair(ctx, uc.repos, userID, in.DoorID)
	if err != nil {
		return nil, err
	}
	if !caller.CanAccessCompany(user.CompanyID) {
		return nil, domain.ErrTenancyMismatch
	}
	if !user.HasAccess(door.ID, in.EntryTime) {
		return nil, fmt.Errorf("%w: el usuario no tiene acceso a la puerta %s en esa fecha", domain.ErrForbidden, door.DoorCode)
	}

	ev := &entity.AccessEvent{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		CompanyID: user.CompanyID,
		DoorID:    door.ID,
		DoorCode:  door.DoorCode,
		RoomName:  door.RoomName,
		Location:  door.Location,
		EntryTime: in.EntryTime,
		ExitTime:  in.ExitTime,
		CreatedAt: time.Now(),
	}
	if err := uc.repos.AccessEvents.Create(ctx, ev); err != nil {
		return nil, err
	}
	out := dto.FromAccessEvent(ev)
	return &out, nil
}

// RecentForCompany últimos accesos de la empresa del llamador.
func (uc *AccessLogUseCase) RecentForCompany(ctx context.Context, caller dto.Principal) ([]dto.AccessEventResponse, error) {
	events, err := uc.repos.AccessEvents.ListByCompany(ctx, caller.CompanyID, RecentCompanyLimit)
	if err != nil {
		return nil, err
	}
	return toEventResponses(events), nil
}

// RecentGlobal últimos accesos de todas las empresas (SuperAdmin).
func (uc *AccessLogUseCase) RecentGlobal(ctx context.Context) ([]dto.AccessEventResponse, error) {
	events, err := uc.repos.AccessEvents.ListRecent(ctx, RecentGlobalLimit)
	if err != nil {
		return nil, err
	}
	return toEventResponses(events), nil
}

// Report genera el informe PDF con los accesos recientes de la empresa.
func (uc *AccessLogUseCase) Report(ctx context.Context, companyID string) ([]byte, error) {
	if uc.renderer == nil {
		return nil, fmt.Errorf("access: generador de informes no configurado")
	}
	company, err := uc.repos.Companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: empresa %s", domain.ErrNotFound, companyID)
	}
	events, err := uc.repos.AccessEvents.ListByCompany(ctx, companyID, RecentGlobalLimit)
	if err != nil {
		return nil, err
	}
	return uc.renderer.RenderAccessReport(company, events)
}

func toEventResponses(events []*entity.AccessEvent) []dto.AccessEventResponse {
	out := make([]dto.AccessEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, dto.FromAccessEvent(e))
	}
	return out
}
