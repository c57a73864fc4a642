package access

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
)

// PermissionUseCase motor de solicitudes de permiso: Pending -> {Approved, Rejected}.
// Cada transición que toca PermissionRequest, User y Door se aplica en una sola transacción.
type PermissionUseCase struct {
	repos   repository.Repositories
	tx      ports.TxRunner
	effects ports.Effects
	log     zerolog.Logger
	now     func() time.Time
}

// NewPermissionUseCase construye el caso de uso.
func NewPermissionUseCase(repos repository.Repositories, tx ports.TxRunner, effects ports.Effects, log zerolog.Logger) *PermissionUseCase {
	return &PermissionUseCase{repos: repos, tx: tx, effects: effects, log: log, now: time.Now}
}

type slot struct {
	date    time.Time
	inTime  string
	outTime string
}

// Make crea una solicitud ya aprobada (autoservicio) y concede el acceso en la misma operación.
func (uc *PermissionUseCase) Make(ctx context.Context, caller dto.Principal, in dto.MakePermissionInput) (*dto.PermissionSummaryResponse, error) {
	userID := in.UserID
	if caller.Role == entity.RoleUser {
		if userID == "" {
			userID = caller.ID
		}
		if userID != caller.ID {
			return nil, domain.ErrForbidden
		}
	}
	if userID == "" || in.DoorID == "" {
		return nil, fmt.Errorf("%w: user y door son obligatorios", domain.ErrValidation)
	}
	s, err := parseSlot(in.Date, in.InTime, in.OutTime)
	if err != nil {
		return nil, err
	}

	var (
		req  *entity.PermissionRequest
		door *entity.Door
		user *entity.User
	)
	err = uc.tx.Run(ctx, func(repos repository.Repositories) error {
		if user, door, err = loadPair(ctx, repos, userID, in.DoorID); err != nil {
			return err
		}
		if !caller.CanAccessCompany(user.CompanyID) {
			return domain.ErrTenancyMismatch
		}
		now := uc.now()
		req = newRequest(user, door, s, in.Message, entity.RequestStatusApproved, now)
		if err := repos.PermissionRequests.Create(ctx, req); err != nil {
			return err
		}
		if err := repos.Users.PushPendingRequest(ctx, user.ID, req.ID); err != nil {
			return err
		}
		if err := addGrant(ctx, repos, user, door, req); err != nil {
			return err
		}
		user.PendingRequests = append(user.PendingRequests, req.ID)
		return appendAudit(ctx, repos, caller.ID, req, entity.AuditPermissionAutoApproved, now)
	})
	if err != nil {
		return nil, err
	}

	uc.granted(ctx, user, door, req)
	return &dto.PermissionSummaryResponse{
		ID:       req.ID,
		DoorCode: door.DoorCode,
		RoomName: door.RoomName,
		Location: door.Location,
		Date:     req.Date,
		InTime:   req.InTime,
		OutTime:  req.OutTime,
		Message:  req.Message,
		Status:   req.Status,
	}, nil
}

// Create registra una solicitud Pending a la espera de revisión del Admin.
func (uc *PermissionUseCase) Create(ctx context.Context, caller dto.Principal, in dto.CreatePermissionInput) (*dto.PermissionRequestResponse, error) {
	userID := in.UserID
	if caller.Role == entity.RoleUser {
		if userID == "" {
			userID = caller.ID
		}
		if userID != caller.ID {
			return nil, domain.ErrForbidden
		}
	}
	if userID == "" || in.DoorID == "" {
		return nil, fmt.Errorf("%w: userId y doorId son obligatorios", domain.ErrValidation)
	}
	s, err := parseSlot(in.Date, in.InTime, in.OutTime)
	if err != nil {
		return nil, err
	}

	var req *entity.PermissionRequest
	err = uc.tx.Run(ctx, func(repos repository.Repositories) error {
		user, door, err := loadPair(ctx, repos, userID, in.DoorID)
		if err != nil {
			return err
		}
		if !caller.CanAccessCompany(user.CompanyID) {
			return domain.ErrTenancyMismatch
		}
		now := uc.now()
		req = newRequest(user, door, s, in.Message, entity.RequestStatusPending, now)
		if err := repos.PermissionRequests.Create(ctx, req); err != nil {
			return err
		}
		return repos.Users.PushPendingRequest(ctx, user.ID, req.ID)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromPermissionRequest(req)
	return &out, nil
}

// Approve pasa Pending -> Approved: añade la concesión al usuario, la quita de pendientes
// y registra al usuario en approvedUsers de la puerta.
func (uc *PermissionUseCase) Approve(ctx context.Context, caller dto.Principal, id string) (*dto.PermissionRequestResponse, error) {
	var (
		req  *entity.PermissionRequest
		door *entity.Door
		user *entity.User
	)
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		var err error
		if req, err = loadRequest(ctx, repos, caller, id); err != nil {
			return err
		}
		if !req.IsPending() {
			return fmt.Errorf("%w: estado actual %s", domain.ErrRequestNotPending, req.Status)
		}
		if user, door, err = loadPair(ctx, repos, req.UserID, req.DoorID); err != nil {
			return err
		}

		now := uc.now()
		req.Status = entity.RequestStatusApproved
		req.UpdatedAt = now
		if err := repos.PermissionRequests.Update(ctx, req); err != nil {
			return err
		}
		if err := repos.Users.PullPendingRequest(ctx, user.ID, req.ID); err != nil {
			return err
		}
		if err := addGrant(ctx, repos, user, door, req); err != nil {
			return err
		}
		user.PendingRequests = without(user.PendingRequests, req.ID)
		return appendAudit(ctx, repos, caller.ID, req, entity.AuditPermissionApproved, now)
	})
	if err != nil {
		return nil, err
	}

	uc.granted(ctx, user, door, req)
	out := dto.FromPermissionRequest(req)
	return &out, nil
}

// Reject pasa Pending -> Rejected y saca la solicitud de pendientes del usuario.
// Rechazar una solicitud ya rechazada no cambia nada; una aprobada no se puede rechazar.
func (uc *PermissionUseCase) Reject(ctx context.Context, caller dto.Principal, id string) (*dto.PermissionRequestResponse, error) {
	var (
		req     *entity.PermissionRequest
		changed bool
	)
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		var err error
		if req, err = loadRequest(ctx, repos, caller, id); err != nil {
			return err
		}
		switch req.Status {
		case entity.RequestStatusRejected:
			return repos.Users.PullPendingRequest(ctx, req.UserID, req.ID)
		case entity.RequestStatusApproved:
			return fmt.Errorf("%w: estado actual %s", domain.ErrRequestNotPending, req.Status)
		}

		now := uc.now()
		req.Status = entity.RequestStatusRejected
		req.UpdatedAt = now
		if err := repos.PermissionRequests.Update(ctx, req); err != nil {
			return err
		}
		if err := repos.Users.PullPendingRequest(ctx, req.UserID, req.ID); err != nil {
			return err
		}
		changed = true
		return appendAudit(ctx, repos, caller.ID, req, entity.AuditPermissionRejected, now)
	})
	if err != nil {
		return nil, err
	}

	if changed {
		uc.effects.Publish(ctx, ports.DomainEvent{Name: ports.EventPermissionRejected, CompanyID: req.CompanyID, SubjectID: req.ID})
	}
	out := dto.FromPermissionRequest(req)
	return &out, nil
}

// RemoveDoorAccess revoca una concesión del usuario y borra la solicitud que la originó.
// El usuario sale de approvedUsers de la puerta cuando ya no le queda ninguna concesión para ella.
func (uc *PermissionUseCase) RemoveDoorAccess(ctx context.Context, caller dto.Principal, userID, doorAccessID string) (*dto.UserResponse, error) {
	var user *entity.User
	var grant entity.DoorAccess
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		var err error
		if user, err = repos.Users.GetByIDForUpdate(ctx, userID); err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("%w: usuario %s", domain.ErrNotFound, userID)
		}
		if !caller.CanAccessCompany(user.CompanyID) {
			return domain.ErrTenancyMismatch
		}
		var found bool
		if grant, found = user.FindDoorAccess(doorAccessID); !found {
			return fmt.Errorf("%w: concesión %s", domain.ErrNotFound, doorAccessID)
		}

		now := uc.now()
		kept := user.DoorAccess[:0]
		stillGranted := false
		for _, da := range user.DoorAccess {
			if da.ID == doorAccessID {
				continue
			}
			if da.DoorID == grant.DoorID {
				stillGranted = true
			}
			kept = append(kept, da)
		}
		user.DoorAccess = kept
		if err := repos.Users.RemoveDoorAccess(ctx, user.ID, doorAccessID); err != nil {
			return err
		}
		if grant.RequestID != "" {
			user.PendingRequests = without(user.PendingRequests, grant.RequestID)
			if err := repos.Users.PullPendingRequest(ctx, user.ID, grant.RequestID); err != nil {
				return err
			}
		}
		if !stillGranted {
			if err := repos.Doors.PullApprovedUser(ctx, grant.DoorID, user.ID); err != nil {
				return err
			}
		}
		if grant.RequestID != "" {
			if err := repos.PermissionRequests.Delete(ctx, grant.RequestID); err != nil {
				return err
			}
		}
		return repos.Audit.Append(ctx, &entity.AuditEvent{
			ID:        uuid.New().String(),
			ActorID:   caller.ID,
			CompanyID: user.CompanyID,
			Action:    entity.AuditDoorAccessRemoved,
			TargetID:  doorAccessID,
			Metadata:  map[string]any{"user_id": user.ID, "door_id": grant.DoorID, "request_id": grant.RequestID},
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	uc.effects.Publish(ctx, ports.DomainEvent{
		Name:      ports.EventDoorAccessRevoked,
		CompanyID: user.CompanyID,
		SubjectID: doorAccessID,
		Data:      map[string]any{"user_id": user.ID, "door_id": grant.DoorID},
	})
	out := dto.FromUser(user)
	return &out, nil
}

// GetPending lista las solicitudes Pending de la empresa del llamador, más recientes primero.
func (uc *PermissionUseCase) GetPending(ctx context.Context, caller dto.Principal) ([]dto.PermissionRequestResponse, error) {
	if caller.CompanyID == "" {
		return nil, fmt.Errorf("%w: el administrador no pertenece a una empresa", domain.ErrForbidden)
	}
	list, err := uc.repos.PermissionRequests.ListByCompanyAndStatus(ctx, caller.CompanyID, entity.RequestStatusPending)
	if err != nil {
		return nil, err
	}
	return toResponses(list), nil
}

// GetRejectedByUser lista las solicitudes rechazadas del usuario.
func (uc *PermissionUseCase) GetRejectedByUser(ctx context.Context, caller dto.Principal, userID string) ([]dto.PermissionRequestResponse, error) {
	if err := uc.authorizeUser(ctx, caller, userID); err != nil {
		return nil, err
	}
	list, err := uc.repos.PermissionRequests.ListByUserAndStatus(ctx, userID, entity.RequestStatusRejected)
	if err != nil {
		return nil, err
	}
	return toResponses(list), nil
}

// ListByUser lista todas las solicitudes del usuario.
func (uc *PermissionUseCase) ListByUser(ctx context.Context, caller dto.Principal, userID string) ([]dto.PermissionRequestResponse, error) {
	if err := uc.authorizeUser(ctx, caller, userID); err != nil {
		return nil, err
	}
	list, err := uc.repos.PermissionRequests.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResponses(list), nil
}

func (uc *PermissionUseCase) authorizeUser(ctx context.Context, caller dto.Principal, userID string) error {
	if caller.Role == entity.RoleUser {
		if caller.ID != userID {
			return domain.ErrForbidden
		}
		return nil
	}
	user, err := uc.repos.Users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%w: usuario %s", domain.ErrNotFound, userID)
	}
	if !caller.CanAccessCompany(user.CompanyID) {
		return domain.ErrTenancyMismatch
	}
	return nil
}

func (uc *PermissionUseCase) granted(ctx context.Context, user *entity.User, door *entity.Door, req *entity.PermissionRequest) {
	uc.log.Info().Str("request_id", req.ID).Str("user_id", user.ID).Str("door_id", door.ID).Msg("acceso concedido")
	uc.effects.PermissionGranted(ctx, ports.PermissionNotice{
		Email:    user.Email,
		DoorCode: door.DoorCode,
		RoomName: door.RoomName,
		Location: door.Location,
		Date:     req.Date,
		InTime:   req.InTime,
		OutTime:  req.OutTime,
		Message:  req.Message,
	})
	uc.effects.Publish(ctx, ports.DomainEvent{
		Name:      ports.EventPermissionApproved,
		CompanyID: req.CompanyID,
		SubjectID: req.ID,
		Data:      map[string]any{"user_id": user.ID, "door_id": door.ID},
	})
}

// addGrant añade la concesión de req al usuario y lo registra en approvedUsers de la puerta.
func addGrant(ctx context.Context, repos repository.Repositories, user *entity.User, door *entity.Door, req *entity.PermissionRequest) error {
	da := req.Grant(uuid.New().String(), door)
	if err := repos.Users.AddDoorAccess(ctx, user.ID, da); err != nil {
		return err
	}
	if err := repos.Doors.AddApprovedUser(ctx, door.ID, user.ID); err != nil {
		return err
	}
	user.DoorAccess = append(user.DoorAccess, da)
	return nil
}

// loadPair carga y bloquea al usuario, carga la puerta y exige que pertenezcan a la misma empresa.
func loadPair(ctx context.Context, repos repository.Repositories, userID, doorID string) (*entity.User, *entity.Door, error) {
	user, err := repos.Users.GetByIDForUpdate(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, fmt.Errorf("%w: usuario %s", domain.ErrNotFound, userID)
	}
	door, err := repos.Doors.GetByID(ctx, doorID)
	if err != nil {
		return nil, nil, err
	}
	if door == nil {
		return nil, nil, fmt.Errorf("%w: puerta %s", domain.ErrNotFound, doorID)
	}
	if user.CompanyID != door.CompanyID {
		return nil, nil, fmt.Errorf("%w: la puerta no pertenece a la empresa del usuario", domain.ErrTenancyMismatch)
	}
	return user, door, nil
}

func loadRequest(ctx context.Context, repos repository.Repositories, caller dto.Principal, id string) (*entity.PermissionRequest, error) {
	req, err := repos.PermissionRequests.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("%w: solicitud de permiso %s", domain.ErrNotFound, id)
	}
	if !caller.CanAccessCompany(req.CompanyID) {
		return nil, domain.ErrTenancyMismatch
	}
	return req, nil
}

func newRequest(user *entity.User, door *entity.Door, s slot, message, status string, now time.Time) *entity.PermissionRequest {
	return &entity.PermissionRequest{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		CompanyID: user.CompanyID,
		DoorID:    door.ID,
		Name:      user.FullName(),
		Location:  door.Location,
		RoomName:  door.RoomName,
		InTime:    s.inTime,
		OutTime:   s.outTime,
		Date:      s.date,
		Message:   strings.TrimSpace(message),
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func appendAudit(ctx context.Context, repos repository.Repositories, actorID string, req *entity.PermissionRequest, action string, now time.Time) error {
	return repos.Audit.Append(ctx, &entity.AuditEvent{
		ID:        uuid.New().String(),
		ActorID:   actorID,
		CompanyID: req.CompanyID,
		Action:    action,
		TargetID:  req.ID,
		Metadata:  map[string]any{"user_id": req.UserID, "door_id": req.DoorID},
		CreatedAt: now,
	})
}

// parseSlot valida fecha (YYYY-MM-DD o RFC3339) y franja HH:MM.
func parseSlot(date, inTime, outTime string) (slot, error) {
	var s slot
	date = strings.TrimSpace(date)
	if date == "" {
		return s, fmt.Errorf("%w: date es obligatorio", domain.ErrValidation)
	}
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		if d, err = time.Parse(time.RFC3339, date); err != nil {
			return s, fmt.Errorf("%w: fecha inválida %q", domain.ErrValidation, date)
		}
	}
	in, err := time.Parse("15:04", strings.TrimSpace(inTime))
	if err != nil {
		return s, fmt.Errorf("%w: inTime inválido %q", domain.ErrValidation, inTime)
	}
	out, err := time.Parse("15:04", strings.TrimSpace(outTime))
	if err != nil {
		return s, fmt.Errorf("%w: outTime inválido %q", domain.ErrValidation, outTime)
	}
	if !out.After(in) {
		return s, fmt.Errorf("%w: outTime debe ser posterior a inTime", domain.ErrValidation)
	}
	return slot{date: d.UTC(), inTime: in.Format("15:04"), outTime: out.Format("15:04")}, nil
}

func without(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func toResponses(list []*entity.PermissionRequest) []dto.PermissionRequestResponse {
	out := make([]dto.PermissionRequestResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.FromPermissionRequest(p))
	}
	return out
}
