package tenancy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/securepass-api/internal/application/auth"
	"github.com/jhoicas/securepass-api/internal/application/dto"
	"github.com/jhoicas/securepass-api/internal/application/ports"
	"github.com/jhoicas/securepass-api/internal/domain"
	"github.com/jhoicas/securepass-api/internal/domain/entity"
	"github.com/jhoicas/securepass-api/internal/domain/repository"
	"github.com/jhoicas/securepass-api/internal/domain/subscription"
)

// Decisiones aceptadas por ToggleStatus.
const (
	DecisionApprove = "Approve"
	DecisionReject  = "Reject"
)

// CompanyRequestUseCase ciclo de vida de las solicitudes de alta: creación por invitados,
// administración y aprobación/rechazo por el SuperAdmin.
type CompanyRequestUseCase struct {
	repos   repository.Repositories
	tx      ports.TxRunner
	effects ports.Effects
	log     zerolog.Logger
	now     func() time.Time
}

// NewCompanyRequestUseCase construye el caso de uso.
func NewCompanyRequestUseCase(repos repository.Repositories, tx ports.TxRunner, effects ports.Effects, log zerolog.Logger) *CompanyRequestUseCase {
	return &CompanyRequestUseCase{repos: repos, tx: tx, effects: effects, log: log, now: time.Now}
}

// Create valida y persiste una solicitud Pending.
func (uc *CompanyRequestUseCase) Create(ctx context.Context, in dto.CreateCompanyRequestInput) (*dto.CompanyRequestResponse, error) {
	name := strings.TrimSpace(in.Name)
	address := strings.TrimSpace(in.Address)
	if name == "" || address == "" {
		return nil, fmt.Errorf("%w: nombre y dirección son obligatorios", domain.ErrValidation)
	}
	if len(in.Admins) == 0 {
		return nil, fmt.Errorf("%w: se requiere al menos un administrador", domain.ErrValidation)
	}
	if strings.TrimSpace(in.PackageType) == "" {
		return nil, fmt.Errorf("%w: packageType es obligatorio", domain.ErrValidation)
	}

	now := uc.now()
	req := &entity.CompanyRequest{
		ID:          uuid.New().String(),
		Name:        name,
		Address:     address,
		Status:      entity.RequestStatusPending,
		PackageType: strings.TrimSpace(in.PackageType),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	seen := make(map[string]bool, len(in.Admins))
	for i, a := range in.Admins {
		email := auth.NormalizeEmail(a.Email)
		if strings.TrimSpace(a.FirstName) == "" || strings.TrimSpace(a.LastName) == "" || email == "" {
			return nil, fmt.Errorf("%w: administrador %d incompleto", domain.ErrValidation, i+1)
		}
		if seen[email] {
			return nil, fmt.Errorf("%w: email de administrador repetido %s", domain.ErrValidation, email)
		}
		seen[email] = true
		req.Admins = append(req.Admins, entity.RequestAdmin{
			ID:        uuid.New().String(),
			FirstName: strings.TrimSpace(a.FirstName),
			LastName:  strings.TrimSpace(a.LastName),
			Email:     email,
		})
	}

	if err := uc.repos.CompanyRequests.Create(ctx, req); err != nil {
		return nil, err
	}
	out := dto.FromCompanyRequest(req)
	return &out, nil
}

// List devuelve todas las solicitudes (más recientes primero).
func (uc *CompanyRequestUseCase) List(ctx context.Context) ([]dto.CompanyRequestResponse, error) {
	list, err := uc.repos.CompanyRequests.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyRequestResponse, 0, len(list))
	for _, r := range list {
		out = append(out, dto.FromCompanyRequest(r))
	}
	return out, nil
}

// Get devuelve una solicitud o ErrNotFound.
func (uc *CompanyRequestUseCase) Get(ctx context.Context, id string) (*dto.CompanyRequestResponse, error) {
	req, err := uc.load(ctx, uc.repos, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromCompanyRequest(req)
	return &out, nil
}

// Update edita nombre y dirección.
func (uc *CompanyRequestUseCase) Update(ctx context.Context, id string, in dto.UpdateCompanyRequestInput) (*dto.CompanyRequestResponse, error) {
	req, err := uc.load(ctx, uc.repos, id)
	if err != nil {
		return nil, err
	}
	if n := strings.TrimSpace(in.Name); n != "" {
		req.Name = n
	}
	if a := strings.TrimSpace(in.Address); a != "" {
		req.Address = a
	}
	req.UpdatedAt = uc.now()
	if err := uc.repos.CompanyRequests.Update(ctx, req); err != nil {
		return nil, err
	}
	out := dto.FromCompanyRequest(req)
	return &out, nil
}

// Delete elimina una solicitud.
func (uc *CompanyRequestUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.load(ctx, uc.repos, id); err != nil {
		return err
	}
	return uc.repos.CompanyRequests.Delete(ctx, id)
}

// ToggleStatus aplica la decisión del SuperAdmin. La aprobación crea la Company, re-vincula los pagos,
// provisiona los administradores seleccionados y marca la solicitud como Approved, todo en una transacción.
// Los correos de registro se encolan después del commit.
func (uc *CompanyRequestUseCase) ToggleStatus(ctx context.Context, actorID, id string, in dto.ToggleCompanyRequestInput) (*dto.ToggleCompanyRequestResult, error) {
	switch in.Status {
	case DecisionApprove:
		return uc.approve(ctx, actorID, id, in.SelectedAdmins)
	case DecisionReject:
		return uc.reject(ctx, actorID, id)
	default:
		return nil, fmt.Errorf("%w: %q (use Approve o Reject)", domain.ErrInvalidStatus, in.Status)
	}
}

func (uc *CompanyRequestUseCase) reject(ctx context.Context, actorID, id string) (*dto.ToggleCompanyRequestResult, error) {
	var req *entity.CompanyRequest
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		var err error
		if req, err = uc.loadPending(ctx, repos, id); err != nil {
			return err
		}
		now := uc.now()
		req.Reject(now)
		if err := repos.CompanyRequests.Update(ctx, req); err != nil {
			return err
		}
		return repos.Audit.Append(ctx, &entity.AuditEvent{
			ID:        uuid.New().String(),
			ActorID:   actorID,
			Action:    entity.AuditCompanyRequestRejected,
			TargetID:  req.ID,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	uc.effects.Publish(ctx, ports.DomainEvent{Name: ports.EventCompanyRejected, SubjectID: req.ID})
	out := dto.FromCompanyRequest(req)
	return &dto.ToggleCompanyRequestResult{Request: &out}, nil
}

func (uc *CompanyRequestUseCase) approve(ctx context.Context, actorID, id string, selected []string) (*dto.ToggleCompanyRequestResult, error) {
	selected = distinctIDs(selected)
	var (
		req     *entity.CompanyRequest
		company *entity.Company
		admins  []*entity.AdminUser
		notices []ports.RegistrationNotice
	)
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		admins, notices = nil, nil

		var err error
		if req, err = uc.loadPending(ctx, repos, id); err != nil {
			return err
		}
		now := uc.now()
		expiredDate, ok := subscription.ExpirationFrom(req.PackageType, now)
		if !ok {
			return fmt.Errorf("%w: paquete desconocido %q", domain.ErrValidation, req.PackageType)
		}

		company = &entity.Company{
			ID:          uuid.New().String(),
			Name:        req.Name,
			Address:     req.Address,
			Status:      entity.CompanyStatusActive,
			Package:     req.PackageType,
			ExpiredDate: &expiredDate,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := repos.Companies.Create(ctx, company); err != nil {
			return err
		}

		relinked, err := repos.Payments.RelinkToCompany(ctx, req.ID, company.ID)
		if err != nil {
			return err
		}

		for _, adminID := range selected {
			candidate, found := req.FindAdmin(adminID)
			if !found {
				uc.log.Warn().Str("request_id", req.ID).Str("admin_id", adminID).Msg("administrador seleccionado no existe en la solicitud, se omite")
				continue
			}
			admin, notice, err := provisionAdmin(ctx, repos, candidate, company.ID, now)
			if err != nil {
				return err
			}
			company.Admins = append(company.Admins, admin.ID)
			admins = append(admins, admin)
			notices = append(notices, notice)
		}

		if err := repos.Companies.Update(ctx, company); err != nil {
			return err
		}

		req.Approve(now)
		if err := repos.CompanyRequests.Update(ctx, req); err != nil {
			return err
		}
		return repos.Audit.Append(ctx, &entity.AuditEvent{
			ID:        uuid.New().String(),
			ActorID:   actorID,
			CompanyID: company.ID,
			Action:    entity.AuditCompanyRequestApproved,
			TargetID:  req.ID,
			Metadata:  map[string]any{"admins": len(admins), "payments_relinked": relinked},
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("request_id", req.ID).Str("company_id", company.ID).Int("admins", len(admins)).Msg("solicitud de empresa aprobada")
	for _, n := range notices {
		uc.effects.Registration(ctx, n)
	}
	uc.effects.Publish(ctx, ports.DomainEvent{
		Name:      ports.EventCompanyApproved,
		CompanyID: company.ID,
		SubjectID: req.ID,
		Data:      map[string]any{"package": company.Package, "admins": len(admins)},
	})

	reqOut := dto.FromCompanyRequest(req)
	approval := &dto.ApprovalResponse{Company: dto.FromCompany(company, nil), Admins: make([]dto.AdminResponse, 0, len(admins))}
	for _, a := range admins {
		approval.Admins = append(approval.Admins, dto.FromAdmin(a))
	}
	return &dto.ToggleCompanyRequestResult{Request: &reqOut, Approval: approval}, nil
}

// distinctIDs quita repetidos conservando el orden de selección.
func distinctIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// provisionAdmin crea el AdminUser con la contraseña por defecto. El email debe ser único entre
// User y AdminUser; si ya existe se aborta la aprobación completa.
func provisionAdmin(ctx context.Context, repos repository.Repositories, candidate entity.RequestAdmin, companyID string, now time.Time) (*entity.AdminUser, ports.RegistrationNotice, error) {
	taken, err := emailTaken(ctx, repos, candidate.Email)
	if err != nil {
		return nil, ports.RegistrationNotice{}, err
	}
	if taken {
		return nil, ports.RegistrationNotice{}, fmt.Errorf("%w: %s", domain.ErrEmailAlreadyExists, candidate.Email)
	}

	password := auth.DefaultAdminPassword(candidate.FirstName)
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, ports.RegistrationNotice{}, err
	}
	admin := &entity.AdminUser{
		ID:           uuid.New().String(),
		FirstName:    candidate.FirstName,
		LastName:     candidate.LastName,
		Email:        candidate.Email,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		CompanyID:    companyID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repos.AdminUsers.Create(ctx, admin); err != nil {
		return nil, ports.RegistrationNotice{}, err
	}
	return admin, ports.RegistrationNotice{
		Email:     admin.Email,
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		Password:  password,
		Audience:  ports.AudienceAdmin,
	}, nil
}

func emailTaken(ctx context.Context, repos repository.Repositories, email string) (bool, error) {
	u, err := repos.Users.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if u != nil {
		return true, nil
	}
	a, err := repos.AdminUsers.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return a != nil, nil
}

func (uc *CompanyRequestUseCase) load(ctx context.Context, repos repository.Repositories, id string) (*entity.CompanyRequest, error) {
	req, err := repos.CompanyRequests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("%w: solicitud de empresa %s", domain.ErrNotFound, id)
	}
	return req, nil
}

// loadPending bloquea la solicitud y exige que siga Pending.
func (uc *CompanyRequestUseCase) loadPending(ctx context.Context, repos repository.Repositories, id string) (*entity.CompanyRequest, error) {
	req, err := repos.CompanyRequests.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("%w: solicitud de empresa %s", domain.ErrNotFound, id)
	}
	if !req.IsPending() {
		return nil, fmt.Errorf("%w: estado actual %s", domain.ErrRequestNotPending, req.Status)
	}
	return req, nil
}
