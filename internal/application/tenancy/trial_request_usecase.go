package tenancy

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/securepass-api/internal/application/auth"
	"github.com/jhoicas/securepass-api/internal/application/dto"
	"github.com/jhoicas/securepass-api/internal/domain"
	"github.com/jhoicas/securepass-api/internal/domain/entity"
	"github.com/jhoicas/securepass-api/internal/domain/repository"
)

// TrialRequestUseCase solicitudes de prueba gratuita desde la web pública.
type TrialRequestUseCase struct {
	repo repository.TrialRequestRepository
}

// NewTrialRequestUseCase construye el caso de uso.
func NewTrialRequestUseCase(repo repository.TrialRequestRepository) *TrialRequestUseCase {
	return &TrialRequestUseCase{repo: repo}
}

// Create registra una solicitud de prueba. El email es único entre solicitudes de prueba.
func (uc *TrialRequestUseCase) Create(ctx context.Context, in dto.CreateTrialRequestInput) (*dto.TrialRequestResponse, error) {
	t := &entity.TrialRequest{
		ID:          uuid.New().String(),
		CompanyName: strings.TrimSpace(in.CompanyName),
		Address:     strings.TrimSpace(in.Address),
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		Email:       auth.NormalizeEmail(in.Email),
	}
	if t.CompanyName == "" || t.Address == "" || t.FirstName == "" || t.LastName == "" || t.Email == "" {
		return nil, fmt.Errorf("%w: todos los campos son obligatorios", domain.ErrValidation)
	}
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	if err := uc.repo.Create(ctx, t); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %s", domain.ErrEmailAlreadyExists, t.Email)
		}
		return nil, err
	}
	out := dto.FromTrialRequest(t)
	return &out, nil
}

// List devuelve una página de solicitudes (más recientes primero) con metadatos de paginación.
func (uc *TrialRequestUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.TrialRequestListResponse, error) {
	page.DefaultPage()
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := &dto.TrialRequestListResponse{
		Success: true,
		Data:    make([]dto.TrialRequestResponse, 0, len(list)),
		Pagination: dto.Pagination{
			CurrentPage:   page.Page,
			TotalPages:    (total + page.Limit - 1) / page.Limit,
			TotalRequests: total,
		},
	}
	for _, t := range list {
		out.Data = append(out.Data, dto.FromTrialRequest(t))
	}
	return out, nil
}
