package auth

import (
	"context"
	"strings"

	"github.com/jhoicas/securepass-api/internal/application/dto"
	"github.com/jhoicas/securepass-api/internal/domain"
	"github.com/jhoicas/securepass-api/internal/domain/entity"
	"github.com/jhoicas/securepass-api/internal/domain/repository"
	"github.com/jhoicas/securepass-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login de administradores y usuarios finales.
type AuthUseCase struct {
	admins    repository.AdminUserRepository
	users     repository.UserRepository
	companies repository.CompanyRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(repos repository.Repositories, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{admins: repos.AdminUsers, users: repos.Users, companies: repos.Companies, jwtCfg: jwtCfg}
}

// AdminLogin autentica un Admin o SuperAdmin. Los Admin de una empresa inactiva no pueden entrar.
func (uc *AuthUseCase) AdminLogin(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrValidation
	}
	admin, err := uc.admins.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin == nil || !CheckPassword(admin.PasswordHash, in.Password) {
		return nil, domain.ErrUnauthorized
	}
	if admin.Role != entity.RoleSuperAdmin {
		if err := uc.ensureCompanyActive(ctx, admin.CompanyID); err != nil {
			return nil, err
		}
	}
	return uc.issue(admin.ID, admin.CompanyID, admin.Role, admin.Email, admin.FullName())
}

// UserLogin autentica a un usuario final.
func (uc *AuthUseCase) UserLogin(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrValidation
	}
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !CheckPassword(user.PasswordHash, in.Password) {
		return nil, domain.ErrUnauthorized
	}
	if err := uc.ensureCompanyActive(ctx, user.CompanyID); err != nil {
		return nil, err
	}
	return uc.issue(user.ID, user.CompanyID, entity.RoleUser, user.Email, user.FullName())
}

// Me devuelve los datos del principal del token. Si la cuenta ya no existe responde ErrUnauthorized.
func (uc *AuthUseCase) Me(ctx context.Context, caller dto.Principal) (*dto.MeResponse, error) {
	out := &dto.MeResponse{ID: caller.ID, Role: caller.Role, CompanyID: caller.CompanyID}
	if caller.Role == entity.RoleUser {
		user, err := uc.users.GetByID(ctx, caller.ID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, domain.ErrUnauthorized
		}
		out.Email, out.Name = user.Email, user.FullName()
		return out, nil
	}
	admin, err := uc.admins.GetByID(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrUnauthorized
	}
	out.Email, out.Name = admin.Email, admin.FullName()
	return out, nil
}

func (uc *AuthUseCase) ensureCompanyActive(ctx context.Context, companyID string) error {
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return err
	}
	if company == nil || company.Status != entity.CompanyStatusActive {
		return domain.ErrForbidden
	}
	return nil
}

func (uc *AuthUseCase) issue(id, companyID, role, email, name string) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, id, companyID, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, ID: id, Email: email, Name: name, Role: role, CompanyID: companyID}, nil
}

// NormalizeEmail forma canónica de un email (minúsculas, sin espacios).
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
