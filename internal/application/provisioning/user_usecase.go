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
)

// UserUseCase registro y gestión de usuarios finales por los Admin de su empresa.
type UserUseCase struct {
	repos   repository.Repositories
	tx      ports.TxRunner
	effects ports.Effects
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repos repository.Repositories, tx ports.TxRunner, effects ports.Effects) *UserUseCase {
	return &UserUseCase{repos: repos, tx: tx, effects: effects}
}

// RegisterUser crea un usuario en la empresa del Admin que llama. El correo con la guía se encola tras responder.
func (uc *UserUseCase) RegisterUser(ctx context.Context, caller dto.Principal, in dto.RegisterUserInput) (*dto.UserResponse, error) {
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)
	email := auth.NormalizeEmail(in.Email)
	userID := strings.TrimSpace(in.UserID)
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("%w: firstName y lastName son obligatorios", domain.ErrValidation)
	}
	if email == "" || userID == "" {
		return nil, fmt.Errorf("%w: email y userId son obligatorios", domain.ErrValidation)
	}
	if len(in.Password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: la contraseña debe tener al menos %d caracteres", domain.ErrValidation, MinPasswordLength)
	}
	if caller.CompanyID == "" {
		return nil, fmt.Errorf("%w: el administrador no pertenece a una empresa", domain.ErrForbidden)
	}

	if err := ensureEmailFree(ctx, uc.repos, email, ""); err != nil {
		return nil, err
	}
	if err := ensureUserIDFree(ctx, uc.repos, userID, ""); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:             uuid.New().String(),
		FirstName:      firstName,
		LastName:       lastName,
		Email:          email,
		PasswordHash:   hash,
		UserID:         userID,
		ProfilePicture: in.ProfilePicture,
		CompanyID:      caller.CompanyID,
		AdminID:        caller.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repos.Users.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.effects.Registration(ctx, ports.RegistrationNotice{
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Password:  in.Password,
		Audience:  ports.AudienceUser,
	})
	out := dto.FromUser(user)
	return &out, nil
}

// List devuelve los usuarios de la empresa del llamador.
func (uc *UserUseCase) List(ctx context.Context, caller dto.Principal) ([]dto.UserResponse, error) {
	users, err := uc.repos.Users.ListByCompany(ctx, caller.CompanyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.FromUser(u))
	}
	return out, nil
}

// Get devuelve un usuario con sus concesiones y solicitudes pendientes.
func (uc *UserUseCase) Get(ctx context.Context, caller dto.Principal, id string) (*dto.UserResponse, error) {
	user, err := uc.load(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromUser(user)
	return &out, nil
}

// Update edita los datos del usuario. userId y email deben seguir siendo únicos; password vacío conserva el actual.
// La fila queda bloqueada durante la edición; concesiones y pendientes no se reescriben.
func (uc *UserUseCase) Update(ctx context.Context, caller dto.Principal, id string, in dto.UpdateUserInput) (*dto.UserResponse, error) {
	var hash string
	if in.Password != "" {
		if len(in.Password) < MinPasswordLength {
			return nil, fmt.Errorf("%w: la contraseña debe tener al menos %d caracteres", domain.ErrValidation, MinPasswordLength)
		}
		var err error
		if hash, err = auth.HashPassword(in.Password); err != nil {
			return nil, err
		}
	}

	var user *entity.User
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		var err error
		if user, err = repos.Users.GetByIDForUpdate(ctx, id); err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("%w: usuario %s", domain.ErrNotFound, id)
		}
		if !caller.CanAccessCompany(user.CompanyID) {
			return domain.ErrTenancyMismatch
		}
		if v := strings.TrimSpace(in.FirstName); v != "" {
			user.FirstName = v
		}
		if v := strings.TrimSpace(in.LastName); v != "" {
			user.LastName = v
		}
		if v := auth.NormalizeEmail(in.Email); v != "" && v != user.Email {
			if err := ensureEmailFree(ctx, repos, v, user.ID); err != nil {
				return err
			}
			user.Email = v
		}
		if v := strings.TrimSpace(in.UserID); v != "" && v != user.UserID {
			if err := ensureUserIDFree(ctx, repos, v, user.ID); err != nil {
				return err
			}
			user.UserID = v
		}
		if hash != "" {
			user.PasswordHash = hash
		}
		user.UpdatedAt = time.Now()
		return repos.Users.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromUser(user)
	return &out, nil
}

// Delete elimina el usuario y lo quita de las puertas donde estaba aprobado.
func (uc *UserUseCase) Delete(ctx context.Context, caller dto.Principal, id string) error {
	return uc.tx.Run(ctx, func(repos repository.Repositories) error {
		user, err := repos.Users.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("%w: usuario %s", domain.ErrNotFound, id)
		}
		if !caller.CanAccessCompany(user.CompanyID) {
			return domain.ErrTenancyMismatch
		}
		pulled := make(map[string]bool, len(user.DoorAccess))
		for _, da := range user.DoorAccess {
			if pulled[da.DoorID] {
				continue
			}
			pulled[da.DoorID] = true
			if err := repos.Doors.PullApprovedUser(ctx, da.DoorID, user.ID); err != nil {
				return err
			}
		}
		return repos.Users.Delete(ctx, id)
	})
}

// CheckEmailUnique informa si el email no existe en User ni AdminUser.
func (uc *UserUseCase) CheckEmailUnique(ctx context.Context, email string) (bool, error) {
	return isEmailUnique(ctx, uc.repos, auth.NormalizeEmail(email), "")
}

// CheckEmailUniqueForUpdate igual que CheckEmailUnique pero ignora el registro excludeID (ID o userId).
func (uc *UserUseCase) CheckEmailUniqueForUpdate(ctx context.Context, email, excludeID string) (bool, error) {
	return isEmailUnique(ctx, uc.repos, auth.NormalizeEmail(email), excludeID)
}

// CheckUserIDUnique informa si el userId de negocio está libre.
func (uc *UserUseCase) CheckUserIDUnique(ctx context.Context, userID string) (bool, error) {
	u, err := uc.repos.Users.GetByUserID(ctx, strings.TrimSpace(userID))
	if err != nil {
		return false, err
	}
	return u == nil, nil
}

func ensureUserIDFree(ctx context.Context, repos repository.Repositories, userID, excludeID string) error {
	u, err := repos.Users.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if u != nil && u.ID != excludeID {
		return fmt.Errorf("%w: %s", domain.ErrUserIDAlreadyExists, userID)
	}
	return nil
}

func (uc *UserUseCase) load(ctx context.Context, caller dto.Principal, id string) (*entity.User, error) {
	user, err := uc.repos.Users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: usuario %s", domain.ErrNotFound, id)
	}
	if !caller.CanAccessCompany(user.CompanyID) {
		return nil, domain.ErrTenancyMismatch
	}
	return user, nil
}
