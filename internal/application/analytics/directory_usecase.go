package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/securepass-api/internal/application/dto"
	"github.com/jhoicas/securepass-api/internal/domain"
	"github.com/jhoicas/securepass-api/internal/domain/entity"
	"github.com/jhoicas/securepass-api/internal/domain/repository"
)

// DirectoryUseCase listados globales de usuarios y puertas, más recientes primero,
// con los nombres de empresa y administrador resueltos.
type DirectoryUseCase struct {
	repos repository.Repositories
}

// NewDirectoryUseCase construye el caso de uso.
func NewDirectoryUseCase(repos repository.Repositories) *DirectoryUseCase {
	return &DirectoryUseCase{repos: repos}
}

// ListAllUsers lista los usuarios de todas las empresas.
func (uc *DirectoryUseCase) ListAllUsers(ctx context.Context) ([]dto.UserDirectoryEntry, error) {
	users, err := uc.repos.Users.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return uc.userEntries(ctx, users)
}

// ListUsersByAdmin lista los usuarios registrados por un administrador.
func (uc *DirectoryUseCase) ListUsersByAdmin(ctx context.Context, adminID string) ([]dto.UserDirectoryEntry, error) {
	admin, err := uc.repos.AdminUsers.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, fmt.Errorf("%w: administrador %s", domain.ErrNotFound, adminID)
	}
	users, err := uc.repos.Users.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}
	return uc.userEntries(ctx, users)
}

// ListAllDoors lista las puertas de todas las empresas.
func (uc *DirectoryUseCase) ListAllDoors(ctx context.Context) ([]dto.DoorDirectoryEntry, error) {
	doors, err := uc.repos.Doors.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	companyIDs := make([]string, 0, len(doors))
	adminIDs := make([]string, 0, len(doors))
	for _, d := range doors {
		companyIDs = append(companyIDs, d.CompanyID)
		adminIDs = append(adminIDs, d.AdminID)
	}
	n, err := uc.resolve(ctx, companyIDs, adminIDs)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DoorDirectoryEntry, 0, len(doors))
	for _, d := range doors {
		out = append(out, dto.DoorDirectoryEntry{
			DoorResponse: dto.FromDoor(d),
			CompanyName:  n.companies[d.CompanyID],
			AdminName:    n.admins[d.AdminID],
		})
	}
	return out, nil
}

func (uc *DirectoryUseCase) userEntries(ctx context.Context, users []*entity.User) ([]dto.UserDirectoryEntry, error) {
	companyIDs := make([]string, 0, len(users))
	adminIDs := make([]string, 0, len(users))
	for _, u := range users {
		companyIDs = append(companyIDs, u.CompanyID)
		adminIDs = append(adminIDs, u.AdminID)
	}
	n, err := uc.resolve(ctx, companyIDs, adminIDs)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserDirectoryEntry, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserDirectoryEntry{
			UserResponse: dto.FromUser(u),
			CompanyName:  n.companies[u.CompanyID],
			AdminName:    n.admins[u.AdminID],
		})
	}
	return out, nil
}

type names struct {
	companies map[string]string
	admins    map[string]string
}

// resolve carga una sola vez cada empresa y administrador referenciado. Los borrados quedan sin nombre.
func (uc *DirectoryUseCase) resolve(ctx context.Context, companyIDs, adminIDs []string) (names, error) {
	n := names{companies: map[string]string{}, admins: map[string]string{}}
	for _, id := range distinct(companyIDs) {
		c, err := uc.repos.Companies.GetByID(ctx, id)
		if err != nil {
			return n, err
		}
		if c != nil {
			n.companies[id] = c.Name
		}
	}
	admins, err := uc.repos.AdminUsers.ListByIDs(ctx, distinct(adminIDs))
	if err != nil {
		return n, err
	}
	for _, a := range admins {
		n.admins[a.ID] = a.FullName()
	}
	return n, nil
}

// distinct conserva el primer orden de aparición y descarta vacíos.
func distinct(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
