package provisioning_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/securepass-api/internal/application/auth"
	"github.com/jhoicas/securepass-api/internal/application/dto"
	"github.com/jhoicas/securepass-api/internal/application/ports"
	"github.com/jhoicas/securepass-api/internal/application/provisioning"
	"github.com/jhoicas/securepass-api/internal/domain"
	"github.com/jhoicas/securepass-api/internal/domain/entity"
	"github.com/jhoicas/securepass-api/internal/domain/repository"
	"github.com/jhoicas/securepass-api/internal/infrastructure/memory"
)

func TestMain(m *testing.M) {
	auth.HashCost = bcrypt.MinCost
	os.Exit(m.Run())
}

type recordingNotifier struct {
	mu            sync.Mutex
	registrations []ports.RegistrationNotice
}

func (n *recordingNotifier) NotifyRegistration(_ context.Context, notice ports.RegistrationNotice) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.registrations = append(n.registrations, notice)
	return nil
}

func (n *recordingNotifier) NotifyPermissionGranted(context.Context, ports.PermissionNotice) error {
	return nil
}

type fixture struct {
	store    *memory.Store
	repos    repository.Repositories
	notifier *recordingNotifier
	admins   *provisioning.AdminUseCase
	users    *provisioning.UserUseCase
	caller   dto.Principal
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	repos := store.Repositories()
	require.NoError(t, repos.Companies.Create(ctx, &entity.Company{ID: "starter", Name: "S", Package: entity.PackageStarter, Status: entity.CompanyStatusActive}))
	require.NoError(t, repos.Companies.Create(ctx, &entity.Company{ID: "premium", Name: "P", Package: entity.PackagePremium, Status: entity.CompanyStatusActive}))

	notifier := &recordingNotifier{}
	effects := ports.Effects{Notifier: notifier, Log: zerolog.Nop()}
	return &fixture{
		store:    store,
		repos:    repos,
		notifier: notifier,
		admins:   provisioning.NewAdminUseCase(store, effects),
		users:    provisioning.NewUserUseCase(repos, store, effects),
		caller:   dto.Principal{ID: "admin-p", CompanyID: "premium", Role: entity.RoleAdmin},
	}
}

func adminInput(company string, i int) dto.CreateAdminInput {
	return dto.CreateAdminInput{
		FirstName: "Ana",
		LastName:  fmt.Sprintf("N%d", i),
		Email:     fmt.Sprintf("ana%d@%s.com", i, company),
		Password:  "secreto",
		CompanyID: company,
	}
}

// ─── Administradores ────────────────────────────────────────────────────────

func TestCreateAdminUser_StarterCap(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := f.admins.CreateAdminUser(ctx, adminInput("starter", i))
		require.NoError(t, err)
	}
	_, err := f.admins.CreateAdminUser(ctx, adminInput("starter", 5))
	require.ErrorIs(t, err, domain.ErrCapacity)

	n, err := f.repos.AdminUsers.CountByCompany(ctx, "starter")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	company, _ := f.repos.Companies.GetByID(ctx, "starter")
	assert.Len(t, company.Admins, 5)
	assert.Len(t, f.notifier.registrations, 5)
}

func TestCreateAdminUser_PremiumHasNoCap(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 7; i++ {
		_, err := f.admins.CreateAdminUser(context.Background(), adminInput("premium", i))
		require.NoError(t, err)
	}
}

func TestCreateAdminUser_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.admins.CreateAdminUser(ctx, adminInput("ghost", 0))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	in := adminInput("premium", 0)
	in.Password = "123"
	_, err = f.admins.CreateAdminUser(ctx, in)
	assert.ErrorIs(t, err, domain.ErrValidation)

	out, err := f.admins.CreateAdminUser(ctx, adminInput("premium", 1))
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
	assert.Equal(t, ports.AudienceAdmin, f.notifier.registrations[0].Audience)

	dup := adminInput("premium", 1)
	dup.Email = "ANA1@premium.com"
	_, err = f.admins.CreateAdminUser(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ─── Usuarios ───────────────────────────────────────────────────────────────

func register(t *testing.T, f *fixture, email, userID string) *dto.UserResponse {
	t.Helper()
	out, err := f.users.RegisterUser(context.Background(), f.caller, dto.RegisterUserInput{
		FirstName: "Jo", LastName: "Lee", Email: email, Password: "secreto", UserID: userID,
	})
	require.NoError(t, err)
	return out
}

func TestRegisterUser_UniquenessAcrossAccounts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.admins.CreateAdminUser(ctx, adminInput("premium", 0))
	require.NoError(t, err)

	_, err = f.users.RegisterUser(ctx, f.caller, dto.RegisterUserInput{
		FirstName: "Jo", LastName: "Lee", Email: "ana0@premium.com", Password: "secreto", UserID: "E1",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists, "el email ya es de un admin")

	user := register(t, f, "jo@premium.com", "E1")
	assert.Equal(t, "premium", user.CompanyID)
	assert.Equal(t, "admin-p", user.AdminID)

	_, err = f.users.RegisterUser(ctx, f.caller, dto.RegisterUserInput{
		FirstName: "Al", LastName: "Lee", Email: "al@premium.com", Password: "secreto", UserID: "E1",
	})
	assert.ErrorIs(t, err, domain.ErrUserIDAlreadyExists)

	_, err = f.admins.CreateAdminUser(ctx, dto.CreateAdminInput{
		FirstName: "X", LastName: "Y", Email: "jo@premium.com", Password: "secreto", CompanyID: "premium",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists, "el email ya es de un usuario")
}

func TestCheckEmailUnique(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := register(t, f, "jo@premium.com", "E1")

	ok, err := f.users.CheckEmailUnique(ctx, "JO@premium.com")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.users.CheckEmailUnique(ctx, "nuevo@premium.com")
	require.NoError(t, err)
	assert.True(t, ok)

	for _, exclude := range []string{user.ID, "E1"} {
		ok, err = f.users.CheckEmailUniqueForUpdate(ctx, "jo@premium.com", exclude)
		require.NoError(t, err)
		assert.True(t, ok, "excluyendo %s", exclude)
	}
	ok, err = f.users.CheckEmailUniqueForUpdate(ctx, "jo@premium.com", "otro")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.users.CheckUserIDUnique(ctx, "E1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	jo := register(t, f, "jo@premium.com", "E1")
	register(t, f, "al@premium.com", "E2")

	_, err := f.users.Update(ctx, f.caller, jo.ID, dto.UpdateUserInput{Email: "al@premium.com"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	_, err = f.users.Update(ctx, f.caller, jo.ID, dto.UpdateUserInput{UserID: "E2"})
	assert.ErrorIs(t, err, domain.ErrUserIDAlreadyExists)

	out, err := f.users.Update(ctx, f.caller, jo.ID, dto.UpdateUserInput{FirstName: "Joanna", Email: "jo@premium.com"})
	require.NoError(t, err)
	assert.Equal(t, "Joanna", out.FirstName)

	other := dto.Principal{ID: "admin-s", CompanyID: "starter", Role: entity.RoleAdmin}
	_, err = f.users.Update(ctx, other, jo.ID, dto.UpdateUserInput{FirstName: "X"})
	assert.ErrorIs(t, err, domain.ErrTenancyMismatch)
}

// grantOnLoad concede un acceso justo después de que el usuario se carga para editar,
// como haría una aprobación confirmada entre la lectura y la escritura.
type grantOnLoad struct {
	repository.UserRepository
	grant entity.DoorAccess
}

func (g grantOnLoad) GetByIDForUpdate(ctx context.Context, id string) (*entity.User, error) {
	u, err := g.UserRepository.GetByIDForUpdate(ctx, id)
	if err != nil || u == nil {
		return u, err
	}
	return u, g.UserRepository.AddDoorAccess(ctx, id, g.grant)
}

type grantingTx struct {
	inner ports.TxRunner
	grant entity.DoorAccess
}

func (tx grantingTx) Run(ctx context.Context, fn func(repository.Repositories) error) error {
	return tx.inner.Run(ctx, func(repos repository.Repositories) error {
		repos.Users = grantOnLoad{UserRepository: repos.Users, grant: tx.grant}
		return fn(repos)
	})
}

func TestUpdateUser_KeepsGrantWrittenDuringEdit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	jo := register(t, f, "jo@premium.com", "E1")
	require.NoError(t, f.repos.Users.PushPendingRequest(ctx, jo.ID, "req-1"))

	grant := entity.DoorAccess{ID: "g1", DoorID: "d1", RequestID: "req-2", DoorCode: "P-1"}
	users := provisioning.NewUserUseCase(f.repos, grantingTx{inner: f.store, grant: grant}, ports.Effects{Log: zerolog.Nop()})
	out, err := users.Update(ctx, f.caller, jo.ID, dto.UpdateUserInput{FirstName: "Joanna"})
	require.NoError(t, err)
	assert.Equal(t, "Joanna", out.FirstName)

	stored, err := f.repos.Users.GetByID(ctx, jo.ID)
	require.NoError(t, err)
	assert.Equal(t, "Joanna", stored.FirstName)
	require.Len(t, stored.DoorAccess, 1)
	assert.Equal(t, "g1", stored.DoorAccess[0].ID)
	assert.Equal(t, []string{"req-1"}, stored.PendingRequests)
}

func TestUpdateUser_ProfileWriteKeepsStoredGrants(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	jo := register(t, f, "jo@premium.com", "E1")

	stale, err := f.repos.Users.GetByID(ctx, jo.ID)
	require.NoError(t, err)
	require.NoError(t, f.repos.Users.AddDoorAccess(ctx, jo.ID, entity.DoorAccess{ID: "g1", DoorID: "d1"}))

	stale.FirstName = "Joanna"
	require.NoError(t, f.repos.Users.Update(ctx, stale))

	stored, _ := f.repos.Users.GetByID(ctx, jo.ID)
	assert.Equal(t, "Joanna", stored.FirstName)
	assert.Len(t, stored.DoorAccess, 1)
}

func TestDeleteUser_PullsFromDoors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	jo := register(t, f, "jo@premium.com", "E1")

	require.NoError(t, f.repos.Doors.Create(ctx, &entity.Door{ID: "d1", DoorCode: "P-1", CompanyID: "premium"}))
	require.NoError(t, f.repos.Doors.AddApprovedUser(ctx, "d1", jo.ID))
	require.NoError(t, f.repos.Users.AddDoorAccess(ctx, jo.ID, entity.DoorAccess{ID: "g1", DoorID: "d1"}))

	require.NoError(t, f.users.Delete(ctx, f.caller, jo.ID))

	gone, _ := f.repos.Users.GetByID(ctx, jo.ID)
	assert.Nil(t, gone)
	door, _ := f.repos.Doors.GetByID(ctx, "d1")
	assert.NotContains(t, door.ApprovedUsers, jo.ID)

	assert.ErrorIs(t, f.users.Delete(ctx, f.caller, jo.ID), domain.ErrNotFound)
}
