package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/securepass-api/internal/domain"
	"github.com/jhoicas/securepass-api/internal/domain/entity"
	"github.com/jhoicas/securepass-api/internal/domain/repository"
	"github.com/jhoicas/securepass-api/internal/infrastructure/memory"
)

// ─── Transacciones ──────────────────────────────────────────────────────────

func TestRun_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	boom := errors.New("boom")

	err := store.Run(ctx, func(repos repository.Repositories) error {
		require.NoError(t, repos.Companies.Create(ctx, &entity.Company{ID: "c1", Name: "Acme"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := store.Repositories().Companies.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRun_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	err := store.Run(ctx, func(repos repository.Repositories) error {
		return repos.Companies.Create(ctx, &entity.Company{ID: "c1", Name: "Acme"})
	})
	require.NoError(t, err)

	got, err := store.Repositories().Companies.GetByID(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Acme", got.Name)
}

// ─── Aislamiento de copias ──────────────────────────────────────────────────

func TestGetByID_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repositories()
	require.NoError(t, repos.Users.Create(ctx, &entity.User{ID: "u1", Email: "a@x.com", UserID: "E1"}))

	u, err := repos.Users.GetByID(ctx, "u1")
	require.NoError(t, err)
	u.PendingRequests = append(u.PendingRequests, "r1")

	again, err := repos.Users.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, again.PendingRequests)
}

// ─── Restricciones de unicidad ──────────────────────────────────────────────

func TestUsers_UniqueEmailAndUserID(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repositories()
	require.NoError(t, repos.Users.Create(ctx, &entity.User{ID: "u1", Email: "a@x.com", UserID: "E1"}))

	err := repos.Users.Create(ctx, &entity.User{ID: "u2", Email: "a@x.com", UserID: "E2"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	err = repos.Users.Create(ctx, &entity.User{ID: "u3", Email: "b@x.com", UserID: "E1"})
	assert.ErrorIs(t, err, domain.ErrUserIDAlreadyExists)
}

func TestDoors_ApprovedUsersHasNoDuplicates(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repositories()
	require.NoError(t, repos.Doors.Create(ctx, &entity.Door{ID: "d1", DoorCode: "A1", CompanyID: "c1"}))

	require.NoError(t, repos.Doors.AddApprovedUser(ctx, "d1", "u1"))
	require.NoError(t, repos.Doors.AddApprovedUser(ctx, "d1", "u1"))
	door, err := repos.Doors.GetByID(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, door.ApprovedUsers)

	require.NoError(t, repos.Doors.PullApprovedUser(ctx, "d1", "u1"))
	door, err = repos.Doors.GetByID(ctx, "d1")
	require.NoError(t, err)
	assert.Empty(t, door.ApprovedUsers)
}

func TestUsers_UpdateKeepsGrantsAndPending(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repositories()
	require.NoError(t, repos.Users.Create(ctx, &entity.User{ID: "u1", FirstName: "Jo", Email: "a@x.com", UserID: "E1"}))

	stale, err := repos.Users.GetByID(ctx, "u1")
	require.NoError(t, err)
	require.NoError(t, repos.Users.AddDoorAccess(ctx, "u1", entity.DoorAccess{ID: "g1", DoorID: "d1"}))
	require.NoError(t, repos.Users.PushPendingRequest(ctx, "u1", "r1"))
	require.NoError(t, repos.Users.PushPendingRequest(ctx, "u1", "r1"))

	stale.FirstName = "Joanna"
	require.NoError(t, repos.Users.Update(ctx, stale))

	u, err := repos.Users.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Joanna", u.FirstName)
	require.Len(t, u.DoorAccess, 1)
	assert.Equal(t, []string{"r1"}, u.PendingRequests)

	require.NoError(t, repos.Users.RemoveDoorAccess(ctx, "u1", "g1"))
	require.NoError(t, repos.Users.RemoveDoorAccess(ctx, "u1", "g1"))
	u, _ = repos.Users.GetByID(ctx, "u1")
	assert.Empty(t, u.DoorAccess)

	assert.ErrorIs(t, repos.Users.AddDoorAccess(ctx, "nadie", entity.DoorAccess{ID: "g2"}), domain.ErrNotFound)
}

// ─── Consultas ──────────────────────────────────────────────────────────────

func TestPermissionRequests_NewestFirst(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repositories()
	for _, id := range []string{"p1", "p2", "p3"} {
		require.NoError(t, repos.PermissionRequests.Create(ctx, &entity.PermissionRequest{
			ID: id, CompanyID: "c1", UserID: "u1", Status: entity.RequestStatusPending,
		}))
	}

	list, err := repos.PermissionRequests.ListByCompanyAndStatus(ctx, "c1", entity.RequestStatusPending)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "p3", list[0].ID)
	assert.Equal(t, "p1", list[2].ID)
}

func TestCompanies_DeactivateExpired(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repositories()
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	require.NoError(t, repos.Companies.Create(ctx, &entity.Company{ID: "old", Status: entity.CompanyStatusActive, ExpiredDate: &past}))
	require.NoError(t, repos.Companies.Create(ctx, &entity.Company{ID: "new", Status: entity.CompanyStatusActive, ExpiredDate: &future}))

	n, err := repos.Companies.DeactivateExpired(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	old, _ := repos.Companies.GetByID(ctx, "old")
	assert.Equal(t, entity.CompanyStatusInactive, old.Status)
	fresh, _ := repos.Companies.GetByID(ctx, "new")
	assert.Equal(t, entity.CompanyStatusActive, fresh.Status)
}

func TestPayments_Relink(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repositories()
	require.NoError(t, repos.Payments.Create(ctx, &entity.Payment{ID: "p1", OrderID: "1", CompanyRequestID: "req"}))
	require.NoError(t, repos.Payments.Create(ctx, &entity.Payment{ID: "p2", OrderID: "2", CompanyRequestID: "other"}))

	n, err := repos.Payments.RelinkToCompany(ctx, "req", "c1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	list, err := repos.Payments.ListByCompany(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "1", list[0].OrderID)
}
