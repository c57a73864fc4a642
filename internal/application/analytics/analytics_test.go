package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/securepass-api/internal/application/analytics"
	"github.com/jhoicas/securepass-api/internal/domain"
	"github.com/jhoicas/securepass-api/internal/domain/entity"
	"github.com/jhoicas/securepass-api/internal/domain/repository"
	"github.com/jhoicas/securepass-api/internal/infrastructure/memory"
)

// seed: empresas A y B, admin-a en A, dos usuarios y una puerta en A, un evento de acceso
// y cuatro solicitudes de empresa (pendiente, pendiente pagada, rechazada, aprobada).
func seed(t *testing.T) repository.Repositories {
	t.Helper()
	ctx := context.Background()
	repos := memory.NewStore().Repositories()
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, repos.Companies.Create(ctx, &entity.Company{ID: "A", Name: "Alpha"}))
	require.NoError(t, repos.Companies.Create(ctx, &entity.Company{ID: "B", Name: "Beta"}))
	require.NoError(t, repos.AdminUsers.Create(ctx, &entity.AdminUser{ID: "admin-a", FirstName: "Ana", LastName: "Ruiz", Email: "ana@a.com", Role: entity.RoleAdmin, CompanyID: "A"}))
	require.NoError(t, repos.AdminUsers.Create(ctx, &entity.AdminUser{ID: "root", FirstName: "Root", Email: "root@x.com", Role: entity.RoleSuperAdmin}))
	require.NoError(t, repos.Users.Create(ctx, &entity.User{ID: "u1", Email: "jo@a.com", UserID: "E1", CompanyID: "A", AdminID: "admin-a", CreatedAt: base}))
	require.NoError(t, repos.Users.Create(ctx, &entity.User{ID: "u2", Email: "al@a.com", UserID: "E2", CompanyID: "A", AdminID: "admin-gone", CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, repos.Doors.Create(ctx, &entity.Door{ID: "d1", DoorCode: "A-101", CompanyID: "A", AdminID: "admin-a"}))
	require.NoError(t, repos.AccessEvents.Create(ctx, &entity.AccessEvent{ID: "ev1", UserID: "u1", CompanyID: "A", DoorID: "d1", EntryTime: base}))

	for _, r := range []*entity.CompanyRequest{
		{ID: "r1", Name: "C1", Status: entity.RequestStatusPending},
		{ID: "r2", Name: "C2", Status: entity.RequestStatusPending, Payment: true},
		{ID: "r3", Name: "C3", Status: entity.RequestStatusRejected},
		{ID: "r4", Name: "C4", Status: entity.RequestStatusApproved, Payment: true},
	} {
		require.NoError(t, repos.CompanyRequests.Create(ctx, r))
	}
	return repos
}

func TestGetMetrics(t *testing.T) {
	repos := seed(t)
	out, err := analytics.NewDashboardUseCase(repos.Metrics).GetMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, out.TotalUsers)
	assert.Equal(t, 2, out.TotalAdminUsers)
	assert.Equal(t, 2, out.TotalCompanies)
	assert.Equal(t, 1, out.TotalDoors)
	assert.Equal(t, 1, out.TotalHistories)
	assert.Equal(t, 1, out.TotalPendingRequests)
	assert.Equal(t, 1, out.TotalRejectedRequests)
	assert.Equal(t, 1, out.TotalPaidRequests)
}

type failingDoors struct {
	repository.MetricsRepository
}

func (failingDoors) CountDoors(context.Context) (int, error) {
	return 0, errors.New("conexión perdida")
}

func TestGetMetrics_PropagatesFirstError(t *testing.T) {
	repos := seed(t)
	_, err := analytics.NewDashboardUseCase(failingDoors{repos.Metrics}).GetMetrics(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "puertas")
}

func TestListAllUsers_ResolvesNames(t *testing.T) {
	repos := seed(t)
	out, err := analytics.NewDirectoryUseCase(repos).ListAllUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Más recientes primero; el administrador borrado queda sin nombre.
	assert.Equal(t, "u2", out[0].ID)
	assert.Equal(t, "Alpha", out[0].CompanyName)
	assert.Empty(t, out[0].AdminName)
	assert.Equal(t, "u1", out[1].ID)
	assert.Equal(t, "Ana Ruiz", out[1].AdminName)
}

func TestListAllDoors_ResolvesNames(t *testing.T) {
	repos := seed(t)
	out, err := analytics.NewDirectoryUseCase(repos).ListAllDoors(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "A-101", out[0].DoorCode)
	assert.Equal(t, "Alpha", out[0].CompanyName)
	assert.Equal(t, "Ana Ruiz", out[0].AdminName)
}

func TestListUsersByAdmin(t *testing.T) {
	repos := seed(t)
	dir := analytics.NewDirectoryUseCase(repos)

	out, err := dir.ListUsersByAdmin(context.Background(), "admin-a")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "E1", out[0].UserID)

	_, err = dir.ListUsersByAdmin(context.Background(), "admin-gone")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
