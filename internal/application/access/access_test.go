package access_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/securepass-api/internal/application/access"
	"github.com/jhoicas/securepass-api/internal/application/dto"
	"github.com/jhoicas/securepass-api/internal/application/ports"
	"github.com/jhoicas/securepass-api/internal/domain"
	"github.com/jhoicas/securepass-api/internal/domain/entity"
	"github.com/jhoicas/securepass-api/internal/domain/repository"
	"github.com/jhoicas/securepass-api/internal/infrastructure/memory"
)

type recordingNotifier struct {
	mu      sync.Mutex
	granted []ports.PermissionNotice
}

func (n *recordingNotifier) NotifyRegistration(context.Context, ports.RegistrationNotice) error {
	return nil
}

func (n *recordingNotifier) NotifyPermissionGranted(_ context.Context, notice ports.PermissionNotice) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.granted = append(n.granted, notice)
	return nil
}

type fixture struct {
	repos    repository.Repositories
	notifier *recordingNotifier
	perms    *access.PermissionUseCase
	admin    dto.Principal
}

// newFixture siembra dos empresas: A (usuario u-a, puerta d-a) y B (puerta d-b).
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	repos := store.Repositories()

	require.NoError(t, repos.Companies.Create(ctx, &entity.Company{ID: "A", Name: "Alpha", Status: entity.CompanyStatusActive}))
	require.NoError(t, repos.Companies.Create(ctx, &entity.Company{ID: "B", Name: "Beta", Status: entity.CompanyStatusActive}))
	require.NoError(t, repos.Users.Create(ctx, &entity.User{ID: "u-a", FirstName: "Jo", LastName: "Lee", Email: "jo@a.com", UserID: "E1", CompanyID: "A"}))
	require.NoError(t, repos.Doors.Create(ctx, &entity.Door{ID: "d-a", DoorCode: "A-101", RoomName: "Lab", Location: "HQ", CompanyID: "A"}))
	require.NoError(t, repos.Doors.Create(ctx, &entity.Door{ID: "d-b", DoorCode: "B-201", RoomName: "Vault", Location: "HQ", CompanyID: "B"}))

	notifier := &recordingNotifier{}
	effects := ports.Effects{Notifier: notifier, Log: zerolog.Nop()}
	return &fixture{
		repos:    repos,
		notifier: notifier,
		perms:    access.NewPermissionUseCase(repos, store, effects, zerolog.Nop()),
		admin:    dto.Principal{ID: "admin-a", CompanyID: "A", Role: entity.RoleAdmin},
	}
}

func (f *fixture) createPending(t *testing.T) *dto.PermissionRequestResponse {
	t.Helper()
	req, err := f.perms.Create(context.Background(), f.admin, dto.CreatePermissionInput{
		UserID: "u-a", DoorID: "d-a", Date: "2026-03-10", InTime: "09:00", OutTime: "17:00", Message: "auditoría",
	})
	require.NoError(t, err)
	return req
}

// ─── Make (autoaprobada) ────────────────────────────────────────────────────

func TestMake_TenancyMismatchPersistsNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.perms.Make(ctx, f.admin, dto.MakePermissionInput{
		UserID: "u-a", DoorID: "d-b", Date: "2026-03-10", InTime: "09:00", OutTime: "10:00",
	})
	require.ErrorIs(t, err, domain.ErrTenancyMismatch)

	list, err := f.repos.PermissionRequests.ListByUser(ctx, "u-a")
	require.NoError(t, err)
	assert.Empty(t, list)
	user, _ := f.repos.Users.GetByID(ctx, "u-a")
	assert.Empty(t, user.DoorAccess)
	assert.Empty(t, user.PendingRequests)
}

func TestMake_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.perms.Make(context.Background(), f.admin, dto.MakePermissionInput{
		UserID: "nobody", DoorID: "d-a", Date: "2026-03-10", InTime: "09:00", OutTime: "10:00",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.perms.Make(context.Background(), f.admin, dto.MakePermissionInput{
		UserID: "u-a", DoorID: "nodoor", Date: "2026-03-10", InTime: "09:00", OutTime: "10:00",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMake_AutoApprovesAndGrants(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.perms.Make(ctx, f.admin, dto.MakePermissionInput{
		UserID: "u-a", DoorID: "d-a", Date: "2026-03-10", InTime: "09:00", OutTime: "10:00", Message: "visita",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusApproved, out.Status)
	assert.Equal(t, "A-101", out.DoorCode)

	user, _ := f.repos.Users.GetByID(ctx, "u-a")
	require.Len(t, user.DoorAccess, 1)
	assert.Equal(t, out.ID, user.DoorAccess[0].RequestID)
	assert.Contains(t, user.PendingRequests, out.ID)

	door, _ := f.repos.Doors.GetByID(ctx, "d-a")
	assert.Equal(t, []string{"u-a"}, door.ApprovedUsers)
	require.Len(t, f.notifier.granted, 1)
	assert.Equal(t, "jo@a.com", f.notifier.granted[0].Email)
}

func TestMake_UserCannotActForOthers(t *testing.T) {
	f := newFixture(t)
	caller := dto.Principal{ID: "someone-else", CompanyID: "A", Role: entity.RoleUser}
	_, err := f.perms.Make(context.Background(), caller, dto.MakePermissionInput{
		UserID: "u-a", DoorID: "d-a", Date: "2026-03-10", InTime: "09:00", OutTime: "10:00",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMake_InvalidSlot(t *testing.T) {
	f := newFixture(t)
	_, err := f.perms.Make(context.Background(), f.admin, dto.MakePermissionInput{
		UserID: "u-a", DoorID: "d-a", Date: "mañana", InTime: "09:00", OutTime: "10:00",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.perms.Make(context.Background(), f.admin, dto.MakePermissionInput{
		UserID: "u-a", DoorID: "d-a", Date: "2026-03-10", InTime: "11:00", OutTime: "10:00",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ─── Approve / Reject ───────────────────────────────────────────────────────

func TestApprove_AppliesAllMutations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := f.createPending(t)

	user, _ := f.repos.Users.GetByID(ctx, "u-a")
	require.Equal(t, []string{req.ID}, user.PendingRequests)

	out, err := f.perms.Approve(ctx, f.admin, req.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusApproved, out.Status)

	user, _ = f.repos.Users.GetByID(ctx, "u-a")
	require.Len(t, user.DoorAccess, 1)
	grant := user.DoorAccess[0]
	assert.Equal(t, "d-a", grant.DoorID)
	assert.Equal(t, "A-101", grant.DoorCode)
	assert.Equal(t, "09:00", grant.InTime)
	assert.Equal(t, "17:00", grant.OutTime)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), grant.Date)
	assert.NotContains(t, user.PendingRequests, req.ID)

	door, _ := f.repos.Doors.GetByID(ctx, "d-a")
	assert.Contains(t, door.ApprovedUsers, "u-a")

	events, err := f.repos.Audit.ListByCompany(ctx, "A", 0)
	require.NoError(t, err)
	require.NotEmpty(t, events)
	assert.Equal(t, entity.AuditPermissionApproved, events[0].Action)
	assert.Equal(t, req.ID, events[0].TargetID)

	_, err = f.perms.Approve(ctx, f.admin, req.ID)
	assert.ErrorIs(t, err, domain.ErrRequestNotPending)
	user, _ = f.repos.Users.GetByID(ctx, "u-a")
	assert.Len(t, user.DoorAccess, 1)
}

func TestApprove_ConcurrentKeepsEveryGrant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	const n = 8
	reqs := make([]*dto.PermissionRequestResponse, n)
	for i := range reqs {
		reqs[i] = f.createPending(t)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 2*n)
	for _, req := range reqs {
		wg.Add(2)
		go func(id string) {
			defer wg.Done()
			_, err := f.perms.Approve(ctx, f.admin, id)
			errs <- err
		}(req.ID)
		go func() {
			defer wg.Done()
			_, err := f.perms.Make(ctx, f.admin, dto.MakePermissionInput{
				UserID: "u-a", DoorID: "d-a", Date: "2026-03-11", InTime: "09:00", OutTime: "10:00",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	user, _ := f.repos.Users.GetByID(ctx, "u-a")
	assert.Len(t, user.DoorAccess, 2*n)
	assert.Len(t, user.PendingRequests, n)
}

func TestApprove_OtherCompanyAdmin(t *testing.T) {
	f := newFixture(t)
	req := f.createPending(t)
	other := dto.Principal{ID: "admin-b", CompanyID: "B", Role: entity.RoleAdmin}

	_, err := f.perms.Approve(context.Background(), other, req.ID)
	assert.ErrorIs(t, err, domain.ErrTenancyMismatch)
}

func TestApprove_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.perms.Approve(context.Background(), f.admin, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReject_IsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := f.createPending(t)

	first, err := f.perms.Reject(ctx, f.admin, req.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusRejected, first.Status)

	second, err := f.perms.Reject(ctx, f.admin, req.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusRejected, second.Status)

	user, _ := f.repos.Users.GetByID(ctx, "u-a")
	assert.Empty(t, user.PendingRequests)
	assert.Empty(t, user.DoorAccess)

	rejected, err := f.perms.GetRejectedByUser(ctx, f.admin, "u-a")
	require.NoError(t, err)
	require.Len(t, rejected, 1)
}

func TestReject_DoesNotResurrectApproved(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := f.createPending(t)
	_, err := f.perms.Approve(ctx, f.admin, req.ID)
	require.NoError(t, err)

	_, err = f.perms.Reject(ctx, f.admin, req.ID)
	assert.ErrorIs(t, err, domain.ErrRequestNotPending)

	stored, _ := f.repos.PermissionRequests.GetByID(ctx, req.ID)
	assert.Equal(t, entity.RequestStatusApproved, stored.Status)
}

// ─── RemoveDoorAccess ───────────────────────────────────────────────────────

func TestRemoveDoorAccess_DeletesOnlyOriginatingRequest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.createPending(t)
	_, err := f.perms.Approve(ctx, f.admin, first.ID)
	require.NoError(t, err)
	second, err := f.perms.Create(ctx, f.admin, dto.CreatePermissionInput{
		UserID: "u-a", DoorID: "d-a", Date: "2026-03-11", InTime: "08:00", OutTime: "12:00",
	})
	require.NoError(t, err)
	_, err = f.perms.Approve(ctx, f.admin, second.ID)
	require.NoError(t, err)

	user, _ := f.repos.Users.GetByID(ctx, "u-a")
	require.Len(t, user.DoorAccess, 2)
	var target entity.DoorAccess
	for _, da := range user.DoorAccess {
		if da.RequestID == first.ID {
			target = da
		}
	}
	require.NotEmpty(t, target.ID)

	out, err := f.perms.RemoveDoorAccess(ctx, f.admin, "u-a", target.ID)
	require.NoError(t, err)
	require.Len(t, out.DoorAccess, 1)
	assert.Equal(t, second.ID, out.DoorAccess[0].RequestID)

	gone, _ := f.repos.PermissionRequests.GetByID(ctx, first.ID)
	assert.Nil(t, gone)
	kept, _ := f.repos.PermissionRequests.GetByID(ctx, second.ID)
	assert.NotNil(t, kept)

	door, _ := f.repos.Doors.GetByID(ctx, "d-a")
	assert.Contains(t, door.ApprovedUsers, "u-a", "sigue teniendo otra concesión para la puerta")

	_, err = f.perms.RemoveDoorAccess(ctx, f.admin, "u-a", out.DoorAccess[0].ID)
	require.NoError(t, err)
	door, _ = f.repos.Doors.GetByID(ctx, "d-a")
	assert.NotContains(t, door.ApprovedUsers, "u-a")
}

func TestRemoveDoorAccess_UnknownGrant(t *testing.T) {
	f := newFixture(t)
	_, err := f.perms.RemoveDoorAccess(context.Background(), f.admin, "u-a", "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─── Consultas ──────────────────────────────────────────────────────────────

func TestGetPending_ScopedByCompany(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createPending(t)

	list, err := f.perms.GetPending(ctx, f.admin)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = f.perms.GetPending(ctx, dto.Principal{ID: "admin-b", CompanyID: "B", Role: entity.RoleAdmin})
	require.NoError(t, err)
	assert.Empty(t, list)
}

// ─── Historial de accesos ───────────────────────────────────────────────────

func TestAccessLog_RequiresGrantForDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	logs := access.NewAccessLogUseCase(f.repos, nil)

	entry := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	_, err := logs.Record(ctx, f.admin, dto.RecordAccessInput{UserID: "u-a", DoorID: "d-a", EntryTime: entry})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	req := f.createPending(t)
	_, err = f.perms.Approve(ctx, f.admin, req.ID)
	require.NoError(t, err)

	ev, err := logs.Record(ctx, f.admin, dto.RecordAccessInput{UserID: "u-a", DoorID: "d-a", EntryTime: entry})
	require.NoError(t, err)
	assert.Equal(t, "A-101", ev.DoorCode)

	recent, err := logs.RecentForCompany(ctx, f.admin)
	require.NoError(t, err)
	assert.Len(t, recent, 1)

	_, err = logs.Record(ctx, f.admin, dto.RecordAccessInput{UserID: "u-a", DoorID: "d-b", EntryTime: entry})
	assert.ErrorIs(t, err, domain.ErrTenancyMismatch)
}
