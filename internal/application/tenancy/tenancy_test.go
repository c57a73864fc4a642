package tenancy_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/securepass-api/internal/application/auth"
	"github.com/jhoicas/securepass-api/internal/application/dto"
	"github.com/jhoicas/securepass-api/internal/application/ports"
	"github.com/jhoicas/securepass-api/internal/application/tenancy"
	"github.com/jhoicas/securepass-api/internal/domain"
	"github.com/jhoicas/securepass-api/internal/domain/entity"
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
	notifier *recordingNotifier
	requests *tenancy.CompanyRequestUseCase
	company  *tenancy.CompanyUseCase
}

func newFixture() *fixture {
	store := memory.NewStore()
	notifier := &recordingNotifier{}
	effects := ports.Effects{Notifier: notifier, Log: zerolog.Nop()}
	return &fixture{
		store:    store,
		notifier: notifier,
		requests: tenancy.NewCompanyRequestUseCase(store.Repositories(), store, effects, zerolog.Nop()),
		company:  tenancy.NewCompanyUseCase(store.Repositories(), store, zerolog.Nop()),
	}
}

func acmeRequest(pkg string) dto.CreateCompanyRequestInput {
	return dto.CreateCompanyRequestInput{
		Name:        "Acme",
		Address:     "1 Main St",
		PackageType: pkg,
		Admins: []dto.RequestAdminInput{
			{FirstName: "Jo", LastName: "Lee", Email: "jo@acme.com"},
			{FirstName: "Ana", LastName: "Ruiz", Email: "ana@acme.com"},
		},
	}
}

// ─── Create ─────────────────────────────────────────────────────────────────

func TestCreate_Validation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	cases := map[string]dto.CreateCompanyRequestInput{
		"sin nombre":         {Address: "x", PackageType: "Premium", Admins: []dto.RequestAdminInput{{FirstName: "a", LastName: "b", Email: "c@d.e"}}},
		"sin admins":         {Name: "n", Address: "x", PackageType: "Premium"},
		"admin sin email":    {Name: "n", Address: "x", PackageType: "Premium", Admins: []dto.RequestAdminInput{{FirstName: "a", LastName: "b"}}},
		"sin paquete":        {Name: "n", Address: "x", Admins: []dto.RequestAdminInput{{FirstName: "a", LastName: "b", Email: "c@d.e"}}},
		"admin sin apellido": {Name: "n", Address: "x", PackageType: "Starter", Admins: []dto.RequestAdminInput{{FirstName: "a", Email: "c@d.e"}}},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.requests.Create(ctx, in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCreate_PersistsPending(t *testing.T) {
	f := newFixture()
	out, err := f.requests.Create(context.Background(), acmeRequest(entity.PackagePremium))
	require.NoError(t, err)

	assert.Equal(t, entity.RequestStatusPending, out.Status)
	require.Len(t, out.Admins, 2)
	assert.NotEmpty(t, out.Admins[0].ID)
}

// ─── ToggleStatus ───────────────────────────────────────────────────────────

func TestToggleStatus_ApprovePremium(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	req, err := f.requests.Create(ctx, acmeRequest(entity.PackagePremium))
	require.NoError(t, err)

	before := time.Now()
	res, err := f.requests.ToggleStatus(ctx, "super", req.ID, dto.ToggleCompanyRequestInput{
		Status:         tenancy.DecisionApprove,
		SelectedAdmins: []string{req.Admins[0].ID},
	})
	require.NoError(t, err)
	require.NotNil(t, res.Approval)

	company := res.Approval.Company
	assert.Equal(t, entity.PackagePremium, company.Package)
	assert.Equal(t, entity.CompanyStatusActive, company.Status)
	require.NotNil(t, company.ExpiredDate)
	assert.WithinDuration(t, before.AddDate(0, 0, 366), *company.ExpiredDate, 5*time.Second)

	require.Len(t, res.Approval.Admins, 1)
	admin := res.Approval.Admins[0]
	assert.Equal(t, "jo@acme.com", admin.Email)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.Equal(t, []string{admin.ID}, company.AdminIDs)

	repos := f.store.Repositories()
	stored, err := repos.AdminUsers.GetByEmail(ctx, "jo@acme.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, auth.CheckPassword(stored.PasswordHash, "Jo@1234"))

	persisted, err := repos.Companies.GetByID(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{admin.ID}, persisted.Admins)

	updated, err := repos.CompanyRequests.GetByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusApproved, updated.Status)

	require.Len(t, f.notifier.registrations, 1)
	assert.Equal(t, "Jo@1234", f.notifier.registrations[0].Password)
	assert.Equal(t, ports.AudienceAdmin, f.notifier.registrations[0].Audience)
}

func TestToggleStatus_ApproveStarterAddsThirtyOneDays(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	req, err := f.requests.Create(ctx, acmeRequest(entity.PackageStarter))
	require.NoError(t, err)

	before := time.Now()
	res, err := f.requests.ToggleStatus(ctx, "super", req.ID, dto.ToggleCompanyRequestInput{Status: tenancy.DecisionApprove})
	require.NoError(t, err)
	assert.WithinDuration(t, before.AddDate(0, 0, 31), *res.Approval.Company.ExpiredDate, 5*time.Second)
	assert.Empty(t, res.Approval.Admins)
}

func TestToggleStatus_SkipsUnknownAdminIDs(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	req, err := f.requests.Create(ctx, acmeRequest(entity.PackageEssential))
	require.NoError(t, err)

	res, err := f.requests.ToggleStatus(ctx, "super", req.ID, dto.ToggleCompanyRequestInput{
		Status:         tenancy.DecisionApprove,
		SelectedAdmins: []string{"no-existe", req.Admins[1].ID},
	})
	require.NoError(t, err)
	require.Len(t, res.Approval.Admins, 1)
	assert.Equal(t, "ana@acme.com", res.Approval.Admins[0].Email)
}

func TestToggleStatus_RepeatedAdminIDProvisionsOnce(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	req, err := f.requests.Create(ctx, acmeRequest(entity.PackageEssential))
	require.NoError(t, err)

	jo, ana := req.Admins[0].ID, req.Admins[1].ID
	res, err := f.requests.ToggleStatus(ctx, "super", req.ID, dto.ToggleCompanyRequestInput{
		Status:         tenancy.DecisionApprove,
		SelectedAdmins: []string{jo, ana, jo},
	})
	require.NoError(t, err)
	require.Len(t, res.Approval.Admins, 2)
	assert.Equal(t, "jo@acme.com", res.Approval.Admins[0].Email)
	assert.Equal(t, "ana@acme.com", res.Approval.Admins[1].Email)
	assert.Len(t, f.notifier.registrations, 2)

	updated, err := f.store.Repositories().CompanyRequests.GetByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusApproved, updated.Status)
}

func TestToggleStatus_RelinksPayments(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	req, err := f.requests.Create(ctx, acmeRequest(entity.PackagePremium))
	require.NoError(t, err)

	repos := f.store.Repositories()
	require.NoError(t, repos.Payments.Create(ctx, &entity.Payment{
		ID: "p1", OrderID: "1700000000000123", CompanyRequestID: req.ID, Amount: decimal.NewFromInt(100),
	}))

	res, err := f.requests.ToggleStatus(ctx, "super", req.ID, dto.ToggleCompanyRequestInput{Status: tenancy.DecisionApprove})
	require.NoError(t, err)

	payments, err := repos.Payments.ListByCompany(ctx, res.Approval.Company.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "1700000000000123", payments[0].OrderID)
}

func TestToggleStatus_InvalidStatus(t *testing.T) {
	f := newFixture()
	_, err := f.requests.ToggleStatus(context.Background(), "super", "x", dto.ToggleCompanyRequestInput{Status: "Maybe"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestToggleStatus_NotFound(t *testing.T) {
	f := newFixture()
	_, err := f.requests.ToggleStatus(context.Background(), "super", "missing", dto.ToggleCompanyRequestInput{Status: tenancy.DecisionReject})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestToggleStatus_TerminalRequestsAreGuarded(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	req, err := f.requests.Create(ctx, acmeRequest(entity.PackagePremium))
	require.NoError(t, err)

	res, err := f.requests.ToggleStatus(ctx, "super", req.ID, dto.ToggleCompanyRequestInput{Status: tenancy.DecisionReject})
	require.NoError(t, err)
	assert.Nil(t, res.Approval)
	assert.Equal(t, entity.RequestStatusRejected, res.Request.Status)

	_, err = f.requests.ToggleStatus(ctx, "super", req.ID, dto.ToggleCompanyRequestInput{Status: tenancy.DecisionApprove})
	assert.ErrorIs(t, err, domain.ErrRequestNotPending)

	companies, err := f.store.Repositories().Companies.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, companies)
}

func TestToggleStatus_UnknownPackageWritesNothing(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	req, err := f.requests.Create(ctx, acmeRequest("Gold"))
	require.NoError(t, err)

	_, err = f.requests.ToggleStatus(ctx, "super", req.ID, dto.ToggleCompanyRequestInput{
		Status: tenancy.DecisionApprove, SelectedAdmins: []string{req.Admins[0].ID},
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	stored, err := f.store.Repositories().CompanyRequests.GetByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusPending, stored.Status)
	assert.Empty(t, f.notifier.registrations)
}

func TestToggleStatus_EmailCollisionRollsBack(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	repos := f.store.Repositories()
	require.NoError(t, repos.Users.Create(ctx, &entity.User{ID: "u1", Email: "ana@acme.com", UserID: "E1"}))

	req, err := f.requests.Create(ctx, acmeRequest(entity.PackagePremium))
	require.NoError(t, err)

	_, err = f.requests.ToggleStatus(ctx, "super", req.ID, dto.ToggleCompanyRequestInput{
		Status: tenancy.DecisionApprove, SelectedAdmins: []string{req.Admins[0].ID, req.Admins[1].ID},
	})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	admin, err := repos.AdminUsers.GetByEmail(ctx, "jo@acme.com")
	require.NoError(t, err)
	assert.Nil(t, admin)
	companies, err := repos.Companies.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, companies)
	stored, _ := repos.CompanyRequests.GetByID(ctx, req.ID)
	assert.Equal(t, entity.RequestStatusPending, stored.Status)
}
