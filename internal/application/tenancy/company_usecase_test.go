package tenancy_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/securepass-api/internal/application/dto"
	"github.com/jhoicas/securepass-api/internal/application/tenancy"
	"github.com/jhoicas/securepass-api/internal/domain"
	"github.com/jhoicas/securepass-api/internal/domain/entity"
)

func TestCompanyCreate_InvalidPackage(t *testing.T) {
	f := newFixture()
	_, err := f.company.Create(context.Background(), dto.CreateCompanyRequest{Name: "Acme", Address: "x", Package: "Gold"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.company.Create(context.Background(), dto.CreateCompanyRequest{Name: "Acme", Package: "Premium"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCompanyRenewExpiration_ExtendsFromCurrentExpiry(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c, err := f.company.Create(ctx, dto.CreateCompanyRequest{Name: "Acme", Address: "x", Package: entity.PackageEssential})
	require.NoError(t, err)

	out, err := f.company.RenewExpiration(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ExpiredDate.AddDate(0, 0, 31), out.ExpiredDate)
}

func TestCompanyDelete_Cascades(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	repos := f.store.Repositories()
	c, err := f.company.Create(ctx, dto.CreateCompanyRequest{Name: "Acme", Address: "x", Package: entity.PackageStarter})
	require.NoError(t, err)
	require.NoError(t, repos.AdminUsers.Create(ctx, &entity.AdminUser{ID: "a1", Email: "a@acme.com", CompanyID: c.ID}))
	require.NoError(t, repos.Users.Create(ctx, &entity.User{ID: "u1", Email: "u@acme.com", UserID: "E1", CompanyID: c.ID}))
	require.NoError(t, repos.Doors.Create(ctx, &entity.Door{ID: "d1", DoorCode: "A1", CompanyID: c.ID}))

	require.NoError(t, f.company.Delete(ctx, "super", c.ID))

	admin, _ := repos.AdminUsers.GetByID(ctx, "a1")
	user, _ := repos.Users.GetByID(ctx, "u1")
	door, _ := repos.Doors.GetByID(ctx, "d1")
	assert.Nil(t, admin)
	assert.Nil(t, user)
	assert.Nil(t, door)

	err = f.company.Delete(ctx, "super", c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyLocationsAndToggle(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c, err := f.company.Create(ctx, dto.CreateCompanyRequest{Name: "Acme", Address: "x", Package: entity.PackagePremium})
	require.NoError(t, err)

	out, err := f.company.AddLocation(ctx, dto.LocationRequest{CompanyID: c.ID, Location: "HQ"})
	require.NoError(t, err)
	assert.Equal(t, []string{"HQ"}, out.Locations)

	_, err = f.company.AddLocation(ctx, dto.LocationRequest{CompanyID: c.ID, Location: "HQ"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	out, err = f.company.RemoveLocation(ctx, dto.LocationRequest{CompanyID: c.ID, Location: "HQ"})
	require.NoError(t, err)
	assert.Empty(t, out.Locations)

	st, err := f.company.ToggleStatus(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CompanyStatusInactive, st.Company.Status)
}

func TestCheckNameAddressUnique(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c, err := f.company.Create(ctx, dto.CreateCompanyRequest{Name: "Acme", Address: "1 Main St", Package: entity.PackagePremium})
	require.NoError(t, err)

	ok, err := f.company.CheckNameAddressUnique(ctx, "Acme", "1 Main St", "")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.company.CheckNameAddressUnique(ctx, "Acme", "1 Main St", c.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestExpirySweeper_SweepOnce(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	past := time.Now().Add(-time.Hour)
	require.NoError(t, f.store.Repositories().Companies.Create(ctx, &entity.Company{
		ID: "c1", Status: entity.CompanyStatusActive, Package: entity.PackageStarter, ExpiredDate: &past,
	}))

	sweeper := tenancy.NewExpirySweeper(f.store.Repositories().Companies, time.Minute, zerolog.Nop())
	assert.EqualValues(t, 1, sweeper.SweepOnce(ctx))
	assert.EqualValues(t, 0, sweeper.SweepOnce(ctx))
}

func TestTrialRequests_PaginatesAndRejectsDuplicates(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	uc := tenancy.NewTrialRequestUseCase(f.store.Repositories().TrialRequests)

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		_, err := uc.Create(ctx, dto.CreateTrialRequestInput{CompanyName: "Co", Address: "x", FirstName: "F", LastName: "L", Email: email})
		require.NoError(t, err)
	}
	_, err := uc.Create(ctx, dto.CreateTrialRequestInput{CompanyName: "Co", Address: "x", FirstName: "F", LastName: "L", Email: "A@x.com"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	page, err := uc.List(ctx, dto.PageRequest{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, dto.Pagination{CurrentPage: 2, TotalPages: 2, TotalRequests: 3}, page.Pagination)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "a@x.com", page.Data[0].Email)
}
