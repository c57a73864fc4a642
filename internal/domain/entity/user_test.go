package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/securepass-api/internal/domain/entity"
)

func TestUserHasAccess(t *testing.T) {
	u := &entity.User{DoorAccess: []entity.DoorAccess{
		{ID: "g1", DoorID: "d1", Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)},
	}}

	bogota := time.FixedZone("COT", -5*3600)
	assert.True(t, u.HasAccess("d1", time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC)))
	assert.True(t, u.HasAccess("d1", time.Date(2026, 3, 10, 18, 0, 0, 0, bogota)), "23:00 UTC sigue siendo el mismo día")
	assert.False(t, u.HasAccess("d1", time.Date(2026, 3, 10, 20, 0, 0, 0, bogota)), "01:00 UTC del día siguiente")
	assert.False(t, u.HasAccess("d2", time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)))

	_, ok := u.FindDoorAccess("g1")
	assert.True(t, ok)
	_, ok = u.FindDoorAccess("g2")
	assert.False(t, ok)
}

func TestCompanyLocations(t *testing.T) {
	c := &entity.Company{Status: entity.CompanyStatusActive, Locations: []string{"HQ", "Norte", "HQ"}}
	assert.True(t, c.HasLocation("Norte"))

	c.RemoveLocation("HQ")
	assert.Equal(t, []string{"Norte"}, c.Locations)

	c.ToggleStatus()
	assert.Equal(t, entity.CompanyStatusInactive, c.Status)
	c.ToggleStatus()
	assert.Equal(t, entity.CompanyStatusActive, c.Status)
}
