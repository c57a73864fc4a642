package subscription_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/securepass-api/internal/domain/entity"
	"github.com/jhoicas/securepass-api/internal/domain/subscription"
)

// ──────────────────────────────────────────────────────────────────────────────
// TestExpirationFrom fija la duración de cada paquete en días de calendario.
// Premium suma 366 días aunque el año no sea bisiesto.
// ──────────────────────────────────────────────────────────────────────────────
func TestExpirationFrom(t *testing.T) {
	from := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	cases := map[string]time.Time{
		entity.PackagePremium:   time.Date(2026, 1, 16, 10, 0, 0, 0, time.UTC),
		entity.PackageEssential: time.Date(2025, 2, 15, 10, 0, 0, 0, time.UTC),
		entity.PackageStarter:   time.Date(2025, 2, 15, 10, 0, 0, 0, time.UTC),
	}
	for pkg, want := range cases {
		got, ok := subscription.ExpirationFrom(pkg, from)
		assert.True(t, ok, pkg)
		assert.Equal(t, want, got, pkg)
	}

	_, ok := subscription.ExpirationFrom("Gold", from)
	assert.False(t, ok)
}

func TestAdminSeatLimit(t *testing.T) {
	assert.Equal(t, 5, subscription.AdminSeatLimit(entity.PackageStarter))
	assert.Zero(t, subscription.AdminSeatLimit(entity.PackageEssential))
	assert.Zero(t, subscription.AdminSeatLimit(entity.PackagePremium))
}

func TestIsExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	assert.False(t, subscription.IsExpired(nil, now))
	assert.True(t, subscription.IsExpired(&past, now))
	assert.True(t, subscription.IsExpired(&now, now))
	assert.False(t, subscription.IsExpired(&future, now))
}
