// Package subscription concentra las reglas de los paquetes (tier) de suscripción:
// duración del periodo contratado y cupos de administradores.
package subscription

import (
	"time"

	"github.com/jhoicas/securepass-api/internal/domain/entity"
)

// Duración del periodo por paquete, en días de calendario.
const (
	PremiumPeriodDays  = 366
	StandardPeriodDays = 31
)

// StarterAdminSeats cupo de AdminUsers para el paquete Starter.
const StarterAdminSeats = 5

// IsValidPackage informa si el paquete es uno de los conocidos.
func IsValidPackage(pkg string) bool {
	switch pkg {
	case entity.PackageStarter, entity.PackageEssential, entity.PackagePremium:
		return true
	}
	return false
}

// PeriodDays devuelve la duración del periodo del paquete. ok=false si el paquete no existe.
func PeriodDays(pkg string) (days int, ok bool) {
	switch pkg {
	case entity.PackagePremium:
		return PremiumPeriodDays, true
	case entity.PackageStarter, entity.PackageEssential:
		return StandardPeriodDays, true
	}
	return 0, false
}

// ExpirationFrom calcula la fecha de vencimiento a partir de from (aprobación o renovación).
// Premium: +366 días; Starter/Essential: +31 días.
func ExpirationFrom(pkg string, from time.Time) (time.Time, bool) {
	days, ok := PeriodDays(pkg)
	if !ok {
		return time.Time{}, false
	}
	return from.AddDate(0, 0, days), true
}

// AdminSeatLimit devuelve el cupo de administradores del paquete; 0 significa sin límite.
func AdminSeatLimit(pkg string) int {
	if pkg == entity.PackageStarter {
		return StarterAdminSeats
	}
	return 0
}

// IsExpired informa si el periodo ya venció en now. Sin fecha de vencimiento nunca vence.
func IsExpired(expiredDate *time.Time, now time.Time) bool {
	return expiredDate != nil && !expiredDate.After(now)
}
