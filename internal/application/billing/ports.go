package billing

import "context"

// OrderIDReserver reserva un orderId candidato para cerrar la carrera check-then-act entre réplicas.
// Reserve devuelve false si otro proceso ya lo reservó.
type OrderIDReserver interface {
	Reserve(ctx context.Context, orderID string) (bool, error)
}
