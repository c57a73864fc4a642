// Package redis reserva orderIds de pago en Redis para que dos réplicas no emitan el mismo.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/securepass-api/internal/application/billing"
	"github.com/jhoicas/securepass-api/pkg/config"
)

// ReservationTTL cuánto dura la reserva. Basta con cubrir la ventana entre generar el orderId e insertar el pago.
const ReservationTTL = 10 * time.Minute

const keyPrefix = "securepass:order_id:"

// Client subconjunto de go-redis que usa el reservador.
type Client interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.BoolCmd
}

// OrderIDReserver implementa billing.OrderIDReserver con SET NX + TTL.
type OrderIDReserver struct {
	client Client
	ttl    time.Duration
}

var _ billing.OrderIDReserver = (*OrderIDReserver)(nil)

// NewOrderIDReserver construye el reservador sobre un cliente existente.
func NewOrderIDReserver(client Client) *OrderIDReserver {
	return &OrderIDReserver{client: client, ttl: ReservationTTL}
}

// Reserve devuelve false si el orderId ya estaba reservado.
func (r *OrderIDReserver) Reserve(ctx context.Context, orderID string) (bool, error) {
	ok, err := r.client.SetNX(ctx, keyPrefix+orderID, "1", r.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis: reservar orderId: %w", err)
	}
	return ok, nil
}

// Connect abre el cliente y comprueba la conexión con PING.
func Connect(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}
