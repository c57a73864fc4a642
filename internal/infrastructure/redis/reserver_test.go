package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/securepass-api/internal/infrastructure/redis"
)

type fakeClient struct {
	keys map[string]time.Duration
	err  error
}

func (f *fakeClient) SetNX(ctx context.Context, key string, _ interface{}, ttl time.Duration) *goredis.BoolCmd {
	if f.err != nil {
		return goredis.NewBoolResult(false, f.err)
	}
	if _, taken := f.keys[key]; taken {
		return goredis.NewBoolResult(false, nil)
	}
	f.keys[key] = ttl
	return goredis.NewBoolResult(true, nil)
}

func TestReserve_FirstWins(t *testing.T) {
	c := &fakeClient{keys: map[string]time.Duration{}}
	r := redis.NewOrderIDReserver(c)
	ctx := context.Background()

	ok, err := r.Reserve(ctx, "1712345678901123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Reserve(ctx, "1712345678901123")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, redis.ReservationTTL, c.keys["securepass:order_id:1712345678901123"])
}

func TestReserve_ClientError(t *testing.T) {
	r := redis.NewOrderIDReserver(&fakeClient{err: errors.New("conexión rechazada")})
	ok, err := r.Reserve(context.Background(), "1")
	assert.Error(t, err)
	assert.False(t, ok)
}
