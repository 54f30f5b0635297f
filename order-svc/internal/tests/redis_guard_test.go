package tests

import (
	"context"
	"testing"
	"time"

	"luciafood-express/order-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuard(t *testing.T) (*storage.RedisGuard, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return storage.NewRedisGuard(client, 30*time.Second), mr
}

func TestRedisGuard_AcquireIsExclusivePerSession(t *testing.T) {
	guard, _ := newGuard(t)
	ctx := context.Background()

	acquired, err := guard.Acquire(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, acquired)

	again, err := guard.Acquire(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, again)

	// Another session is unaffected.
	other, err := guard.Acquire(ctx, "s2")
	require.NoError(t, err)
	assert.True(t, other)
}

func TestRedisGuard_ReleaseAllowsRetry(t *testing.T) {
	guard, _ := newGuard(t)
	ctx := context.Background()

	_, err := guard.Acquire(ctx, "s1")
	require.NoError(t, err)
	guard.Release(ctx, "s1")

	acquired, err := guard.Acquire(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestRedisGuard_MarkerExpires(t *testing.T) {
	guard, mr := newGuard(t)
	ctx := context.Background()

	_, err := guard.Acquire(ctx, "s1")
	require.NoError(t, err)

	mr.FastForward(time.Minute)

	acquired, err := guard.Acquire(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, acquired)
}
