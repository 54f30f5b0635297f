package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"luciafood-express/order-svc/internal/service"
)

// RedisGuard holds a short-lived marker per session so a double-tapped
// checkout cannot submit twice.
type RedisGuard struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGuard(client *redis.Client, ttl time.Duration) *RedisGuard {
	return &RedisGuard{Client: client, TTL: ttl}
}

var _ service.CheckoutGuard = (*RedisGuard)(nil)

func (g *RedisGuard) key(sessionID string) string {
	return "checkout:inflight:" + sessionID
}

func (g *RedisGuard) Acquire(ctx context.Context, sessionID string) (bool, error) {
	return g.Client.SetNX(ctx, g.key(sessionID), "1", g.TTL).Result()
}

func (g *RedisGuard) Release(ctx context.Context, sessionID string) {
	g.Client.Del(ctx, g.key(sessionID))
}
