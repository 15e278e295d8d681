package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/algo-odyssey/backend/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Locker is the advisory per-challenge lock that keeps two scheduler
// instances from processing the same challenge in one window. It is
// best-effort; the conditional lifecycle-flag updates remain the
// correctness backstop.
type Locker interface {
	TryLock(ctx context.Context, key string) (bool, error)
	Unlock(ctx context.Context, key string)
}

type redisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func NewLocker(client *redis.Client, cfg *config.Config) Locker {
	return &redisLocker{client: client, ttl: cfg.Scheduler.LockTTL}
}

func (l *redisLocker) TryLock(ctx context.Context, key string) (bool, error) {
	ok, err := l.client.SetNX(ctx, key, "locked", l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	return ok, nil
}

func (l *redisLocker) Unlock(ctx context.Context, key string) {
	if err := l.client.Del(ctx, key).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to release scheduler lock; TTL will expire it")
	}
}
