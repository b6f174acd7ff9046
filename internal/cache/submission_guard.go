package cache

import (
	"context"
	"fmt"
	"time"

	apperrors "go-gin-event-portal/pkg/app_errors"
	"go-gin-event-portal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Only the holder of the lock token may release it.
var releaseScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

// RedisSubmissionGuard keeps a form submit from running twice at once across replicas.
type RedisSubmissionGuard struct {
	client    *redis.Client
	namespace string
	ttl       time.Duration
}

func NewRedisSubmissionGuard(client *redis.Client, namespace string, ttl time.Duration) *RedisSubmissionGuard {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RedisSubmissionGuard{client: client, namespace: namespace, ttl: ttl}
}

func (g *RedisSubmissionGuard) getLockKey(key string) string {
	return fmt.Sprintf("portal:%s:submit:%s", g.namespace, key)
}

func (g *RedisSubmissionGuard) Acquire(ctx context.Context, key string) (func(), error) {
	lockKey := g.getLockKey(key)
	token := uuid.NewString()
	ok, err := g.client.SetNX(ctx, lockKey, token, g.ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrSubmissionInProgress
	}
	return func() {
		// release must run even if the request context is gone
		if err := releaseScript.Run(context.Background(), g.client, []string{lockKey}, token).Err(); err != nil {
			logger.WithComponent("cache").Error("failed to release submission lock",
				zap.String("key", lockKey),
				zap.Error(err),
			)
		}
	}, nil
}
