package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-gin-event-portal/internal/listing"

	"github.com/redis/go-redis/v9"
)

// Commit only lands when the caller still holds the newest sequence number.
var commitScript = redis.NewScript(`
	local screen_key = KEYS[1]
	local seq = tonumber(ARGV[1])
	local state = ARGV[2]
	local ttl_ms = tonumber(ARGV[3])

	local current = redis.call('HGET', screen_key, 'seq')
	if not current or tonumber(current) ~= seq then
		return 0 -- superseded
	end

	redis.call('HSET', screen_key, 'state', state)
	redis.call('PEXPIRE', screen_key, ttl_ms)
	return 1
`)

// RedisScreenStateStore keeps listing screen state in Redis so every portal
// replica serving the session sees the same page and filters.
type RedisScreenStateStore struct {
	client    *redis.Client
	namespace string
	ttl       time.Duration
}

var _ listing.StateStore = (*RedisScreenStateStore)(nil)

func NewRedisScreenStateStore(client *redis.Client, namespace string, ttl time.Duration) *RedisScreenStateStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisScreenStateStore{client: client, namespace: namespace, ttl: ttl}
}

// screen key
func (s *RedisScreenStateStore) getScreenKey(screen string) string {
	return fmt.Sprintf("portal:%s:screen:%s", s.namespace, screen)
}

func (s *RedisScreenStateStore) Load(ctx context.Context, screen string) (listing.ScreenState, bool, error) {
	raw, err := s.client.HGet(ctx, s.getScreenKey(screen), "state").Result()
	if err == redis.Nil {
		return listing.ScreenState{}, false, nil
	}
	if err != nil {
		return listing.ScreenState{}, false, err
	}
	var state listing.ScreenState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return listing.ScreenState{}, false, fmt.Errorf("invalid screen state: %w", err)
	}
	return state, true, nil
}

func (s *RedisScreenStateStore) Begin(ctx context.Context, screen string) (int64, error) {
	key := s.getScreenKey(screen)
	pipe := s.client.TxPipeline()
	incr := pipe.HIncrBy(ctx, key, "seq", 1)
	pipe.PExpire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func (s *RedisScreenStateStore) Commit(ctx context.Context, screen string, seq int64, state listing.ScreenState) (bool, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return false, fmt.Errorf("marshal screen state: %w", err)
	}
	res, err := commitScript.Run(ctx, s.client, []string{s.getScreenKey(screen)}, seq, string(raw), s.ttl.Milliseconds()).Int()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}

// Purge drops the saved state of every screen in the namespace. The seq field
// stays so a fetch begun before the purge can no longer commit.
func (s *RedisScreenStateStore) Purge(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, fmt.Sprintf("portal:%s:screen:*", s.namespace), 100).Iterator()
	pipe := s.client.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.HDel(ctx, iter.Val(), "state")
		n++
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	_, err := pipe.Exec(ctx)
	return err
}
