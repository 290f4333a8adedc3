package lock

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/ticket-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const retryInterval = 50 * time.Millisecond

var releaseScript = redis.NewScript(`
    -- KEYS[1] = lock key, ARGV[1] = owner token
    if redis.call("GET", KEYS[1]) == ARGV[1] then
        return redis.call("DEL", KEYS[1])
    end

    return 0
`)

// RedisLocker holds locks as Redis keys so every API instance shares them.
// A lock expires after ttl even if its holder never releases it.
type RedisLocker struct {
	client redis.UniversalClient
	logger *slog.Logger
	ttl    time.Duration
	wait   time.Duration
}

func NewRedisLocker(client redis.UniversalClient, logger *slog.Logger, ttl, wait time.Duration) *RedisLocker {
	return &RedisLocker{
		client: client,
		logger: logger,
		ttl:    ttl,
		wait:   wait,
	}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := lockKey(key)
	token := uuid.NewString()
	deadline := time.Now().Add(l.wait)

	for {
		acquired, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			return nil, err
		}

		if acquired {
			return func() { l.release(redisKey, token) }, nil
		}

		if !time.Now().Before(deadline) {
			return nil, domain.ErrScreeningBusy
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}
}

// release deletes the key only if it still carries our token, so a lock that
// expired and was taken by someone else is left alone.
func (l *RedisLocker) release(redisKey, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := releaseScript.Run(ctx, l.client, []string{redisKey}, token).Err()
	if err != nil {
		l.logger.Error("failed to release lock", "key", redisKey, "error", err)
	}
}

func lockKey(key string) string {
	return "lock:screening:" + key
}
