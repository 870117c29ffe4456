package locker

//go:generate go run go.uber.org/mock/mockgen -source=./locker.go -destination=./mocks/locker_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"spa/config"
	"spa/infras/otel"
	"spa/shared/failure"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName        = "locker"
	otelLockKeyAttribute = "lock.key"
	keyPrefix            = "lock:"
	retryInterval        = 50 * time.Millisecond
)

var ErrNotHeld = errors.New("lock not held")

// releaseScript deletes the key only while it still carries the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

type redisLocker struct {
	client *redis.Client
	otel   otel.Otel
	ttl    time.Duration
	wait   time.Duration
}

func New(client *redis.Client, cfg *config.Config, ot otel.Otel) Locker {
	return &redisLocker{
		client: client,
		otel:   ot,
		ttl:    time.Duration(cfg.Assignment.LockTTLSeconds) * time.Second,
		wait:   time.Duration(cfg.Assignment.LockWaitSeconds) * time.Second,
	}
}

// WithLock runs fn while holding the named lock, waiting up to the configured time to obtain it.
func (l *redisLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) (err error) {
	ctx, scope := l.otel.NewScope(ctx, otelScopeName, otelScopeName+".WithLock")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	lockKey := keyPrefix + key
	scope.SetAttribute(otelLockKeyAttribute, lockKey)

	token, err := l.acquire(ctx, lockKey)
	if err != nil {
		return err
	}

	defer func() {
		releaseCtx := context.WithoutCancel(ctx)
		if releaseErr := l.release(releaseCtx, lockKey, token); releaseErr != nil {
			log.Warn().Err(releaseErr).Str("key", lockKey).Msg("failed to release lock")
		}
	}()

	return fn(ctx)
}

func (l *redisLocker) acquire(ctx context.Context, key string) (string, error) {
	token := uuid.NewString()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to acquire lock")

			return "", fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}

		if ok {
			return token, nil
		}

		if time.Now().After(deadline) {
			log.Warn().Str("key", key).Dur("waited", l.wait).Msg("lock is busy")

			return "", failure.Conflict(fmt.Sprintf("%s is being recomputed, try again", key)) //nolint:wrapcheck
		}

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("waiting for lock %s: %w", key, ctx.Err())
		case <-time.After(retryInterval):
		}
	}
}

func (l *redisLocker) release(ctx context.Context, key, token string) error {
	deleted, err := releaseScript.Run(ctx, l.client, []string{key}, token).Int()
	if err != nil {
		return fmt.Errorf("failed to release lock %s: %w", key, err)
	}

	if deleted == 0 {
		return ErrNotHeld
	}

	return nil
}
