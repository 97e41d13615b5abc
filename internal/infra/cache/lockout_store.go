package cache

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"taskgate/config"
	"taskgate/internal/domain/service"
	"taskgate/internal/errors"

	"github.com/redis/go-redis/v9"
)

const (
	lockoutKeyPrefix   = "taskgate:lockout:"
	failedCountField   = "failed_count"
	lockedUntilField   = "locked_until"
	defaultThreshold   = 5
	defaultLockoutSpan = 15 * time.Minute
)

// redisLockoutStore counts failed logins in a Redis hash per key. The
// counter lives for one window from the first failure; reaching the
// threshold inside it locks the key for another window.
type redisLockoutStore struct {
	client    *redis.Client
	threshold int
	window    time.Duration
	now       func() time.Time
}

// NewLoginLockout returns the Redis store, or a no-op when client is nil.
func NewLoginLockout(client *redis.Client, cfg *config.Config, logger *slog.Logger) service.LoginLockout {
	if client == nil {
		return &noopLockout{logger: logger}
	}

	threshold, window := defaultThreshold, defaultLockoutSpan
	if cfg.Lockout != nil {
		if cfg.Lockout.Threshold > 0 {
			threshold = cfg.Lockout.Threshold
		}
		if cfg.Lockout.Window > 0 {
			window = cfg.Lockout.Window
		}
	}

	return &redisLockoutStore{client: client, threshold: threshold, window: window, now: time.Now}
}

func lockoutKey(key string) string {
	return lockoutKeyPrefix + key
}

func (s *redisLockoutStore) Check(ctx context.Context, key string) (time.Time, error) {
	raw, err := s.client.HGet(ctx, lockoutKey(key), lockedUntilField).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, errors.Wrap(err, "read lockout state")
	}

	unix, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || unix <= 0 {
		return time.Time{}, nil
	}

	lockedUntil := time.Unix(unix, 0).UTC()
	if !lockedUntil.After(s.now()) {
		return time.Time{}, nil
	}

	return lockedUntil, nil
}

func (s *redisLockoutStore) RecordFailure(ctx context.Context, key string) (bool, error) {
	redisKey := lockoutKey(key)

	count, err := s.client.HIncrBy(ctx, redisKey, failedCountField, 1).Result()
	if err != nil {
		return false, errors.Wrap(err, "record failed login")
	}

	if count < int64(s.threshold) {
		if count == 1 {
			if err := s.client.Expire(ctx, redisKey, s.window).Err(); err != nil {
				return false, errors.Wrap(err, "set lockout window")
			}
		}

		return false, nil
	}

	lockedUntil := s.now().Add(s.window).UTC()
	_, err = s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, redisKey, lockedUntilField, lockedUntil.Unix())
		p.Expire(ctx, redisKey, s.window)

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "lock login")
	}

	return true, nil
}

func (s *redisLockoutStore) Clear(ctx context.Context, key string) error {
	return errors.Wrap(s.client.Del(ctx, lockoutKey(key)).Err(), "clear lockout state")
}

// noopLockout never locks. Used when Redis is not configured.
type noopLockout struct {
	logger *slog.Logger
}

func (n *noopLockout) Check(context.Context, string) (time.Time, error) {
	return time.Time{}, nil
}

func (n *noopLockout) RecordFailure(_ context.Context, key string) (bool, error) {
	n.logger.Debug("Login failure not tracked, lockout disabled", slog.String("key", key))

	return false, nil
}

func (n *noopLockout) Clear(context.Context, string) error {
	return nil
}
