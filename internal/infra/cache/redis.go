// Package cache holds the Redis-backed stores.
package cache

import (
	"context"
	"log/slog"
	"strings"

	"taskgate/config"
	"taskgate/internal/domain/lifecycle"
	"taskgate/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ClientParams holds dependencies for NewClient, injected by Fx.
type ClientParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// NewClient connects to redis.url, which may be a redis:// URL or a bare
// host:port. It returns a nil client when no URL is configured.
func NewClient(params ClientParams) (*redis.Client, error) {
	if params.Config.Redis == nil || params.Config.Redis.URL == "" {
		params.Logger.Warn("Redis is not configured, login lockout is disabled")

		return nil, nil
	}

	client, err := connect(params.Config.Redis.URL)
	if err != nil {
		return nil, err
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("Redis connection established")

			return nil
		},
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing redis connection")

			return errors.Wrap(client.Close(), "failed to close redis")
		},
	})

	return client, nil
}

func connect(redisURL string) (*redis.Client, error) {
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, errors.Wrap(err, "parse redis url")
		}

		return redis.NewClient(opt), nil
	}

	return redis.NewClient(&redis.Options{Addr: redisURL}), nil
}
