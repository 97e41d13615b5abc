package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"taskgate/config"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewLoginLockout_NilClientIsNoop(t *testing.T) {
	lockout := NewLoginLockout(nil, &config.Config{}, discardLogger())
	ctx := context.Background()

	for range 10 {
		locked, err := lockout.RecordFailure(ctx, "ada@example.com")
		require.NoError(t, err)
		assert.False(t, locked)
	}

	until, err := lockout.Check(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.True(t, until.IsZero())
	assert.NoError(t, lockout.Clear(ctx, "ada@example.com"))
}

func TestNewLoginLockout_AppliesConfig(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{Lockout: &config.LockoutConfig{Threshold: 3, Window: time.Minute}}
	store, ok := NewLoginLockout(client, cfg, discardLogger()).(*redisLockoutStore)
	require.True(t, ok)
	assert.Equal(t, 3, store.threshold)
	assert.Equal(t, time.Minute, store.window)

	store, ok = NewLoginLockout(client, &config.Config{}, discardLogger()).(*redisLockoutStore)
	require.True(t, ok)
	assert.Equal(t, defaultThreshold, store.threshold)
	assert.Equal(t, defaultLockoutSpan, store.window)
}

func TestRedisLockoutStore_SurfacesClientErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	require.NoError(t, client.Close())

	lockout := NewLoginLockout(client, &config.Config{}, discardLogger())
	ctx := context.Background()

	_, err := lockout.Check(ctx, "ada@example.com")
	assert.ErrorIs(t, err, redis.ErrClosed)

	_, err = lockout.RecordFailure(ctx, "ada@example.com")
	assert.ErrorIs(t, err, redis.ErrClosed)

	assert.ErrorIs(t, lockout.Clear(ctx, "ada@example.com"), redis.ErrClosed)
}

func TestConnect(t *testing.T) {
	client, err := connect("redis://:secret@cache.internal:6380/2")
	require.NoError(t, err)
	assert.Equal(t, "cache.internal:6380", client.Options().Addr)
	assert.Equal(t, 2, client.Options().DB)
	assert.Equal(t, "secret", client.Options().Password)

	client, err = connect("localhost:6379")
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", client.Options().Addr)

	_, err = connect("redis://host:notaport")
	assert.Error(t, err)
}

func TestLockoutKey(t *testing.T) {
	assert.Equal(t, "taskgate:lockout:ada@example.com", lockoutKey("ada@example.com"))
}
