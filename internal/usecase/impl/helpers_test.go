package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"taskgate/config"
	"taskgate/internal/domain/repository"
	"taskgate/internal/domain/service"
	"taskgate/internal/infra/auth"
	mockRepo "taskgate/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:   15 * time.Minute,
			RefreshTokenTTL:  7 * 24 * time.Hour,
			ResetTokenTTL:    15 * time.Minute,
			Issuer:           "taskgate",
			Audience:         "taskgate-api",
			ResetLinkBaseURL: "https://app.example.com/reset-password",
		},
		Plans: &config.PlansConfig{DefaultTier: "Free"},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func newTestCodec(t *testing.T) service.TokenCodec {
	t.Helper()

	codec, err := auth.NewTokenCodec(newTestConfig())
	require.NoError(t, err)

	return codec
}

// testClock is a manually advanced clock starting at the real current time,
// so it stays consistent with expiries computed by the real token codec.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Now().UTC()}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// expectTx makes txManager run the transaction body once against a fresh
// mock factory prepared by setup, returning whatever the body returns.
func expectTx(
	t *testing.T,
	txManager *mockRepo.MockTransactionManager,
	setup func(factory *mockRepo.MockRepositoryFactory),
) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}
