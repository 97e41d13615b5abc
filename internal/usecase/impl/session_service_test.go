package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"taskgate/config"
	"taskgate/internal/domain/entity"
	domainerrors "taskgate/internal/domain/errors"
	"taskgate/internal/domain/repository"
	"taskgate/internal/errors"
	mockRepo "taskgate/internal/mocks/repository"
	mockSvc "taskgate/internal/mocks/service"
	"taskgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	laptop = entity.DeviceFingerprint{IPAddress: "203.0.113.10", UserAgent: "Mozilla/5.0 (Macintosh)"}
	phone  = entity.DeviceFingerprint{IPAddress: "198.51.100.7", UserAgent: "TaskGate-iOS/2.1"}
)

type sessionFixture struct {
	store    *memStore
	clock    *testClock
	sessions *sessionManager
	user     *entity.User
}

func newSessionFixture(t *testing.T, configure func(cfg *config.Config)) *sessionFixture {
	t.Helper()

	cfg := newTestConfig()
	if configure != nil {
		configure(cfg)
	}

	store := newMemStore()
	clock := newTestClock()
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", Username: "alice", Role: entity.RoleUser}
	store.putUser(user)

	sessions := newSessionManager(SessionManagerParams{
		TxManager: store,
		Codec:     newTestCodec(t),
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})
	sessions.now = clock.Now

	return &sessionFixture{store: store, clock: clock, sessions: sessions, user: user}
}

func (fx *sessionFixture) rc(fingerprint entity.DeviceFingerprint) usecase.RequestContext {
	return usecase.RequestContext{UserID: fx.user.ID, RequestID: uuid.NewString(), Fingerprint: fingerprint}
}

func (fx *sessionFixture) login(t *testing.T, fingerprint entity.DeviceFingerprint) *usecase.TokenPair {
	t.Helper()

	pair, err := fx.sessions.Login(context.Background(), fx.user, fx.rc(fingerprint))
	require.NoError(t, err)

	return pair
}

func TestSessionManager_Login(t *testing.T) {
	fx := newSessionFixture(t, nil)

	pair := fx.login(t, laptop)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.RefreshExpiresAt.After(pair.AccessExpiresAt))

	stored := fx.store.session(pair.SessionID)
	assert.Equal(t, fx.user.ID, stored.UserID)
	assert.Equal(t, laptop, stored.Fingerprint)
	assert.NotEqual(t, pair.RefreshToken, stored.TokenHash, "raw refresh secret must not be stored")
	assert.True(t, stored.IsLive(fx.clock.Now()))
}

func TestSessionManager_Login_ReplacesSessionOnSameDeviceOnly(t *testing.T) {
	fx := newSessionFixture(t, nil)

	first := fx.login(t, laptop)
	other := fx.login(t, phone)
	fx.clock.Advance(time.Second)
	second := fx.login(t, laptop)

	live := fx.store.liveSessionsOf(fx.user.ID, fx.clock.Now())
	require.Len(t, live, 2)

	ids := []uuid.UUID{live[0].ID, live[1].ID}
	assert.ElementsMatch(t, []uuid.UUID{other.SessionID, second.SessionID}, ids)

	replaced := fx.store.session(first.SessionID)
	assert.True(t, replaced.IsRevoked())
	assert.False(t, replaced.WasRotated())
}

func TestSessionManager_Login_UnknownUser(t *testing.T) {
	fx := newSessionFixture(t, nil)

	_, err := fx.sessions.Login(context.Background(), &entity.User{ID: uuid.New()}, fx.rc(laptop))

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	assert.Empty(t, fx.store.sessionsOf(fx.user.ID))
}

func TestSessionManager_Rotate(t *testing.T) {
	fx := newSessionFixture(t, nil)
	original := fx.login(t, laptop)

	fx.clock.Advance(time.Minute)
	rotated, err := fx.sessions.Rotate(context.Background(), original.RefreshToken, fx.rc(laptop))
	require.NoError(t, err)

	assert.NotEqual(t, original.RefreshToken, rotated.RefreshToken)
	assert.NotEqual(t, original.SessionID, rotated.SessionID)

	previous := fx.store.session(original.SessionID)
	require.True(t, previous.IsRevoked())
	require.NotNil(t, previous.ReplacedByID)
	assert.Equal(t, rotated.SessionID, *previous.ReplacedByID)

	successor := fx.store.session(rotated.SessionID)
	assert.True(t, successor.IsLive(fx.clock.Now()))
	assert.Equal(t, laptop, successor.Fingerprint)
}

func TestSessionManager_Rotate_ReuseIsRejected(t *testing.T) {
	fx := newSessionFixture(t, nil)
	original := fx.login(t, laptop)

	rotated, err := fx.sessions.Rotate(context.Background(), original.RefreshToken, fx.rc(laptop))
	require.NoError(t, err)

	_, err = fx.sessions.Rotate(context.Background(), original.RefreshToken, fx.rc(laptop))
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenReused))
	assert.Equal(t, domainerrors.KindUnauthorized, domainerrors.KindOf(err))

	// Without revokeAllOnReuse the legitimate successor survives.
	assert.True(t, fx.store.session(rotated.SessionID).IsLive(fx.clock.Now()))
	assert.Len(t, fx.store.sessionsOf(fx.user.ID), 2)
}

func TestSessionManager_Rotate_ReuseRevokesEverythingWhenConfigured(t *testing.T) {
	fx := newSessionFixture(t, func(cfg *config.Config) { cfg.Auth.RevokeAllOnReuse = true })
	original := fx.login(t, laptop)
	fx.login(t, phone)

	_, err := fx.sessions.Rotate(context.Background(), original.RefreshToken, fx.rc(laptop))
	require.NoError(t, err)

	_, err = fx.sessions.Rotate(context.Background(), original.RefreshToken, fx.rc(laptop))
	require.True(t, errors.Is(err, domainerrors.ErrRefreshTokenReused))

	assert.Empty(t, fx.store.liveSessionsOf(fx.user.ID, fx.clock.Now()))
}

func TestSessionManager_Rotate_UnknownSecretIsReuse(t *testing.T) {
	fx := newSessionFixture(t, func(cfg *config.Config) { cfg.Auth.RevokeAllOnReuse = true })
	onLaptop := fx.login(t, laptop)

	_, err := fx.sessions.Rotate(context.Background(), "never-issued", fx.rc(laptop))

	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenReused))
	assert.Equal(t, domainerrors.KindUnauthorized, domainerrors.KindOf(err))
	// Nobody owns the secret, so no session is swept.
	assert.Len(t, fx.store.sessionsOf(fx.user.ID), 1)
	assert.True(t, fx.store.session(onLaptop.SessionID).IsLive(fx.clock.Now()))
}

func TestSessionManager_Rotate_Expired(t *testing.T) {
	fx := newSessionFixture(t, nil)
	original := fx.login(t, laptop)

	fx.store.updateSession(original.SessionID, func(s *entity.Session) {
		s.ExpiresAt = fx.clock.Now().Add(-time.Second)
	})

	_, err := fx.sessions.Rotate(context.Background(), original.RefreshToken, fx.rc(laptop))

	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenExpired))
	sessions := fx.store.sessionsOf(fx.user.ID)
	require.Len(t, sessions, 1)
	assert.False(t, sessions[0].IsRevoked())
}

func TestSessionManager_Rotate_FromAnotherDeviceRebindsSession(t *testing.T) {
	fx := newSessionFixture(t, nil)
	original := fx.login(t, laptop)
	onPhone := fx.login(t, phone)

	rotated, err := fx.sessions.Rotate(context.Background(), original.RefreshToken, fx.rc(phone))
	require.NoError(t, err)

	assert.Equal(t, phone, fx.store.session(rotated.SessionID).Fingerprint)
	assert.True(t, fx.store.session(onPhone.SessionID).IsRevoked(), "the phone keeps a single live session")

	live := fx.store.liveSessionsOf(fx.user.ID, fx.clock.Now())
	require.Len(t, live, 1)
	assert.Equal(t, rotated.SessionID, live[0].ID)
}

func TestSessionManager_Rotate_ConcurrentCallsHaveOneWinner(t *testing.T) {
	fx := newSessionFixture(t, nil)
	original := fx.login(t, laptop)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		reused    int
	)

	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := fx.sessions.Rotate(context.Background(), original.RefreshToken, fx.rc(laptop))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domainerrors.ErrRefreshTokenReused):
				reused++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, reused)
	assert.Len(t, fx.store.liveSessionsOf(fx.user.ID, fx.clock.Now()), 1)
}

func TestSessionManager_Revoke(t *testing.T) {
	t.Run("single device leaves other devices alone", func(t *testing.T) {
		fx := newSessionFixture(t, nil)
		onLaptop := fx.login(t, laptop)
		onPhone := fx.login(t, phone)

		count, err := fx.sessions.Revoke(context.Background(), fx.user.ID, usecase.RevokeSingleDevice, laptop)
		require.NoError(t, err)

		assert.Equal(t, 1, count)
		assert.True(t, fx.store.session(onLaptop.SessionID).IsRevoked())
		assert.True(t, fx.store.session(onPhone.SessionID).IsLive(fx.clock.Now()))
	})

	t.Run("unknown device is a no-op", func(t *testing.T) {
		fx := newSessionFixture(t, nil)
		fx.login(t, laptop)

		count, err := fx.sessions.Revoke(context.Background(), fx.user.ID, usecase.RevokeSingleDevice, phone)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("all devices is idempotent", func(t *testing.T) {
		fx := newSessionFixture(t, nil)
		onLaptop := fx.login(t, laptop)
		fx.login(t, phone)

		count, err := fx.sessions.Revoke(context.Background(), fx.user.ID, usecase.RevokeAllDevices, entity.DeviceFingerprint{})
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		revokedAt := *fx.store.session(onLaptop.SessionID).RevokedAt

		fx.clock.Advance(time.Hour)
		count, err = fx.sessions.Revoke(context.Background(), fx.user.ID, usecase.RevokeAllDevices, entity.DeviceFingerprint{})
		require.NoError(t, err)
		assert.Zero(t, count)
		assert.Equal(t, revokedAt, *fx.store.session(onLaptop.SessionID).RevokedAt)
	})
}

func TestSessionManager_LogoutAndListSessions(t *testing.T) {
	fx := newSessionFixture(t, nil)
	fx.login(t, laptop)
	onPhone := fx.login(t, phone)

	require.NoError(t, fx.sessions.Logout(context.Background(), fx.rc(laptop)))

	live, err := fx.sessions.ListSessions(context.Background(), fx.user.ID)
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, onPhone.SessionID, live[0].ID)
}

func TestSessionManager_StorageFailureIsInternal(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	codec := mockSvc.NewMockTokenCodec(t)
	sessions := newSessionManager(SessionManagerParams{
		TxManager: txManager,
		Codec:     codec,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	userID := uuid.New()
	dbErr := errors.New("connection refused")

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		users := mockRepo.NewMockUserRepository(t)
		sessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().NewSessionRepository().Return(sessionRepo)
		factory.EXPECT().NewUserRepository().Return(users)
		users.EXPECT().LockForUpdate(mock.Anything, userID).Return(nil)
		sessionRepo.EXPECT().FindLive(mock.Anything, userID, laptop, mock.AnythingOfType("time.Time")).Return(nil, dbErr)
	})

	_, err := sessions.Login(context.Background(), &entity.User{ID: userID}, usecase.RequestContext{UserID: userID, Fingerprint: laptop})

	require.Error(t, err)
	assert.True(t, errors.Is(err, dbErr))
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
}

func TestSessionManager_Rotate_UnknownHashSkipsLocking(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	codec := mockSvc.NewMockTokenCodec(t)
	sessions := newSessionManager(SessionManagerParams{
		TxManager: txManager,
		Codec:     codec,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	codec.EXPECT().HashRefreshSecret("raw").Return("hashed")
	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		sessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().NewSessionRepository().Return(sessionRepo)
		factory.EXPECT().NewUserRepository().Return(mockRepo.NewMockUserRepository(t))
		sessionRepo.EXPECT().FindByHash(mock.Anything, "hashed").Return(nil, repository.ErrSessionNotFound)
	})

	_, err := sessions.Rotate(context.Background(), "raw", usecase.RequestContext{Fingerprint: laptop})

	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenReused))
}
