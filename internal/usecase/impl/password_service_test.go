package impl

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"taskgate/config"
	"taskgate/internal/domain/entity"
	domainerrors "taskgate/internal/domain/errors"
	"taskgate/internal/errors"
	"taskgate/internal/infra/auth"
	mockRepo "taskgate/internal/mocks/repository"
	mockSvc "taskgate/internal/mocks/service"
	"taskgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type passwordFixture struct {
	store    *memStore
	clock    *testClock
	mailer   *mockSvc.MockMailer
	sessions *sessionManager
	service  *passwordService
	user     *entity.User
}

func newPasswordFixture(t *testing.T, configure func(cfg *config.Config)) *passwordFixture {
	t.Helper()

	cfg := newTestConfig()
	if configure != nil {
		configure(cfg)
	}

	store := newMemStore()
	clock := newTestClock()
	codec := newTestCodec(t)
	hasher := auth.NewBcryptHasherWithCost(4, config.PasswordStrengthConfig{})

	hash, err := hasher.Hash("0riginal!pw")
	require.NoError(t, err)
	user := &entity.User{ID: uuid.New(), Email: "bob@example.com", Username: "bob", PasswordHash: hash, Role: entity.RoleUser}
	store.putUser(user)

	sessions := newSessionManager(SessionManagerParams{TxManager: store, Codec: codec, Config: cfg, Logger: newDiscardLogger()})
	sessions.now = clock.Now

	mailer := mockSvc.NewMockMailer(t)
	srv := NewPasswordService(PasswordServiceParams{
		TxManager: store,
		UserRepo:  store.direct().NewUserRepository(),
		Hasher:    hasher,
		Codec:     codec,
		Mailer:    mailer,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	}).(*passwordService)
	srv.now = clock.Now

	return &passwordFixture{store: store, clock: clock, mailer: mailer, sessions: sessions, service: srv, user: user}
}

// requestReset runs ForgotPassword and returns the raw token from the mailed link.
func (fx *passwordFixture) requestReset(t *testing.T) string {
	t.Helper()

	var body string
	fx.mailer.EXPECT().
		Send(mock.Anything, fx.user.Email, "Reset Password", mock.AnythingOfType("string")).
		Run(func(_ context.Context, _, _ string, b string) { body = b }).
		Return(nil).
		Once()

	require.NoError(t, fx.service.ForgotPassword(context.Background(), "BOB@example.com", usecase.RequestContext{Fingerprint: laptop}))

	idx := strings.Index(body, "https://app.example.com/reset-password?")
	require.GreaterOrEqual(t, idx, 0, "mail body carries the reset link")
	link, err := url.Parse(strings.TrimSpace(body[idx:]))
	require.NoError(t, err)
	assert.Equal(t, fx.user.Email, link.Query().Get("email"))

	token := link.Query().Get("token")
	require.NotEmpty(t, token)

	return token
}

func TestPasswordService_ResetFlow(t *testing.T) {
	fx := newPasswordFixture(t, nil)
	rc := usecase.RequestContext{UserID: fx.user.ID, Fingerprint: laptop}

	_, err := fx.sessions.Login(context.Background(), fx.user, rc)
	require.NoError(t, err)
	_, err = fx.sessions.Login(context.Background(), fx.user, usecase.RequestContext{UserID: fx.user.ID, Fingerprint: phone})
	require.NoError(t, err)

	token := fx.requestReset(t)

	err = fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{
		Email:       fx.user.Email,
		Token:       token,
		NewPassword: "Brand!new9",
	}, rc)
	require.NoError(t, err)

	assert.Empty(t, fx.store.liveSessionsOf(fx.user.ID, fx.clock.Now()), "every session is revoked after a reset")

	stored, err := fx.store.direct().NewUserRepository().FindByID(context.Background(), fx.user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, fx.user.PasswordHash, stored.PasswordHash)
	require.NotNil(t, stored.PasswordChangedAt)

	// The token is single-use.
	err = fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{
		Email:       fx.user.Email,
		Token:       token,
		NewPassword: "An0ther!pw",
	}, rc)
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
	assert.Equal(t, domainerrors.KindUnauthorized, domainerrors.KindOf(err))
}

func TestPasswordService_ResetPassword_Rejects(t *testing.T) {
	t.Run("expired token", func(t *testing.T) {
		fx := newPasswordFixture(t, nil)
		token := fx.requestReset(t)

		fx.clock.Advance(16 * time.Minute)
		err := fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{
			Email: fx.user.Email, Token: token, NewPassword: "Brand!new9",
		}, usecase.RequestContext{})

		assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
	})

	t.Run("token of another user", func(t *testing.T) {
		fx := newPasswordFixture(t, nil)
		token := fx.requestReset(t)

		other := &entity.User{ID: uuid.New(), Email: "mallory@example.com", PasswordHash: "x"}
		fx.store.putUser(other)

		err := fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{
			Email: other.Email, Token: token, NewPassword: "Brand!new9",
		}, usecase.RequestContext{})

		assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := newPasswordFixture(t, nil)

		err := fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{
			Email: "nobody@example.com", Token: "anything", NewPassword: "Brand!new9",
		}, usecase.RequestContext{})

		assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
	})

	t.Run("weak password leaves the token usable", func(t *testing.T) {
		fx := newPasswordFixture(t, nil)
		token := fx.requestReset(t)

		err := fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{
			Email: fx.user.Email, Token: token, NewPassword: "short",
		}, usecase.RequestContext{})
		require.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))

		err = fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{
			Email: fx.user.Email, Token: token, NewPassword: "Brand!new9",
		}, usecase.RequestContext{})
		assert.NoError(t, err)
	})
}

func TestPasswordService_ForgotPassword_UnknownEmail(t *testing.T) {
	t.Run("generic success by default", func(t *testing.T) {
		fx := newPasswordFixture(t, nil)

		err := fx.service.ForgotPassword(context.Background(), "nobody@example.com", usecase.RequestContext{})

		assert.NoError(t, err)
		fx.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not found when revealing is enabled", func(t *testing.T) {
		fx := newPasswordFixture(t, func(cfg *config.Config) { cfg.Auth.RevealUnknownEmail = true })

		err := fx.service.ForgotPassword(context.Background(), "nobody@example.com", usecase.RequestContext{})

		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
		assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
	})
}

func TestPasswordService_ForgotPassword_MailFailureIsHidden(t *testing.T) {
	fx := newPasswordFixture(t, nil)

	fx.mailer.EXPECT().Send(mock.Anything, fx.user.Email, "Reset Password", mock.Anything).Return(errors.New("smtp: 421 try later"))

	err := fx.service.ForgotPassword(context.Background(), fx.user.Email, usecase.RequestContext{})

	assert.NoError(t, err)
	fx.store.mu.Lock()
	defer fx.store.mu.Unlock()
	assert.Len(t, fx.store.resetTokens, 1, "the token is stored even when the mail bounces")
}

func TestPasswordService_ResetPassword_SweepFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	codec := newTestCodec(t)
	userID := uuid.New()
	tokenID := uuid.New()
	dbErr := errors.New("connection reset by peer")

	srv := NewPasswordService(PasswordServiceParams{
		TxManager: txManager,
		UserRepo:  mockRepo.NewMockUserRepository(t),
		Hasher:    auth.NewBcryptHasherWithCost(4, config.PasswordStrengthConfig{}),
		Codec:     codec,
		Mailer:    mockSvc.NewMockMailer(t),
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		users := mockRepo.NewMockUserRepository(t)
		tokens := mockRepo.NewMockResetTokenRepository(t)
		sessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().NewUserRepository().Return(users)
		factory.EXPECT().NewResetTokenRepository().Return(tokens)
		factory.EXPECT().NewSessionRepository().Return(sessionRepo)

		users.EXPECT().FindByEmail(ctx, "bob@example.com").Return(&entity.User{ID: userID, Email: "bob@example.com"}, nil)
		tokens.EXPECT().
			FindUnexpiredByHashAndUser(ctx, codec.HashGenericToken("raw-token"), userID, mock.AnythingOfType("time.Time")).
			Return(&entity.ResetToken{ID: tokenID, UserID: userID}, nil)
		tokens.EXPECT().Consume(ctx, tokenID, mock.AnythingOfType("time.Time")).Return(true, nil)
		users.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
		sessionRepo.EXPECT().FindAllByUser(ctx, userID).Return(nil, dbErr)
	})

	err := srv.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Email: "bob@example.com", Token: "raw-token", NewPassword: "Brand!new9",
	}, usecase.RequestContext{})

	// The sweep runs inside the reset transaction, so its failure undoes the
	// token consumption and the caller may retry with the same link.
	require.Error(t, err)
	assert.True(t, errors.Is(err, dbErr))
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
}
