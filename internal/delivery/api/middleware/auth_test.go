package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "taskgate/internal/delivery/context"
	"taskgate/internal/domain/entity"
	domainerrors "taskgate/internal/domain/errors"
	"taskgate/internal/domain/repository"
	"taskgate/internal/domain/service"
	"taskgate/internal/errors"
	mockRepo "taskgate/internal/mocks/repository"
	mockSvc "taskgate/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	fixedNow      = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	laptopDevice  = entity.DeviceFingerprint{IPAddress: "192.0.2.1", UserAgent: "laptop-browser"}
	testUserID    = uuid.MustParse("5a0d2c4e-7a43-4c3e-9a5f-0b9e4b8f6a11")
	testSessionID = uuid.MustParse("8c1f5a7e-2b9d-4e61-8f0c-3d7a9b2e4c55")
)

func createTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockSvc.MockTokenCodec, *mockRepo.MockSessionRepository) {
	t.Helper()

	codec := mockSvc.NewMockTokenCodec(t)
	sessions := mockRepo.NewMockSessionRepository(t)

	m := NewAuthMiddleware(AuthMiddlewareParams{
		Codec:    codec,
		Sessions: sessions,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	m.now = func() time.Time { return fixedNow }

	return m, codec, sessions
}

func newAuthContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.RemoteAddr = "192.0.2.1:53211"
	req.Header.Set("User-Agent", "laptop-browser")
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func validClaims() *service.AccessClaims {
	return &service.AccessClaims{
		Email: "ada@example.com",
		Role:  "user",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: testUserID.String(),
			ID:      testSessionID.String(),
		},
	}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("live session sets identity", func(t *testing.T) {
		m, codec, sessions := createTestAuthMiddleware(t)
		c, _ := newAuthContext("Bearer good-token")

		codec.EXPECT().ParseAccessToken("good-token").Return(validClaims(), nil).Once()
		sessions.EXPECT().FindLive(mock.Anything, testUserID, laptopDevice, fixedNow).
			Return(&entity.Session{ID: testSessionID, UserID: testUserID}, nil).Once()

		var seen *deliverycontext.Identity
		err := m.Authenticate(func(c echo.Context) error {
			seen = deliverycontext.GetIdentity(c)

			return nil
		})(c)

		require.NoError(t, err)
		require.NotNil(t, seen)
		assert.Equal(t, testUserID, seen.UserID)
		assert.Equal(t, testSessionID, seen.SessionID)
		assert.Equal(t, entity.RoleUser, seen.Role)
		assert.Equal(t, "ada@example.com", seen.Email)

		userID, ok := GetUserID(c)
		assert.True(t, ok)
		assert.Equal(t, testUserID, userID)
	})

	tests := []struct {
		name          string
		authorization string
		setup         func(codec *mockSvc.MockTokenCodec, sessions *mockRepo.MockSessionRepository)
		wantErr       error
		wantInternal  bool
	}{
		{
			name:    "missing header",
			wantErr: domainerrors.ErrMissingToken,
		},
		{
			name:          "not a bearer token",
			authorization: "Basic YWRhOnNlY3JldA==",
			wantErr:       domainerrors.ErrInvalidToken,
		},
		{
			name:          "expired token",
			authorization: "Bearer stale",
			setup: func(codec *mockSvc.MockTokenCodec, _ *mockRepo.MockSessionRepository) {
				codec.EXPECT().ParseAccessToken("stale").Return(nil, domainerrors.ErrTokenExpired).Once()
			},
			wantErr: domainerrors.ErrTokenExpired,
		},
		{
			name:          "no live session on this device",
			authorization: "Bearer good-token",
			setup: func(codec *mockSvc.MockTokenCodec, sessions *mockRepo.MockSessionRepository) {
				codec.EXPECT().ParseAccessToken("good-token").Return(validClaims(), nil).Once()
				sessions.EXPECT().FindLive(mock.Anything, testUserID, laptopDevice, fixedNow).
					Return(nil, repository.ErrSessionNotFound).Once()
			},
			wantErr: domainerrors.ErrSessionInvalid,
		},
		{
			name:          "token from a replaced session",
			authorization: "Bearer good-token",
			setup: func(codec *mockSvc.MockTokenCodec, sessions *mockRepo.MockSessionRepository) {
				codec.EXPECT().ParseAccessToken("good-token").Return(validClaims(), nil).Once()
				sessions.EXPECT().FindLive(mock.Anything, testUserID, laptopDevice, fixedNow).
					Return(&entity.Session{ID: uuid.New(), UserID: testUserID}, nil).Once()
			},
			wantErr: domainerrors.ErrSessionInvalid,
		},
		{
			name:          "session lookup fails",
			authorization: "Bearer good-token",
			setup: func(codec *mockSvc.MockTokenCodec, sessions *mockRepo.MockSessionRepository) {
				codec.EXPECT().ParseAccessToken("good-token").Return(validClaims(), nil).Once()
				sessions.EXPECT().FindLive(mock.Anything, testUserID, laptopDevice, fixedNow).
					Return(nil, errors.New("connection reset")).Once()
			},
			wantInternal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, codec, sessions := createTestAuthMiddleware(t)
			if tt.setup != nil {
				tt.setup(codec, sessions)
			}
			c, _ := newAuthContext(tt.authorization)

			called := false
			err := m.Authenticate(func(echo.Context) error {
				called = true

				return nil
			})(c)

			require.Error(t, err)
			assert.False(t, called)
			assert.Nil(t, deliverycontext.GetIdentity(c))
			if tt.wantInternal {
				assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, domainerrors.KindUnauthorized, domainerrors.KindOf(err))
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m, _, _ := createTestAuthMiddleware(t)
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }
	adminOnly := m.RequireRole(entity.RoleAdmin)(next)

	t.Run("admin passes", func(t *testing.T) {
		c, rec := newAuthContext("")
		deliverycontext.SetIdentity(c, &deliverycontext.Identity{UserID: testUserID, Role: entity.RoleAdmin})

		require.NoError(t, adminOnly(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("user is forbidden", func(t *testing.T) {
		c, _ := newAuthContext("")
		deliverycontext.SetIdentity(c, &deliverycontext.Identity{UserID: testUserID, Role: entity.RoleUser})

		assert.ErrorIs(t, adminOnly(c), domainerrors.ErrForbidden)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		c, _ := newAuthContext("")

		assert.ErrorIs(t, adminOnly(c), domainerrors.ErrMissingToken)
	})
}

func TestAuthMiddleware_PassesRequestContext(t *testing.T) {
	m, codec, sessions := createTestAuthMiddleware(t)
	c, _ := newAuthContext("Bearer good-token")
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	c.SetRequest(c.Request().WithContext(ctx))

	codec.EXPECT().ParseAccessToken("good-token").Return(validClaims(), nil).Once()
	sessions.EXPECT().FindLive(mock.MatchedBy(func(ctx context.Context) bool {
		return deliverycontext.GetRequestIDFromContext(ctx) == "req-42"
	}), testUserID, laptopDevice, fixedNow).Return(&entity.Session{ID: testSessionID}, nil).Once()

	require.NoError(t, m.Authenticate(func(echo.Context) error { return nil })(c))
}
