package middleware

import (
	"log/slog"
	"strings"
	"time"

	deliverycontext "taskgate/internal/delivery/context"
	"taskgate/internal/domain/entity"
	domainerrors "taskgate/internal/domain/errors"
	"taskgate/internal/domain/repository"
	"taskgate/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates bearer access tokens against the live session
// they were issued for.
type AuthMiddleware struct {
	codec    service.TokenCodec
	sessions repository.SessionRepository
	now      func() time.Time
	logger   *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Codec    service.TokenCodec
	Sessions repository.SessionRepository
	Logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		codec:    params.Codec,
		sessions: params.Sessions,
		now:      time.Now,
		logger:   params.Logger,
	}
}

// Authenticate requires a valid access token whose jti is still the live
// session of the calling device. A token from a revoked, rotated or
// replaced session is refused even before it expires.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrMissingToken
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(tokenString) == "" {
			return domainerrors.ErrInvalidToken.WithDetails("authorization header must be a Bearer token")
		}

		claims, err := m.codec.ParseAccessToken(strings.TrimSpace(tokenString))
		if err != nil {
			return err
		}

		// The codec has already checked both IDs parse.
		userID, _ := claims.UserID()
		sessionID, _ := claims.SessionID()
		role, _ := entity.ParseRole(claims.Role)

		ctx := c.Request().Context()
		fingerprint := deliverycontext.Fingerprint(c)

		session, err := m.sessions.FindLive(ctx, userID, fingerprint, m.now())
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				m.reject(c, userID, sessionID, "no live session for device")

				return domainerrors.ErrSessionInvalid
			}

			return errors.Wrap(err, "failed to check session")
		}
		if session.ID != sessionID {
			m.reject(c, userID, sessionID, "token belongs to a replaced session")

			return domainerrors.ErrSessionInvalid
		}

		deliverycontext.SetIdentity(c, &deliverycontext.Identity{
			UserID:    userID,
			Email:     claims.Email,
			Role:      role,
			SessionID: sessionID,
		})

		return next(c)
	}
}

func (m *AuthMiddleware) reject(c echo.Context, userID, sessionID uuid.UUID, reason string) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Info("Access token refused",
		slog.Any("user_id", userID),
		slog.Any("session_id", sessionID),
		slog.String("reason", reason),
	)
}

// RequireRole is a middleware factory that checks the authenticated role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := deliverycontext.GetIdentity(c)
			if identity == nil {
				return domainerrors.ErrMissingToken
			}
			if identity.Role != requiredRole {
				return domainerrors.ErrForbidden.WithDetails("requires role " + requiredRole.String())
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user's ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return uuid.Nil, false
	}

	return identity.UserID, true
}
