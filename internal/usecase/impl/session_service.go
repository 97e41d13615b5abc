// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"taskgate/config"
	deliverycontext "taskgate/internal/delivery/context"
	"taskgate/internal/domain/entity"
	domainerrors "taskgate/internal/domain/errors"
	"taskgate/internal/domain/repository"
	"taskgate/internal/domain/service"
	"taskgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionManager implements usecase.SessionManager. Every mutation runs in
// a transaction under the owning user's row lock, so logins and rotations
// for one user are serialised.
type sessionManager struct {
	txManager        repository.TransactionManager
	codec            service.TokenCodec
	revokeAllOnReuse bool
	now              func() time.Time
	logger           *slog.Logger
}

// SessionManagerParams holds dependencies for SessionManager, injected by Fx.
type SessionManagerParams struct {
	fx.In

	TxManager repository.TransactionManager
	Codec     service.TokenCodec
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSessionManager is the constructor for sessionManager.
func NewSessionManager(params SessionManagerParams) usecase.SessionManager {
	return newSessionManager(params)
}

func newSessionManager(params SessionManagerParams) *sessionManager {
	revokeAllOnReuse := false
	if params.Config != nil && params.Config.Auth != nil {
		revokeAllOnReuse = params.Config.Auth.RevokeAllOnReuse
	}

	return &sessionManager{
		txManager:        params.TxManager,
		codec:            params.Codec,
		revokeAllOnReuse: revokeAllOnReuse,
		now:              time.Now,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionManager) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionManager) Login(ctx context.Context, user *entity.User, rc usecase.RequestContext) (*usecase.TokenPair, error) {
	var pair *usecase.TokenPair

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.NewSessionRepository()

		if err := repoFactory.NewUserRepository().LockForUpdate(ctx, user.ID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to lock user")
		}

		now := srv.now()
		if _, err := srv.revokeDevice(ctx, sessionRepo, user.ID, rc.Fingerprint, now); err != nil {
			return err
		}

		session, secret, err := srv.newSession(user.ID, rc.Fingerprint, now)
		if err != nil {
			return err
		}
		if err := sessionRepo.Create(ctx, session); err != nil {
			return errors.Wrap(err, "failed to create session")
		}

		pair, err = srv.tokenPair(user, session, secret)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Session created",
		slog.Any("user_id", user.ID),
		slog.Any("session_id", pair.SessionID),
		slog.String("ip", rc.Fingerprint.IPAddress),
	)

	return pair, nil
}

func (srv *sessionManager) Rotate(ctx context.Context, rawRefreshToken string, rc usecase.RequestContext) (*usecase.TokenPair, error) {
	tokenHash := srv.codec.HashRefreshSecret(rawRefreshToken)

	var (
		pair    *usecase.TokenPair
		reused  *entity.Session
		revoked *entity.Session
		// set when the secret matches no session at all
		unknown bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.NewSessionRepository()
		userRepo := repoFactory.NewUserRepository()

		// Read once without a lock to learn the owner, then lock user before
		// session, the same order Login uses.
		owner, err := sessionRepo.FindByHash(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				unknown = true

				return domainerrors.ErrRefreshTokenReused
			}

			return errors.Wrap(err, "failed to find session")
		}

		if err := userRepo.LockForUpdate(ctx, owner.UserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				unknown = true

				return domainerrors.ErrRefreshTokenReused
			}

			return errors.Wrap(err, "failed to lock user")
		}

		current, err := sessionRepo.FindByHashForUpdate(ctx, tokenHash)
		if err != nil {
			return errors.Wrap(err, "failed to lock session")
		}

		now := srv.now()
		if current.IsRevoked() {
			reused = current

			return domainerrors.ErrRefreshTokenReused
		}
		if current.IsExpired(now) {
			return domainerrors.ErrRefreshTokenExpired
		}

		user, err := userRepo.FindByID(ctx, current.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find session owner")
		}

		successor, secret, err := srv.newSession(user.ID, rc.Fingerprint, now)
		if err != nil {
			return err
		}

		ok, err := sessionRepo.Revoke(ctx, current.ID, now, &successor.ID)
		if err != nil {
			return errors.Wrap(err, "failed to revoke rotated session")
		}
		if !ok {
			reused = current

			return domainerrors.ErrRefreshTokenReused
		}

		// The caller may have moved to a device that already holds a session.
		if _, err := srv.revokeDevice(ctx, sessionRepo, user.ID, rc.Fingerprint, now); err != nil {
			return err
		}

		if err := sessionRepo.Create(ctx, successor); err != nil {
			return errors.Wrap(err, "failed to create successor session")
		}

		revoked = current
		pair, err = srv.tokenPair(user, successor, secret)

		return err
	})
	if err != nil {
		switch {
		case reused != nil:
			srv.handleReuse(ctx, reused, rc)
		case unknown:
			// No owner to escalate against.
			srv.log(ctx).Error("Refresh token reuse detected",
				slog.Bool("unknown_secret", true),
				slog.String("ip", rc.Fingerprint.IPAddress),
				slog.String("user_agent", rc.Fingerprint.UserAgent),
			)
		case errors.Is(err, domainerrors.ErrRefreshTokenExpired):
			srv.log(ctx).Warn("Refresh rejected", slog.Any("error", err), slog.String("ip", rc.Fingerprint.IPAddress))
		}

		return nil, err
	}

	srv.log(ctx).Info("Session rotated",
		slog.Any("user_id", revoked.UserID),
		slog.Any("previous_session_id", revoked.ID),
		slog.Any("session_id", pair.SessionID),
	)

	return pair, nil
}

// handleReuse reports a replayed refresh secret and, when configured, ends
// every session of its owner.
func (srv *sessionManager) handleReuse(ctx context.Context, session *entity.Session, rc usecase.RequestContext) {
	srv.log(ctx).Error("Refresh token reuse detected",
		slog.Any("user_id", session.UserID),
		slog.Any("session_id", session.ID),
		slog.Bool("was_rotated", session.WasRotated()),
		slog.String("ip", rc.Fingerprint.IPAddress),
		slog.String("user_agent", rc.Fingerprint.UserAgent),
	)

	if !srv.revokeAllOnReuse {
		return
	}

	count, err := srv.Revoke(ctx, session.UserID, usecase.RevokeAllDevices, entity.DeviceFingerprint{})
	if err != nil {
		srv.log(ctx).Error("Failed to revoke sessions after reuse", slog.Any("user_id", session.UserID), slog.Any("error", err))

		return
	}

	srv.log(ctx).Warn("Revoked all sessions after reuse", slog.Any("user_id", session.UserID), slog.Int("count", count))
}

func (srv *sessionManager) Revoke(ctx context.Context, userID uuid.UUID, scope usecase.RevokeScope, fingerprint entity.DeviceFingerprint) (int, error) {
	var count int

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.NewSessionRepository()
		now := srv.now()

		var err error
		switch scope {
		case usecase.RevokeSingleDevice:
			count, err = srv.revokeDevice(ctx, sessionRepo, userID, fingerprint, now)
		case usecase.RevokeAllDevices:
			count, err = revokeAllSessions(ctx, sessionRepo, userID, now)
		default:
			err = errors.Errorf("unknown revoke scope %d", scope)
		}

		return err
	})
	if err != nil {
		return 0, err
	}

	srv.log(ctx).Info("Sessions revoked",
		slog.Any("user_id", userID),
		slog.String("scope", scope.String()),
		slog.Int("count", count),
	)

	return count, nil
}

func (srv *sessionManager) Logout(ctx context.Context, rc usecase.RequestContext) error {
	_, err := srv.Revoke(ctx, rc.UserID, usecase.RevokeSingleDevice, rc.Fingerprint)

	return err
}

func (srv *sessionManager) ListSessions(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error) {
	var sessions []*entity.Session

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		sessions, err = repoFactory.NewSessionRepository().FindLiveByUser(ctx, userID, srv.now())

		return errors.Wrap(err, "failed to list sessions")
	})
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

// revokeDevice revokes the live sessions of userID on fingerprint. It stops
// early if a revocation loses a race, since the winner already revoked it.
func (srv *sessionManager) revokeDevice(
	ctx context.Context,
	sessionRepo repository.SessionRepository,
	userID uuid.UUID,
	fingerprint entity.DeviceFingerprint,
	now time.Time,
) (int, error) {
	count := 0
	for {
		live, err := sessionRepo.FindLive(ctx, userID, fingerprint, now)
		if errors.Is(err, repository.ErrSessionNotFound) {
			return count, nil
		}
		if err != nil {
			return count, errors.Wrap(err, "failed to find live session")
		}

		ok, err := sessionRepo.Revoke(ctx, live.ID, now, nil)
		if err != nil {
			return count, errors.Wrap(err, "failed to revoke session")
		}
		if !ok {
			return count, nil
		}
		count++
	}
}

// revokeAllSessions revokes every live session of userID through
// sessionRepo, inside whatever transaction the repo is bound to. Sessions
// that are already revoked keep their original RevokedAt.
func revokeAllSessions(ctx context.Context, sessionRepo repository.SessionRepository, userID uuid.UUID, now time.Time) (int, error) {
	sessions, err := sessionRepo.FindAllByUser(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list sessions")
	}

	count := 0
	for _, session := range sessions {
		if !session.IsLive(now) {
			continue
		}

		ok, err := sessionRepo.Revoke(ctx, session.ID, now, nil)
		if err != nil {
			return count, errors.Wrap(err, "failed to revoke session")
		}
		if ok {
			count++
		}
	}

	return count, nil
}

// newSession prepares an unsaved session with a fresh refresh secret. The
// ID is a UUIDv7 assigned up front so a rotated session can point at it.
func (srv *sessionManager) newSession(userID uuid.UUID, fingerprint entity.DeviceFingerprint, now time.Time) (*entity.Session, *service.RefreshSecret, error) {
	secret, err := srv.codec.CreateRefreshSecret()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create refresh secret")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to generate session id")
	}

	return &entity.Session{
		ID:          id,
		UserID:      userID,
		TokenHash:   secret.Hash,
		ExpiresAt:   secret.ExpiresAt,
		CreatedAt:   now,
		Fingerprint: fingerprint,
	}, secret, nil
}

func (srv *sessionManager) tokenPair(user *entity.User, session *entity.Session, secret *service.RefreshSecret) (*usecase.TokenPair, error) {
	accessToken, accessExpiresAt, err := srv.codec.CreateAccessToken(user, session.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create access token")
	}

	return &usecase.TokenPair{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExpiresAt,
		RefreshToken:     secret.Raw,
		RefreshExpiresAt: secret.ExpiresAt,
		SessionID:        session.ID,
	}, nil
}
