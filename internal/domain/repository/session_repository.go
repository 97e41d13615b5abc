package repository

import (
	"context"
	"time"

	"taskgate/internal/domain/entity"
	"taskgate/internal/errors"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when no session matches the lookup.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists refresh-token sessions. Sessions are append-only
// apart from the one-shot revocation performed by Revoke.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error

	// FindByHash retrieves a session by the keyed hash of its refresh secret,
	// regardless of whether it is still live.
	FindByHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// FindByHashForUpdate is FindByHash plus a row lock held until the
	// surrounding transaction ends.
	FindByHashForUpdate(ctx context.Context, tokenHash string) (*entity.Session, error)

	// FindLive returns the live session for the user on the given device, read from the primary.
	FindLive(ctx context.Context, userID uuid.UUID, fingerprint entity.DeviceFingerprint, now time.Time) (*entity.Session, error)

	// FindLiveByUser lists every live session of the user, newest first.
	FindLiveByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.Session, error)

	// FindAllByUser lists every session of the user, revoked ones included.
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error)

	// Revoke sets RevokedAt (and ReplacedByID when non-nil) only if the session
	// is not revoked yet. It reports whether this call performed the revocation.
	Revoke(ctx context.Context, id uuid.UUID, at time.Time, replacedBy *uuid.UUID) (bool, error)
}
