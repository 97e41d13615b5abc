package usecase

import (
	"context"

	"taskgate/internal/domain/entity"

	"github.com/google/uuid"
)

// RevokeScope selects which of a user's sessions Revoke terminates.
type RevokeScope int

const (
	// RevokeSingleDevice revokes the live session bound to one fingerprint.
	RevokeSingleDevice RevokeScope = iota
	// RevokeAllDevices revokes every live session of the user.
	RevokeAllDevices
)

func (s RevokeScope) String() string {
	if s == RevokeAllDevices {
		return "all_devices"
	}

	return "single_device"
}

// SessionManager is the only component that creates, rotates or revokes
// sessions.
type SessionManager interface {
	// Login replaces the user's live session on rc.Fingerprint with a new one.
	// Sessions on other devices are left alone.
	Login(ctx context.Context, user *entity.User, rc RequestContext) (*TokenPair, error)

	// Rotate exchanges a live refresh secret for a new pair. A secret that was
	// already rotated or revoked fails with ErrRefreshTokenReused.
	Rotate(ctx context.Context, rawRefreshToken string, rc RequestContext) (*TokenPair, error)

	// Revoke terminates sessions in scope and returns how many this call
	// revoked. Already revoked sessions are skipped.
	Revoke(ctx context.Context, userID uuid.UUID, scope RevokeScope, fingerprint entity.DeviceFingerprint) (int, error)

	// Logout revokes the caller's session on its current device.
	Logout(ctx context.Context, rc RequestContext) error

	// ListSessions returns the user's live sessions, newest first.
	ListSessions(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error)
}
