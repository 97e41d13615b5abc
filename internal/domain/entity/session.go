package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceFingerprint identifies the client a session is bound to.
type DeviceFingerprint struct {
	IPAddress string
	UserAgent string
}

// Session is a persisted refresh-token record. Its ID doubles as the jti of
// every access token minted for it. Rows are never deleted, only revoked.
type Session struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	TokenHash    string     // Keyed hash of the raw refresh secret; the raw value is never stored.
	ExpiresAt    time.Time  // Refresh-token expiry.
	CreatedAt    time.Time  // When the session (or this link of its rotation chain) was issued.
	RevokedAt    *time.Time // Set exactly once.
	ReplacedByID *uuid.UUID // Successor in the rotation chain, nil unless rotated.
	Fingerprint  DeviceFingerprint
}

// IsRevoked reports whether the session has been revoked or rotated away.
func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsExpired reports whether the refresh secret has passed its expiry at now.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// IsLive reports whether the session can still authenticate requests at now.
func (s *Session) IsLive(now time.Time) bool {
	return !s.IsRevoked() && !s.IsExpired(now)
}

// WasRotated reports whether the session was revoked by a refresh.
func (s *Session) WasRotated() bool {
	return s.ReplacedByID != nil
}
