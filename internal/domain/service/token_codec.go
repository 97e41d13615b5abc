package service

import (
	"time"

	"taskgate/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessClaims are the claims carried by a signed access token. The token ID
// (jti) is the ID of the session that minted it.
type AccessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *AccessClaims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// SessionID parses the jti claim.
func (c *AccessClaims) SessionID() (uuid.UUID, error) {
	return uuid.Parse(c.ID)
}

// RefreshSecret is a freshly minted refresh credential. Raw is handed to the
// client once and never persisted.
type RefreshSecret struct {
	Raw       string
	Hash      string
	ExpiresAt time.Time
}

// TokenCodec mints and verifies credentials.
type TokenCodec interface {
	// CreateAccessToken signs an access token for user bound to sessionID.
	CreateAccessToken(user *entity.User, sessionID uuid.UUID) (token string, expiresAt time.Time, err error)

	// ParseAccessToken verifies signature, issuer, audience and expiry.
	// Failures are ErrInvalidToken or ErrTokenExpired.
	ParseAccessToken(token string) (*AccessClaims, error)

	// CreateRefreshSecret mints a new high-entropy refresh secret.
	CreateRefreshSecret() (*RefreshSecret, error)

	// HashRefreshSecret derives the storage key of a raw refresh secret.
	HashRefreshSecret(raw string) string

	// NewResetToken mints a raw password-reset token and its storage hash.
	NewResetToken() (raw string, hash string, err error)

	// HashGenericToken derives the storage key of any other opaque token,
	// password-reset tokens included. It never collides with HashRefreshSecret.
	HashGenericToken(raw string) string
}
