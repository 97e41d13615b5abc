package entity

import (
	"time"

	"github.com/google/uuid"
)

// ResetToken is a single-use password reset grant. Consuming it forces
// ExpiresAt to the consumption time so it can never validate again.
type ResetToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsUsable reports whether the token can still be redeemed at now.
func (t *ResetToken) IsUsable(now time.Time) bool {
	return t.ExpiresAt.After(now)
}
