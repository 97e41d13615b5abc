package repository

import (
	"context"
	"time"

	"taskgate/internal/domain/entity"
	"taskgate/internal/errors"

	"github.com/google/uuid"
)

// ErrResetTokenNotFound is returned when no unexpired reset token matches.
var ErrResetTokenNotFound = errors.New("reset token not found")

type ResetTokenRepository interface {
	Create(ctx context.Context, token *entity.ResetToken) error

	// FindUnexpiredByHashAndUser returns the token with the given hash that
	// belongs to userID and expires after now.
	FindUnexpiredByHashAndUser(ctx context.Context, tokenHash string, userID uuid.UUID, now time.Time) (*entity.ResetToken, error)

	// Consume forces the token's expiry to now if it has not expired yet and
	// reports whether this call consumed it.
	Consume(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
}
