package repository

import (
	"context"
	"time"

	"taskgate/internal/domain/entity"
	"taskgate/internal/errors"

	"github.com/google/uuid"
)

// ErrSubscriptionNotFound is returned when a subscription does not exist.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionRepository persists user plan purchases. Returned
// subscriptions always carry their Plan.
type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.Subscription) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)

	// FindByUser lists all subscriptions of the user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error)

	// FindCurrent returns the most recently purchased subscription that is
	// active and unexpired at now.
	FindCurrent(ctx context.Context, userID uuid.UUID, now time.Time) (*entity.Subscription, error)

	// Deactivate clears IsActive if still set and reports whether it changed.
	Deactivate(ctx context.Context, id uuid.UUID) (bool, error)
}
