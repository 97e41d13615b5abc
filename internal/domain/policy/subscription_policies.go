package policy

import (
	"context"

	"taskgate/internal/domain/entity"
	domainerrors "taskgate/internal/domain/errors"
	"taskgate/internal/domain/repository"
	"taskgate/internal/errors"

	"github.com/google/uuid"
)

// ActiveUserPlanPolicy blocks a purchase while the user still holds an
// active, unexpired subscription above the default tier.
type ActiveUserPlanPolicy struct {
	Users         repository.UserRepository
	Subscriptions repository.SubscriptionRepository
	DefaultTier   entity.PlanTier
	Now           Clock
}

func (p ActiveUserPlanPolicy) Validate(ctx context.Context, userID uuid.UUID) error {
	if _, err := p.Users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "find user")
	}

	subscriptions, err := p.Subscriptions.FindByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "list subscriptions")
	}

	defaultTier := p.DefaultTier
	if defaultTier == "" {
		defaultTier = entity.PlanTierFree
	}

	now := p.Now.now()
	for _, sub := range subscriptions {
		if !sub.IsCurrent(now) {
			continue
		}
		if sub.Plan != nil && sub.Plan.Tier != defaultTier {
			return domainerrors.ErrPlanAlreadyActive
		}
	}

	return nil
}

// ExpirationPolicy rejects operations on a subscription that has already
// lapsed or been deactivated.
type ExpirationPolicy struct {
	Now Clock
}

func (p ExpirationPolicy) Validate(_ context.Context, subscription *entity.Subscription) error {
	if subscription.IsLapsed(p.Now.now()) {
		return domainerrors.ErrPlanExpired
	}

	return nil
}
