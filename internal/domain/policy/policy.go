// Package policy holds the business rules that gate plan-dependent actions.
// Policies only read state; callers that need the verdict to hold while they
// write must run them inside the same transaction, under a per-user lock.
package policy

import (
	"context"
	"time"

	"taskgate/internal/domain/entity"

	"github.com/google/uuid"
)

// TaskPolicy decides whether userID may create another task given its
// subscription snapshot. A nil snapshot means the user has no current plan.
type TaskPolicy interface {
	Validate(ctx context.Context, userID uuid.UUID, snapshot *entity.Subscription) error
}

// Composite runs its policies in order and returns the first failure.
type Composite struct {
	policies []TaskPolicy
}

// NewComposite keeps policies in the given order.
func NewComposite(policies ...TaskPolicy) *Composite {
	return &Composite{policies: policies}
}

func (c *Composite) Validate(ctx context.Context, userID uuid.UUID, snapshot *entity.Subscription) error {
	for _, p := range c.policies {
		if err := p.Validate(ctx, userID, snapshot); err != nil {
			return err
		}
	}

	return nil
}

// Clock returns the current time. Policies fall back to time.Now when nil.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}

	return c()
}
