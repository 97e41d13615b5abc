package policy

import (
	"context"

	"taskgate/internal/domain/entity"
	domainerrors "taskgate/internal/domain/errors"
	"taskgate/internal/errors"

	"github.com/google/uuid"
)

// ActivePlanPolicy requires a current plan.
type ActivePlanPolicy struct{}

func (ActivePlanPolicy) Validate(_ context.Context, _ uuid.UUID, snapshot *entity.Subscription) error {
	if snapshot == nil || snapshot.Plan == nil {
		return domainerrors.ErrNoActivePlan
	}

	return nil
}

// TaskCounter counts a user's existing tasks.
type TaskCounter interface {
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// MaxTasksPolicy rejects a new task once the user owns MaxTasks of them.
// It does not re-check that a plan exists; run it after ActivePlanPolicy.
type MaxTasksPolicy struct {
	Counter TaskCounter
}

func (p MaxTasksPolicy) Validate(ctx context.Context, userID uuid.UUID, snapshot *entity.Subscription) error {
	if snapshot == nil || snapshot.Plan == nil || snapshot.Plan.IsUnlimited() {
		return nil
	}

	count, err := p.Counter.CountByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "count tasks")
	}

	if count >= snapshot.Plan.MaxTasks {
		return domainerrors.ErrQuotaExceeded.WithDetails("limit reached for plan " + snapshot.Plan.Tier.String())
	}

	return nil
}

// NewTaskCreationPolicy is the gate for creating a task: a current plan
// first, then its quota.
func NewTaskCreationPolicy(counter TaskCounter) *Composite {
	return NewComposite(
		ActivePlanPolicy{},
		MaxTasksPolicy{Counter: counter},
	)
}
