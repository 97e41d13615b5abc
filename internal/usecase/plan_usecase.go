package usecase

import (
	"context"

	"taskgate/internal/domain/entity"

	"github.com/google/uuid"
)

// PlanInput describes a catalogue entry for create and update. Tier is
// parsed case-insensitively and rejected when unknown.
type PlanInput struct {
	Tier         string
	Description  string
	PriceCents   int64
	MaxTasks     int
	DurationDays int
}

// PlanUsecase defines the plan catalogue and subscription operations.
type PlanUsecase interface {
	ListPlans(ctx context.Context) ([]*entity.Plan, error)
	GetPlan(ctx context.Context, id uuid.UUID) (*entity.Plan, error)

	// Catalogue administration, gated on RoleAdmin by the router.
	CreatePlan(ctx context.Context, input *PlanInput) (*entity.Plan, error)
	UpdatePlan(ctx context.Context, id uuid.UUID, input *PlanInput) (*entity.Plan, error)

	// SetPlanActive opens or closes a plan for purchase. Existing
	// subscriptions keep running either way.
	SetPlanActive(ctx context.Context, id uuid.UUID, active bool) (*entity.Plan, error)

	// Purchase subscribes the caller to planID. It fails while another
	// non-default plan is still current.
	Purchase(ctx context.Context, planID uuid.UUID, rc RequestContext) (*entity.Subscription, error)

	// Deactivate ends one of the caller's subscriptions early.
	Deactivate(ctx context.Context, subscriptionID uuid.UUID, rc RequestContext) error

	// GetActive returns the caller's current subscription.
	GetActive(ctx context.Context, rc RequestContext) (*entity.Subscription, error)
	ListUserPlans(ctx context.Context, rc RequestContext) ([]*entity.Subscription, error)
}
