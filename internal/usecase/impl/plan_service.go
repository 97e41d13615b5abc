package impl

import (
	"context"
	"log/slog"
	"time"

	"taskgate/config"
	deliverycontext "taskgate/internal/delivery/context"
	"taskgate/internal/domain/entity"
	domainerrors "taskgate/internal/domain/errors"
	"taskgate/internal/domain/policy"
	"taskgate/internal/domain/repository"
	"taskgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// planService implements the PlanUsecase interface.
type planService struct {
	txManager        repository.TransactionManager
	planRepo         repository.PlanRepository
	subscriptionRepo repository.SubscriptionRepository
	defaultTier      entity.PlanTier
	now              func() time.Time
	logger           *slog.Logger
}

// PlanServiceParams holds dependencies for PlanService, injected by Fx.
type PlanServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	PlanRepo         repository.PlanRepository
	SubscriptionRepo repository.SubscriptionRepository
	Config           *config.Config
	Logger           *slog.Logger
}

// NewPlanService is the constructor for planService.
func NewPlanService(params PlanServiceParams) usecase.PlanUsecase {
	defaultTier := entity.PlanTierFree
	if params.Config != nil && params.Config.Plans != nil {
		if tier, ok := entity.ParsePlanTier(params.Config.Plans.DefaultTier); ok {
			defaultTier = tier
		}
	}

	return &planService{
		txManager:        params.TxManager,
		planRepo:         params.PlanRepo,
		subscriptionRepo: params.SubscriptionRepo,
		defaultTier:      defaultTier,
		now:              time.Now,
		logger:           params.Logger,
	}
}

func (srv *planService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPlans returns the plans that can currently be purchased.
func (srv *planService) ListPlans(ctx context.Context) ([]*entity.Plan, error) {
	plans, err := srv.planRepo.FindAll(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plans")
	}

	return plans, nil
}

func (srv *planService) GetPlan(ctx context.Context, id uuid.UUID) (*entity.Plan, error) {
	plan, err := srv.planRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, domainerrors.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find plan")
	}

	return plan, nil
}

func (srv *planService) CreatePlan(ctx context.Context, input *usecase.PlanInput) (*entity.Plan, error) {
	tier, err := validatePlanInput(input)
	if err != nil {
		return nil, err
	}

	plan := &entity.Plan{
		ID:           uuid.New(),
		Tier:         tier,
		Description:  input.Description,
		PriceCents:   input.PriceCents,
		MaxTasks:     input.MaxTasks,
		DurationDays: input.DurationDays,
		IsActive:     true,
		CreatedAt:    srv.now(),
	}

	if err := srv.planRepo.Create(ctx, plan); err != nil {
		return nil, errors.Wrap(err, "failed to create plan")
	}

	srv.log(ctx).Info("Plan created", slog.Any("plan_id", plan.ID), slog.String("tier", tier.String()))

	return plan, nil
}

// UpdatePlan rewrites the editable fields and keeps IsActive as it was.
// Subscriptions already sold keep the expiry computed at purchase time.
func (srv *planService) UpdatePlan(ctx context.Context, id uuid.UUID, input *usecase.PlanInput) (*entity.Plan, error) {
	tier, err := validatePlanInput(input)
	if err != nil {
		return nil, err
	}

	plan, err := srv.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}

	plan.Tier = tier
	plan.Description = input.Description
	plan.PriceCents = input.PriceCents
	plan.MaxTasks = input.MaxTasks
	plan.DurationDays = input.DurationDays

	if err := srv.savePlan(ctx, plan); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Plan updated", slog.Any("plan_id", plan.ID), slog.String("tier", tier.String()))

	return plan, nil
}

func (srv *planService) SetPlanActive(ctx context.Context, id uuid.UUID, active bool) (*entity.Plan, error) {
	plan, err := srv.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan.IsActive == active {
		return plan, nil
	}

	plan.IsActive = active
	if err := srv.savePlan(ctx, plan); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Plan availability changed", slog.Any("plan_id", plan.ID), slog.Bool("active", active))

	return plan, nil
}

func (srv *planService) savePlan(ctx context.Context, plan *entity.Plan) error {
	if err := srv.planRepo.Update(ctx, plan); err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return domainerrors.ErrPlanNotFound
		}

		return errors.Wrap(err, "failed to update plan")
	}

	return nil
}

func validatePlanInput(input *usecase.PlanInput) (entity.PlanTier, error) {
	tier, ok := entity.ParsePlanTier(input.Tier)
	if !ok {
		return tier, domainerrors.ErrInvalidEnum.WithDetails("unknown plan tier " + input.Tier)
	}

	switch {
	case input.MaxTasks < entity.UnlimitedTasks:
		return tier, domainerrors.ErrValidationFailed.WithDetails("maxTasks must be -1 or a non-negative number")
	case input.DurationDays <= 0:
		return tier, domainerrors.ErrValidationFailed.WithDetails("durationDays must be positive")
	case input.PriceCents < 0:
		return tier, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	return tier, nil
}

// Purchase checks and writes under the buyer's row lock so two concurrent
// purchases cannot both pass the active plan check.
func (srv *planService) Purchase(ctx context.Context, planID uuid.UUID, rc usecase.RequestContext) (*entity.Subscription, error) {
	var subscription *entity.Subscription

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		subscriptionRepo := repoFactory.NewSubscriptionRepository()

		if err := userRepo.LockForUpdate(ctx, rc.UserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to lock user")
		}

		plan, err := repoFactory.NewPlanRepository().FindByID(ctx, planID)
		if err != nil {
			if errors.Is(err, repository.ErrPlanNotFound) {
				return domainerrors.ErrPlanNotFound
			}

			return errors.Wrap(err, "failed to find plan")
		}
		if !plan.IsActive {
			return domainerrors.ErrPlanUnavailable
		}

		gate := policy.ActiveUserPlanPolicy{
			Users:         userRepo,
			Subscriptions: subscriptionRepo,
			DefaultTier:   srv.defaultTier,
			Now:           srv.now,
		}
		if err := gate.Validate(ctx, rc.UserID); err != nil {
			return err
		}

		now := srv.now()
		subscription = &entity.Subscription{
			ID:          uuid.New(),
			UserID:      rc.UserID,
			PlanID:      plan.ID,
			Plan:        plan,
			IsActive:    true,
			PurchasedAt: now,
			ExpiresAt:   now.AddDate(0, 0, plan.DurationDays),
		}

		return errors.Wrap(subscriptionRepo.Create(ctx, subscription), "failed to create subscription")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Plan purchased",
		slog.Any("user_id", rc.UserID),
		slog.Any("plan_id", planID),
		slog.Time("expires_at", subscription.ExpiresAt),
	)

	return subscription, nil
}

// Deactivate only sees the caller's own subscriptions; anyone else's is
// reported as not found.
func (srv *planService) Deactivate(ctx context.Context, subscriptionID uuid.UUID, rc usecase.RequestContext) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		subscriptionRepo := repoFactory.NewSubscriptionRepository()

		subscription, err := subscriptionRepo.FindByID(ctx, subscriptionID)
		if err != nil {
			if errors.Is(err, repository.ErrSubscriptionNotFound) {
				return domainerrors.ErrSubscriptionNotFound
			}

			return errors.Wrap(err, "failed to find subscription")
		}
		if subscription.UserID != rc.UserID {
			return domainerrors.ErrSubscriptionNotFound
		}

		if err := (policy.ExpirationPolicy{Now: srv.now}).Validate(ctx, subscription); err != nil {
			return err
		}

		ok, err := subscriptionRepo.Deactivate(ctx, subscription.ID)
		if err != nil {
			return errors.Wrap(err, "failed to deactivate subscription")
		}
		if !ok {
			return domainerrors.ErrPlanExpired
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Subscription deactivated", slog.Any("user_id", rc.UserID), slog.Any("subscription_id", subscriptionID))

	return nil
}

func (srv *planService) GetActive(ctx context.Context, rc usecase.RequestContext) (*entity.Subscription, error) {
	subscription, err := srv.subscriptionRepo.FindCurrent(ctx, rc.UserID, srv.now())
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, domainerrors.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find current subscription")
	}

	return subscription, nil
}

func (srv *planService) ListUserPlans(ctx context.Context, rc usecase.RequestContext) ([]*entity.Subscription, error) {
	subscriptions, err := srv.subscriptionRepo.FindByUser(ctx, rc.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	return subscriptions, nil
}
