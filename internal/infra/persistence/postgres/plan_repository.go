package postgres

import (
	"context"

	"taskgate/internal/domain/entity"
	domainerrors "taskgate/internal/domain/errors"
	"taskgate/internal/domain/repository"
	"taskgate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// planRepository serves the plan catalogue. Catalogue listings tolerate
// replica lag and are routed to replicas.
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository is the constructor for planRepository.
func NewPlanRepository(db *gorm.DB) repository.PlanRepository {
	return &planRepository{
		db: db,
	}
}

func (repo *planRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Plan, error) {
	var planM model.PlanModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find plan by id")
	}

	return toPlanDomain(&planM), nil
}

func (repo *planRepository) FindAll(ctx context.Context, onlyActive bool) ([]*entity.Plan, error) {
	var planModels []*model.PlanModel

	query := replica(repo.db.WithContext(ctx))
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Order("price_cents ASC").Find(&planModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list plans")
	}

	plans := make([]*entity.Plan, 0, len(planModels))
	for _, planM := range planModels {
		plans = append(plans, toPlanDomain(planM))
	}

	return plans, nil
}

func (repo *planRepository) Create(ctx context.Context, plan *entity.Plan) error {
	planM := fromPlanDomain(plan)

	if err := repo.db.WithContext(ctx).Create(planM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required plan information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create plan")
	}

	plan.ID = planM.ID
	plan.CreatedAt = planM.CreatedAt

	return nil
}

func (repo *planRepository) Update(ctx context.Context, plan *entity.Plan) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlanModel{}).
		Where("id = ?", plan.ID).
		Updates(map[string]any{
			"tier":          plan.Tier.String(),
			"description":   plan.Description,
			"price_cents":   plan.PriceCents,
			"max_tasks":     plan.MaxTasks,
			"duration_days": plan.DurationDays,
			"is_active":     plan.IsActive,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update plan")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlanNotFound
	}

	return nil
}

func toPlanDomain(data *model.PlanModel) *entity.Plan {
	if data == nil {
		return nil
	}

	return &entity.Plan{
		ID:           data.ID,
		Tier:         entity.PlanTier(data.Tier),
		Description:  data.Description,
		PriceCents:   data.PriceCents,
		MaxTasks:     data.MaxTasks,
		DurationDays: data.DurationDays,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
	}
}

func fromPlanDomain(data *entity.Plan) *model.PlanModel {
	return &model.PlanModel{
		ID:           data.ID,
		Tier:         data.Tier.String(),
		Description:  data.Description,
		PriceCents:   data.PriceCents,
		MaxTasks:     data.MaxTasks,
		DurationDays: data.DurationDays,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
	}
}
