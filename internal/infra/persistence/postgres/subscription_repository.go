package postgres

import (
	"context"
	"time"

	"taskgate/internal/domain/entity"
	domainerrors "taskgate/internal/domain/errors"
	"taskgate/internal/domain/repository"
	"taskgate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
// Reads feed policy decisions and therefore run on the primary.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

func (repo *subscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).Omit("Plan").Create(subscriptionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPlanNotFound.WrapMessage("invalid plan or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
	}

	subscription.ID = subscriptionM.ID

	return nil
}

func (repo *subscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := primary(repo.db.WithContext(ctx)).
		Preload("Plan").
		Where("id = ?", id).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by id")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

func (repo *subscriptionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error) {
	var subscriptionModels []*model.SubscriptionModel

	if err := primary(repo.db.WithContext(ctx)).
		Preload("Plan").
		Where("user_id = ?", userID).
		Order("purchased_at DESC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions by user")
	}

	subscriptions := make([]*entity.Subscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

func (repo *subscriptionRepository) FindCurrent(ctx context.Context, userID uuid.UUID, now time.Time) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := primary(repo.db.WithContext(ctx)).
		Preload("Plan").
		Where("user_id = ? AND is_active = ? AND expires_at > ?", userID, true, now).
		Order("purchased_at DESC").
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find current subscription")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

func (repo *subscriptionRepository) Deactivate(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate subscription")
	}

	return result.RowsAffected == 1, nil
}

func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	if data == nil {
		return nil
	}

	return &entity.Subscription{
		ID:          data.ID,
		UserID:      data.UserID,
		PlanID:      data.PlanID,
		Plan:        toPlanDomain(data.Plan),
		IsActive:    data.IsActive,
		PurchasedAt: data.PurchasedAt,
		ExpiresAt:   data.ExpiresAt,
	}
}

func fromSubscriptionDomain(data *entity.Subscription) *model.SubscriptionModel {
	return &model.SubscriptionModel{
		ID:          data.ID,
		UserID:      data.UserID,
		PlanID:      data.PlanID,
		IsActive:    data.IsActive,
		PurchasedAt: data.PurchasedAt,
		ExpiresAt:   data.ExpiresAt,
	}
}
