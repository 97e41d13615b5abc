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

type resetTokenRepository struct {
	db *gorm.DB
}

// NewResetTokenRepository is the constructor for resetTokenRepository.
func NewResetTokenRepository(db *gorm.DB) repository.ResetTokenRepository {
	return &resetTokenRepository{
		db: db,
	}
}

func (repo *resetTokenRepository) Create(ctx context.Context, token *entity.ResetToken) error {
	tokenM := fromResetTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reset token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

func (repo *resetTokenRepository) FindUnexpiredByHashAndUser(ctx context.Context, tokenHash string, userID uuid.UUID, now time.Time) (*entity.ResetToken, error) {
	var tokenM model.ResetTokenModel

	if err := primary(repo.db.WithContext(ctx)).
		Where("token_hash = ? AND user_id = ? AND expires_at > ?", tokenHash, userID, now).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find reset token")
	}

	return toResetTokenDomain(&tokenM), nil
}

// Consume only succeeds while the token is still unexpired, so two
// concurrent redemptions cannot both win.
func (repo *resetTokenRepository) Consume(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ResetTokenModel{}).
		Where("id = ? AND expires_at > ?", id, now).
		Update("expires_at", now)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume reset token")
	}

	return result.RowsAffected == 1, nil
}

func toResetTokenDomain(data *model.ResetTokenModel) *entity.ResetToken {
	return &entity.ResetToken{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromResetTokenDomain(data *entity.ResetToken) *model.ResetTokenModel {
	return &model.ResetTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
