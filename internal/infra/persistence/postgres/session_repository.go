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
	"gorm.io/gorm/clause"
)

// sessionRepository implements the repository.SessionRepository interface.
// Every lookup runs on the primary: a replica lagging behind a revoke would
// let a revoked session authenticate.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrInternalError.WrapMessage("refresh token hash collision")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

func (repo *sessionRepository) FindByHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	return repo.findByHash(primary(repo.db.WithContext(ctx)), tokenHash)
}

func (repo *sessionRepository) FindByHashForUpdate(ctx context.Context, tokenHash string) (*entity.Session, error) {
	return repo.findByHash(
		primary(repo.db.WithContext(ctx)).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}),
		tokenHash,
	)
}

func (repo *sessionRepository) findByHash(db *gorm.DB, tokenHash string) (*entity.Session, error) {
	var sessionM model.SessionModel

	if err := db.Where("token_hash = ?", tokenHash).First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by hash")
	}

	return toSessionDomain(&sessionM), nil
}

func (repo *sessionRepository) FindLive(ctx context.Context, userID uuid.UUID, fingerprint entity.DeviceFingerprint, now time.Time) (*entity.Session, error) {
	var sessionM model.SessionModel

	if err := primary(repo.db.WithContext(ctx)).
		Where("user_id = ? AND ip_address = ? AND user_agent = ?", userID, fingerprint.IPAddress, fingerprint.UserAgent).
		Where("revoked_at IS NULL AND expires_at > ?", now).
		Order("created_at DESC").
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find live session")
	}

	return toSessionDomain(&sessionM), nil
}

func (repo *sessionRepository) FindLiveByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.Session, error) {
	var sessionModels []*model.SessionModel

	if err := primary(repo.db.WithContext(ctx)).
		Where("user_id = ? AND revoked_at IS NULL AND expires_at > ?", userID, now).
		Order("created_at DESC").
		Find(&sessionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find live sessions")
	}

	return toSessionDomains(sessionModels), nil
}

func (repo *sessionRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error) {
	var sessionModels []*model.SessionModel

	if err := primary(repo.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sessionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sessions by user")
	}

	return toSessionDomains(sessionModels), nil
}

// Revoke is a conditional write: a session that is already revoked keeps
// its original RevokedAt and ReplacedByID.
func (repo *sessionRepository) Revoke(ctx context.Context, id uuid.UUID, at time.Time, replacedBy *uuid.UUID) (bool, error) {
	updates := map[string]any{"revoked_at": at}
	if replacedBy != nil {
		updates["replaced_by_id"] = *replacedBy
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Updates(updates)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to revoke session")
	}

	return result.RowsAffected == 1, nil
}

func toSessionDomains(models []*model.SessionModel) []*entity.Session {
	sessions := make([]*entity.Session, 0, len(models))
	for _, sessionM := range models {
		sessions = append(sessions, toSessionDomain(sessionM))
	}

	return sessions
}

func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		ID:           data.ID,
		UserID:       data.UserID,
		TokenHash:    data.TokenHash,
		ExpiresAt:    data.ExpiresAt,
		CreatedAt:    data.CreatedAt,
		RevokedAt:    data.RevokedAt,
		ReplacedByID: data.ReplacedByID,
		Fingerprint: entity.DeviceFingerprint{
			IPAddress: data.IPAddress,
			UserAgent: data.UserAgent,
		},
	}
}

func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		ID:           data.ID,
		UserID:       data.UserID,
		TokenHash:    data.TokenHash,
		ExpiresAt:    data.ExpiresAt,
		CreatedAt:    data.CreatedAt,
		RevokedAt:    data.RevokedAt,
		ReplacedByID: data.ReplacedByID,
		IPAddress:    data.Fingerprint.IPAddress,
		UserAgent:    data.Fingerprint.UserAgent,
	}
}
