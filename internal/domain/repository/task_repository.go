package repository

import (
	"context"

	"taskgate/internal/domain/entity"
	"taskgate/internal/errors"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when a task does not exist.
var ErrTaskNotFound = errors.New("task not found")

type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error)
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByUser counts the user's tasks on the primary, so a count taken
	// inside a transaction observes that transaction's writes.
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}
