package usecase

import (
	"context"

	"taskgate/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTaskInput defines a new task. Empty Status and Priority default to
// Todo and Mid; any other unknown value is rejected.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
}

// UpdateTaskInput replaces the editable fields of a task. Nil fields are kept.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
}

// TaskUsecase defines task operations. Every call is scoped to rc.UserID.
type TaskUsecase interface {
	// Create runs the task creation policies under a per-user lock.
	Create(ctx context.Context, input *CreateTaskInput, rc RequestContext) (*entity.Task, error)
	List(ctx context.Context, rc RequestContext) ([]*entity.Task, error)
	Get(ctx context.Context, taskID uuid.UUID, rc RequestContext) (*entity.Task, error)
	Update(ctx context.Context, taskID uuid.UUID, input *UpdateTaskInput, rc RequestContext) (*entity.Task, error)
	Delete(ctx context.Context, taskID uuid.UUID, rc RequestContext) error
	ChangeStatus(ctx context.Context, taskID uuid.UUID, status string, rc RequestContext) (*entity.Task, error)
	ChangePriority(ctx context.Context, taskID uuid.UUID, priority string, rc RequestContext) (*entity.Task, error)
}
