package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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

const maxTaskTitleLength = 200

// taskService implements the TaskUsecase interface.
type taskService struct {
	txManager repository.TransactionManager
	taskRepo  repository.TaskRepository
	// creationPolicy builds the create gate around the transaction's task repository.
	creationPolicy func(counter policy.TaskCounter) policy.TaskPolicy
	now            func() time.Time
	logger         *slog.Logger
}

// TaskServiceParams holds dependencies for TaskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TaskRepo  repository.TaskRepository
	Logger    *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		txManager: params.TxManager,
		taskRepo:  params.TaskRepo,
		creationPolicy: func(counter policy.TaskCounter) policy.TaskPolicy {
			return policy.NewTaskCreationPolicy(counter)
		},
		now:    time.Now,
		logger: params.Logger,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create evaluates the plan and quota policies and inserts the task in one
// transaction holding the user's row lock.
func (srv *taskService) Create(ctx context.Context, input *usecase.CreateTaskInput, rc usecase.RequestContext) (*entity.Task, error) {
	title := strings.TrimSpace(input.Title)
	if err := validateTaskTitle(title); err != nil {
		return nil, err
	}

	status := entity.TaskStatusTodo
	if input.Status != "" {
		parsed, ok := entity.ParseTaskStatus(input.Status)
		if !ok {
			return nil, domainerrors.ErrInvalidEnum.WithDetails("unknown task status " + input.Status)
		}
		status = parsed
	}

	priority := entity.TaskPriorityMid
	if input.Priority != "" {
		parsed, ok := entity.ParseTaskPriority(input.Priority)
		if !ok {
			return nil, domainerrors.ErrInvalidEnum.WithDetails("unknown task priority " + input.Priority)
		}
		priority = parsed
	}

	var task *entity.Task
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.NewTaskRepository()

		if err := repoFactory.NewUserRepository().LockForUpdate(ctx, rc.UserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to lock user")
		}

		now := srv.now()
		snapshot, err := repoFactory.NewSubscriptionRepository().FindCurrent(ctx, rc.UserID, now)
		if err != nil {
			if !errors.Is(err, repository.ErrSubscriptionNotFound) {
				return errors.Wrap(err, "failed to find current subscription")
			}
			snapshot = nil
		}

		if err := srv.creationPolicy(taskRepo).Validate(ctx, rc.UserID, snapshot); err != nil {
			return err
		}

		task = &entity.Task{
			ID:          uuid.New(),
			UserID:      rc.UserID,
			Title:       title,
			Description: input.Description,
			Status:      status,
			Priority:    priority,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		return errors.Wrap(taskRepo.Create(ctx, task), "failed to create task")
	})
	if err != nil {
		if domainerrors.KindOf(err) == domainerrors.KindBusinessRule {
			srv.log(ctx).Info("Task creation refused", slog.Any("user_id", rc.UserID), slog.Any("error", err))
		}

		return nil, err
	}

	return task, nil
}

func (srv *taskService) List(ctx context.Context, rc usecase.RequestContext) ([]*entity.Task, error) {
	tasks, err := srv.taskRepo.FindByUser(ctx, rc.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}

func (srv *taskService) Get(ctx context.Context, taskID uuid.UUID, rc usecase.RequestContext) (*entity.Task, error) {
	return srv.findOwned(ctx, srv.taskRepo, taskID, rc.UserID)
}

func (srv *taskService) Update(ctx context.Context, taskID uuid.UUID, input *usecase.UpdateTaskInput, rc usecase.RequestContext) (*entity.Task, error) {
	return srv.mutate(ctx, taskID, rc, func(task *entity.Task) error {
		if input.Title != nil {
			title := strings.TrimSpace(*input.Title)
			if err := validateTaskTitle(title); err != nil {
				return err
			}
			task.Title = title
		}
		if input.Description != nil {
			task.Description = *input.Description
		}
		if input.Status != nil {
			if err := applyStatus(task, *input.Status); err != nil {
				return err
			}
		}
		if input.Priority != nil {
			if err := applyPriority(task, *input.Priority); err != nil {
				return err
			}
		}

		return nil
	})
}

func (srv *taskService) ChangeStatus(ctx context.Context, taskID uuid.UUID, status string, rc usecase.RequestContext) (*entity.Task, error) {
	return srv.mutate(ctx, taskID, rc, func(task *entity.Task) error {
		return applyStatus(task, status)
	})
}

func (srv *taskService) ChangePriority(ctx context.Context, taskID uuid.UUID, priority string, rc usecase.RequestContext) (*entity.Task, error) {
	return srv.mutate(ctx, taskID, rc, func(task *entity.Task) error {
		return applyPriority(task, priority)
	})
}

func (srv *taskService) Delete(ctx context.Context, taskID uuid.UUID, rc usecase.RequestContext) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.NewTaskRepository()

		if _, err := srv.findOwned(ctx, taskRepo, taskID, rc.UserID); err != nil {
			return err
		}

		if err := taskRepo.Delete(ctx, taskID); err != nil {
			if errors.Is(err, repository.ErrTaskNotFound) {
				return domainerrors.ErrTaskNotFound
			}

			return errors.Wrap(err, "failed to delete task")
		}

		return nil
	})
}

// mutate loads the caller's task, applies change and saves it.
func (srv *taskService) mutate(ctx context.Context, taskID uuid.UUID, rc usecase.RequestContext, change func(*entity.Task) error) (*entity.Task, error) {
	var task *entity.Task

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.NewTaskRepository()

		var err error
		task, err = srv.findOwned(ctx, taskRepo, taskID, rc.UserID)
		if err != nil {
			return err
		}

		if err := change(task); err != nil {
			return err
		}
		task.UpdatedAt = srv.now()

		return errors.Wrap(taskRepo.Update(ctx, task), "failed to update task")
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

// findOwned hides tasks of other users behind ErrTaskNotFound.
func (srv *taskService) findOwned(ctx context.Context, taskRepo repository.TaskRepository, taskID, userID uuid.UUID) (*entity.Task, error) {
	task, err := taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task")
	}
	if task.UserID != userID {
		return nil, domainerrors.ErrTaskNotFound
	}

	return task, nil
}

func validateTaskTitle(title string) error {
	if title == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title is required")
	}
	if len(title) > maxTaskTitleLength {
		return domainerrors.ErrValidationFailed.WithDetails("title is too long")
	}

	return nil
}

func applyStatus(task *entity.Task, value string) error {
	status, ok := entity.ParseTaskStatus(value)
	if !ok {
		return domainerrors.ErrInvalidEnum.WithDetails("unknown task status " + value)
	}
	task.Status = status

	return nil
}

func applyPriority(task *entity.Task, value string) error {
	priority, ok := entity.ParseTaskPriority(value)
	if !ok {
		return domainerrors.ErrInvalidEnum.WithDetails("unknown task priority " + value)
	}
	task.Priority = priority

	return nil
}
