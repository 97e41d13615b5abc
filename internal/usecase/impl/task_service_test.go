package impl

import (
	"context"
	"testing"
	"time"

	"taskgate/internal/domain/entity"
	domainerrors "taskgate/internal/domain/errors"
	"taskgate/internal/domain/policy"
	"taskgate/internal/domain/repository"
	"taskgate/internal/errors"
	mockRepo "taskgate/internal/mocks/repository"
	"taskgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskFixture struct {
	store   *memStore
	clock   *testClock
	service *taskService
	rc      usecase.RequestContext
}

func newTaskFixture(t *testing.T, maxTasks int) *taskFixture {
	t.Helper()

	store := newMemStore()
	clock := newTestClock()

	srv := NewTaskService(TaskServiceParams{
		TxManager: store,
		TaskRepo:  store.direct().NewTaskRepository(),
		Logger:    newDiscardLogger(),
	}).(*taskService)
	srv.now = clock.Now

	user := &entity.User{ID: uuid.New(), Email: "dave@example.com"}
	store.putUser(user)

	if maxTasks != 0 {
		plan := &entity.Plan{ID: uuid.New(), Tier: entity.PlanTierPremium, MaxTasks: maxTasks, DurationDays: 30, IsActive: true}
		store.putPlan(plan)
		store.putSubscription(&entity.Subscription{
			ID:          uuid.New(),
			UserID:      user.ID,
			PlanID:      plan.ID,
			IsActive:    true,
			PurchasedAt: clock.Now(),
			ExpiresAt:   clock.Now().Add(30 * 24 * time.Hour),
		})
	}

	return &taskFixture{store: store, clock: clock, service: srv, rc: usecase.RequestContext{UserID: user.ID}}
}

func TestTaskService_Create(t *testing.T) {
	fx := newTaskFixture(t, 20)

	task, err := fx.service.Create(context.Background(), &usecase.CreateTaskInput{Title: "  Write report  "}, fx.rc)

	require.NoError(t, err)
	assert.Equal(t, "Write report", task.Title)
	assert.Equal(t, entity.TaskStatusTodo, task.Status)
	assert.Equal(t, entity.TaskPriorityMid, task.Priority)
	assert.Equal(t, fx.rc.UserID, task.UserID)

	task, err = fx.service.Create(context.Background(), &usecase.CreateTaskInput{Title: "Ship", Status: "inprogress", Priority: "HIGH"}, fx.rc)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusInProgress, task.Status)
	assert.Equal(t, entity.TaskPriorityHigh, task.Priority)
}

func TestTaskService_Create_RejectsInput(t *testing.T) {
	fx := newTaskFixture(t, 20)

	tests := []struct {
		name    string
		input   usecase.CreateTaskInput
		wantErr error
	}{
		{name: "blank title", input: usecase.CreateTaskInput{Title: "   "}, wantErr: domainerrors.ErrValidationFailed},
		{name: "unknown status", input: usecase.CreateTaskInput{Title: "x", Status: "Blocked"}, wantErr: domainerrors.ErrInvalidEnum},
		{name: "unknown priority", input: usecase.CreateTaskInput{Title: "x", Priority: "Urgent"}, wantErr: domainerrors.ErrInvalidEnum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Create(context.Background(), &tt.input, fx.rc)

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
		})
	}
}

func TestTaskService_Create_EnforcesPlan(t *testing.T) {
	t.Run("no plan", func(t *testing.T) {
		fx := newTaskFixture(t, 0)

		_, err := fx.service.Create(context.Background(), &usecase.CreateTaskInput{Title: "x"}, fx.rc)

		assert.True(t, errors.Is(err, domainerrors.ErrNoActivePlan))
		assert.Equal(t, domainerrors.KindBusinessRule, domainerrors.KindOf(err))
	})

	t.Run("quota", func(t *testing.T) {
		fx := newTaskFixture(t, 2)

		for range 2 {
			_, err := fx.service.Create(context.Background(), &usecase.CreateTaskInput{Title: "x"}, fx.rc)
			require.NoError(t, err)
		}

		_, err := fx.service.Create(context.Background(), &usecase.CreateTaskInput{Title: "x"}, fx.rc)
		assert.True(t, errors.Is(err, domainerrors.ErrQuotaExceeded))

		tasks, err := fx.service.List(context.Background(), fx.rc)
		require.NoError(t, err)
		assert.Len(t, tasks, 2)
	})

	t.Run("unlimited", func(t *testing.T) {
		fx := newTaskFixture(t, entity.UnlimitedTasks)

		for range 25 {
			_, err := fx.service.Create(context.Background(), &usecase.CreateTaskInput{Title: "x"}, fx.rc)
			require.NoError(t, err)
		}
	})
}

func TestTaskService_Create_UsesConfiguredPolicy(t *testing.T) {
	fx := newTaskFixture(t, 20)
	refusal := domainerrors.ErrQuotaExceeded.WithDetails("custom gate")

	var sawSnapshot *entity.Subscription
	fx.service.creationPolicy = func(policy.TaskCounter) policy.TaskPolicy {
		return policy.NewComposite(policyFunc(func(_ context.Context, _ uuid.UUID, snapshot *entity.Subscription) error {
			sawSnapshot = snapshot

			return refusal
		}))
	}

	_, err := fx.service.Create(context.Background(), &usecase.CreateTaskInput{Title: "x"}, fx.rc)

	assert.ErrorIs(t, err, refusal)
	require.NotNil(t, sawSnapshot)
	assert.Equal(t, 20, sawSnapshot.Plan.MaxTasks)
}

type policyFunc func(ctx context.Context, userID uuid.UUID, snapshot *entity.Subscription) error

func (f policyFunc) Validate(ctx context.Context, userID uuid.UUID, snapshot *entity.Subscription) error {
	return f(ctx, userID, snapshot)
}

func TestTaskService_OwnerScoping(t *testing.T) {
	fx := newTaskFixture(t, 20)
	ctx := context.Background()
	stranger := usecase.RequestContext{UserID: uuid.New()}

	task, err := fx.service.Create(ctx, &usecase.CreateTaskInput{Title: "private"}, fx.rc)
	require.NoError(t, err)

	_, err = fx.service.Get(ctx, task.ID, stranger)
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))

	_, err = fx.service.ChangeStatus(ctx, task.ID, "Done", stranger)
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))

	err = fx.service.Delete(ctx, task.ID, stranger)
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))

	got, err := fx.service.Get(ctx, task.ID, fx.rc)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusTodo, got.Status)
}

func TestTaskService_UpdateAndDelete(t *testing.T) {
	fx := newTaskFixture(t, 20)
	ctx := context.Background()

	task, err := fx.service.Create(ctx, &usecase.CreateTaskInput{Title: "draft"}, fx.rc)
	require.NoError(t, err)

	fx.clock.Advance(time.Minute)
	title := "final"
	updated, err := fx.service.Update(ctx, task.ID, &usecase.UpdateTaskInput{Title: &title}, fx.rc)
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Title)
	assert.Equal(t, entity.TaskPriorityMid, updated.Priority)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	updated, err = fx.service.ChangePriority(ctx, task.ID, "low", fx.rc)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskPriorityLow, updated.Priority)

	bad := "Someday"
	_, err = fx.service.Update(ctx, task.ID, &usecase.UpdateTaskInput{Status: &bad}, fx.rc)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidEnum))

	require.NoError(t, fx.service.Delete(ctx, task.ID, fx.rc))
	_, err = fx.service.Get(ctx, task.ID, fx.rc)
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))
}

func TestTaskService_Create_StorageFailure(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	srv := NewTaskService(TaskServiceParams{
		TxManager: txManager,
		TaskRepo:  mockRepo.NewMockTaskRepository(t),
		Logger:    newDiscardLogger(),
	})
	userID := uuid.New()
	dbErr := errors.New("deadlock detected")

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		users := mockRepo.NewMockUserRepository(t)
		subscriptions := mockRepo.NewMockSubscriptionRepository(t)
		factory.EXPECT().NewTaskRepository().Return(mockRepo.NewMockTaskRepository(t))
		factory.EXPECT().NewUserRepository().Return(users)
		factory.EXPECT().NewSubscriptionRepository().Return(subscriptions)
		users.EXPECT().LockForUpdate(mock.Anything, userID).Return(nil)
		subscriptions.EXPECT().FindCurrent(mock.Anything, userID, mock.AnythingOfType("time.Time")).Return(nil, dbErr)
	})

	_, err := srv.Create(context.Background(), &usecase.CreateTaskInput{Title: "x"}, usecase.RequestContext{UserID: userID})

	assert.True(t, errors.Is(err, dbErr))
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
	assert.False(t, errors.Is(err, repository.ErrSubscriptionNotFound))
}
