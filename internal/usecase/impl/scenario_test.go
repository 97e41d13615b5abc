package impl

import (
	"context"
	"testing"
	"time"

	"taskgate/config"
	"taskgate/internal/domain/entity"
	domainerrors "taskgate/internal/domain/errors"
	"taskgate/internal/errors"
	"taskgate/internal/infra/auth"
	mockSvc "taskgate/internal/mocks/service"
	"taskgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// app wires the real services over one in-memory store.
type app struct {
	store    *memStore
	clock    *testClock
	sessions *sessionManager
	users    usecase.UserUsecase
	plans    usecase.PlanUsecase
	tasks    usecase.TaskUsecase
}

func newApp(t *testing.T) *app {
	t.Helper()

	cfg := newTestConfig()
	store := newMemStore()
	clock := newTestClock()
	direct := store.direct()
	codec := newTestCodec(t)

	sessions := newSessionManager(SessionManagerParams{TxManager: store, Codec: codec, Config: cfg, Logger: newDiscardLogger()})
	sessions.now = clock.Now

	lockout := mockSvc.NewMockLoginLockout(t)
	lockout.EXPECT().Check(mock.Anything, mock.Anything).Return(time.Time{}, nil).Maybe()
	lockout.EXPECT().Clear(mock.Anything, mock.Anything).Return(nil).Maybe()
	lockout.EXPECT().RecordFailure(mock.Anything, mock.Anything).Return(false, nil).Maybe()

	users := NewUserService(UserServiceParams{
		TxManager: store,
		UserRepo:  direct.NewUserRepository(),
		Hasher:    auth.NewBcryptHasherWithCost(4, config.PasswordStrengthConfig{}),
		Lockout:   lockout,
		Sessions:  sessions,
		Logger:    newDiscardLogger(),
	})

	plans := NewPlanService(PlanServiceParams{
		TxManager:        store,
		PlanRepo:         direct.NewPlanRepository(),
		SubscriptionRepo: direct.NewSubscriptionRepository(),
		Config:           cfg,
		Logger:           newDiscardLogger(),
	})
	plans.(*planService).now = clock.Now

	tasks := NewTaskService(TaskServiceParams{TxManager: store, TaskRepo: direct.NewTaskRepository(), Logger: newDiscardLogger()})
	tasks.(*taskService).now = clock.Now

	return &app{store: store, clock: clock, sessions: sessions, users: users, plans: plans, tasks: tasks}
}

func (a *app) register(t *testing.T, email string) *entity.User {
	t.Helper()

	out, err := a.users.Register(context.Background(), &usecase.RegisterUserInput{Email: email, Username: "user", Password: "Corr3ct!horse"})
	require.NoError(t, err)

	return out.User
}

func (a *app) login(t *testing.T, email string, fingerprint entity.DeviceFingerprint) *usecase.TokenPair {
	t.Helper()

	out, err := a.users.Login(context.Background(), &usecase.LoginInput{Email: email, Password: "Corr3ct!horse"},
		usecase.RequestContext{Fingerprint: fingerprint})
	require.NoError(t, err)

	return out.Tokens
}

func TestScenario_RotationInvalidatesPreviousSecret(t *testing.T) {
	a := newApp(t)
	a.register(t, "erin@example.com")
	first := a.login(t, "erin@example.com", laptop)

	rc := usecase.RequestContext{Fingerprint: laptop}
	second, err := a.users.Refresh(context.Background(), first.RefreshToken, rc)
	require.NoError(t, err)

	_, err = a.users.Refresh(context.Background(), first.RefreshToken, rc)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenReused))

	third, err := a.users.Refresh(context.Background(), second.RefreshToken, rc)
	require.NoError(t, err)
	assert.NotEqual(t, second.RefreshToken, third.RefreshToken)
}

func TestScenario_SingleDeviceRevocation(t *testing.T) {
	a := newApp(t)
	user := a.register(t, "frank@example.com")
	onLaptop := a.login(t, "frank@example.com", laptop)
	onPhone := a.login(t, "frank@example.com", phone)

	count, err := a.sessions.Revoke(context.Background(), user.ID, usecase.RevokeSingleDevice, laptop)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	now := a.clock.Now()
	assert.False(t, a.store.session(onLaptop.SessionID).IsLive(now))
	assert.True(t, a.store.session(onPhone.SessionID).IsLive(now))

	_, err = a.users.Refresh(context.Background(), onLaptop.RefreshToken, usecase.RequestContext{Fingerprint: laptop})
	assert.Error(t, err)
	_, err = a.users.Refresh(context.Background(), onPhone.RefreshToken, usecase.RequestContext{Fingerprint: phone})
	assert.NoError(t, err)
}

func TestScenario_SecondPaidPlanIsRefused(t *testing.T) {
	a := newApp(t)
	user := a.register(t, "grace@example.com")
	rc := usecase.RequestContext{UserID: user.ID}

	premium, err := a.plans.CreatePlan(context.Background(), &usecase.PlanInput{Tier: "Premium", MaxTasks: 20, DurationDays: 30, PriceCents: 999})
	require.NoError(t, err)
	business, err := a.plans.CreatePlan(context.Background(), &usecase.PlanInput{Tier: "Business", MaxTasks: entity.UnlimitedTasks, DurationDays: 30})
	require.NoError(t, err)

	_, err = a.plans.Purchase(context.Background(), premium.ID, rc)
	require.NoError(t, err)

	_, err = a.plans.Purchase(context.Background(), business.ID, rc)
	assert.True(t, errors.Is(err, domainerrors.ErrPlanAlreadyActive))
	assert.Equal(t, domainerrors.KindBusinessRule, domainerrors.KindOf(err))

	// The premium quota now applies to task creation.
	task, err := a.tasks.Create(context.Background(), &usecase.CreateTaskInput{Title: "first"}, rc)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, task.ID)
}
