package policy

import (
	"context"
	"testing"
	"time"

	"taskgate/internal/domain/entity"
	domainerrors "taskgate/internal/domain/errors"
	"taskgate/internal/domain/repository"
	"taskgate/internal/errors"
	mockRepo "taskgate/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCounter struct {
	count int
	err   error
	calls int
}

func (c *countingCounter) CountByUser(_ context.Context, _ uuid.UUID) (int, error) {
	c.calls++

	return c.count, c.err
}

type recordingPolicy struct {
	name  string
	err   error
	trace *[]string
}

func (p recordingPolicy) Validate(_ context.Context, _ uuid.UUID, _ *entity.Subscription) error {
	*p.trace = append(*p.trace, p.name)

	return p.err
}

func snapshotWithLimit(maxTasks int) *entity.Subscription {
	return &entity.Subscription{
		ID:       uuid.New(),
		IsActive: true,
		Plan:     &entity.Plan{ID: uuid.New(), Tier: entity.PlanTierPremium, MaxTasks: maxTasks},
	}
}

func TestComposite_RunsInOrderAndStopsAtFirstFailure(t *testing.T) {
	var trace []string
	failure := errors.New("second fails")

	composite := NewComposite(
		recordingPolicy{name: "first", trace: &trace},
		recordingPolicy{name: "second", err: failure, trace: &trace},
		recordingPolicy{name: "third", trace: &trace},
	)

	err := composite.Validate(context.Background(), uuid.New(), nil)

	assert.ErrorIs(t, err, failure)
	assert.Equal(t, []string{"first", "second"}, trace)
}

func TestComposite_EmptyPasses(t *testing.T) {
	assert.NoError(t, NewComposite().Validate(context.Background(), uuid.New(), nil))
}

func TestTaskCreationPolicy_NoPlanNeverCountsTasks(t *testing.T) {
	counter := &countingCounter{count: 0}
	gate := NewTaskCreationPolicy(counter)

	err := gate.Validate(context.Background(), uuid.New(), nil)
	assert.True(t, errors.Is(err, domainerrors.ErrNoActivePlan))
	assert.Equal(t, domainerrors.KindBusinessRule, domainerrors.KindOf(err))
	assert.Equal(t, 0, counter.calls)

	err = gate.Validate(context.Background(), uuid.New(), &entity.Subscription{})
	assert.True(t, errors.Is(err, domainerrors.ErrNoActivePlan))
	assert.Equal(t, 0, counter.calls)
}

func TestTaskCreationPolicy_QuotaBoundary(t *testing.T) {
	tests := []struct {
		name     string
		maxTasks int
		owned    int
		wantErr  error
	}{
		{name: "one below the ceiling", maxTasks: 5, owned: 4},
		{name: "at the ceiling", maxTasks: 5, owned: 5, wantErr: domainerrors.ErrQuotaExceeded},
		{name: "above the ceiling", maxTasks: 5, owned: 9, wantErr: domainerrors.ErrQuotaExceeded},
		{name: "zero ceiling", maxTasks: 0, owned: 0, wantErr: domainerrors.ErrQuotaExceeded},
		{name: "unlimited", maxTasks: entity.UnlimitedTasks, owned: 1_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := &countingCounter{count: tt.owned}

			err := NewTaskCreationPolicy(counter).Validate(context.Background(), uuid.New(), snapshotWithLimit(tt.maxTasks))

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
		})
	}
}

func TestMaxTasksPolicy_UnlimitedNeverCounts(t *testing.T) {
	counter := &countingCounter{count: 42}

	err := MaxTasksPolicy{Counter: counter}.Validate(context.Background(), uuid.New(), snapshotWithLimit(entity.UnlimitedTasks))

	require.NoError(t, err)
	assert.Equal(t, 0, counter.calls)
}

func TestMaxTasksPolicy_CounterFailureIsInternal(t *testing.T) {
	counter := &countingCounter{err: errors.New("connection reset")}

	err := MaxTasksPolicy{Counter: counter}.Validate(context.Background(), uuid.New(), snapshotWithLimit(5))

	require.Error(t, err)
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
}

func TestActiveUserPlanPolicy(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	sub := func(tier entity.PlanTier, active bool, expiresIn time.Duration) *entity.Subscription {
		return &entity.Subscription{
			ID:        uuid.New(),
			UserID:    userID,
			IsActive:  active,
			ExpiresAt: now.Add(expiresIn),
			Plan:      &entity.Plan{Tier: tier},
		}
	}

	tests := []struct {
		name    string
		subs    []*entity.Subscription
		wantErr error
	}{
		{name: "no subscriptions"},
		{name: "only the default tier", subs: []*entity.Subscription{sub(entity.PlanTierFree, true, time.Hour)}},
		{name: "expired premium", subs: []*entity.Subscription{sub(entity.PlanTierPremium, true, -time.Hour)}},
		{name: "deactivated premium", subs: []*entity.Subscription{sub(entity.PlanTierPremium, false, time.Hour)}},
		{
			name:    "current premium",
			subs:    []*entity.Subscription{sub(entity.PlanTierFree, true, time.Hour), sub(entity.PlanTierPremium, true, time.Hour)},
			wantErr: domainerrors.ErrPlanAlreadyActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := mockRepo.NewMockUserRepository(t)
			subscriptions := mockRepo.NewMockSubscriptionRepository(t)
			ctx := context.Background()

			users.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
			subscriptions.EXPECT().FindByUser(ctx, userID).Return(tt.subs, nil)

			p := ActiveUserPlanPolicy{
				Users:         users,
				Subscriptions: subscriptions,
				Now:           func() time.Time { return now },
			}

			err := p.Validate(ctx, userID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Equal(t, domainerrors.KindBusinessRule, domainerrors.KindOf(err))
			}
		})
	}
}

func TestActiveUserPlanPolicy_UnknownUser(t *testing.T) {
	users := mockRepo.NewMockUserRepository(t)
	subscriptions := mockRepo.NewMockSubscriptionRepository(t)
	ctx := context.Background()
	userID := uuid.New()

	users.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	err := ActiveUserPlanPolicy{Users: users, Subscriptions: subscriptions}.Validate(ctx, userID)

	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestExpirationPolicy(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := ExpirationPolicy{Now: func() time.Time { return now }}

	active := &entity.Subscription{IsActive: true, ExpiresAt: now.Add(time.Hour)}
	assert.NoError(t, p.Validate(context.Background(), active))

	lapsed := &entity.Subscription{IsActive: true, ExpiresAt: now.Add(-time.Minute)}
	assert.True(t, errors.Is(p.Validate(context.Background(), lapsed), domainerrors.ErrPlanExpired))

	inactive := &entity.Subscription{IsActive: false, ExpiresAt: now.Add(time.Hour)}
	assert.True(t, errors.Is(p.Validate(context.Background(), inactive), domainerrors.ErrPlanExpired))
}
