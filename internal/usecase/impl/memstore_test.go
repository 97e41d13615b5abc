package impl

import (
	"context"
	"sort"
	"sync"
	"time"

	"taskgate/internal/domain/entity"
	domainerrors "taskgate/internal/domain/errors"
	"taskgate/internal/domain/repository"

	"github.com/google/uuid"
)

// memStore is an in-memory repository.TransactionManager. Transactions are
// serialised by a single mutex and roll back on error. Rows are copied on
// the way in and out so callers cannot mutate stored state by accident.
type memStore struct {
	mu            sync.Mutex
	users         map[uuid.UUID]entity.User
	sessions      map[uuid.UUID]entity.Session
	resetTokens   map[uuid.UUID]entity.ResetToken
	plans         map[uuid.UUID]entity.Plan
	subscriptions map[uuid.UUID]entity.Subscription
	tasks         map[uuid.UUID]entity.Task
}

func newMemStore() *memStore {
	return &memStore{
		users:         map[uuid.UUID]entity.User{},
		sessions:      map[uuid.UUID]entity.Session{},
		resetTokens:   map[uuid.UUID]entity.ResetToken{},
		plans:         map[uuid.UUID]entity.Plan{},
		subscriptions: map[uuid.UUID]entity.Subscription{},
		tasks:         map[uuid.UUID]entity.Task{},
	}
}

func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	backup := s.snapshot()
	if err := fn(memFactory{store: s}); err != nil {
		s.restore(backup)

		return err
	}

	return nil
}

// direct returns repositories that bypass Execute, like the non-transactional
// providers the services read through.
func (s *memStore) direct() memFactory {
	return memFactory{store: s, lock: true}
}

func (s *memStore) snapshot() *memStore {
	return &memStore{
		users:         copyMap(s.users),
		sessions:      copyMap(s.sessions),
		resetTokens:   copyMap(s.resetTokens),
		plans:         copyMap(s.plans),
		subscriptions: copyMap(s.subscriptions),
		tasks:         copyMap(s.tasks),
	}
}

func (s *memStore) restore(from *memStore) {
	s.users = from.users
	s.sessions = from.sessions
	s.resetTokens = from.resetTokens
	s.plans = from.plans
	s.subscriptions = from.subscriptions
	s.tasks = from.tasks
}

func copyMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}

	return out
}

// session returns a snapshot of the stored row, or nil when absent.
func (s *memStore) session(id uuid.UUID) *entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil
	}

	return &session
}

func (s *memStore) sessionsOf(userID uuid.UUID) []entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entity.Session
	for _, session := range s.sessions {
		if session.UserID == userID {
			out = append(out, session)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })

	return out
}

func (s *memStore) liveSessionsOf(userID uuid.UUID, now time.Time) []entity.Session {
	var live []entity.Session
	for _, session := range s.sessionsOf(userID) {
		if session.IsLive(now) {
			live = append(live, session)
		}
	}

	return live
}

func (s *memStore) putUser(user *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = *user
}

func (s *memStore) putPlan(plan *entity.Plan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans[plan.ID] = *plan
}

func (s *memStore) putSubscription(subscription *entity.Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *subscription
	stored.Plan = nil
	s.subscriptions[subscription.ID] = stored
}

func (s *memStore) updateSession(id uuid.UUID, change func(*entity.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session := s.sessions[id]
	change(&session)
	s.sessions[id] = session
}

type memFactory struct {
	store *memStore
	lock  bool
}

func (f memFactory) guard() func() {
	if !f.lock {
		return func() {}
	}
	f.store.mu.Lock()

	return f.store.mu.Unlock
}

func (f memFactory) NewUserRepository() repository.UserRepository                 { return memUsers(f) }
func (f memFactory) NewSessionRepository() repository.SessionRepository           { return memSessions(f) }
func (f memFactory) NewResetTokenRepository() repository.ResetTokenRepository     { return memResetTokens(f) }
func (f memFactory) NewPlanRepository() repository.PlanRepository                 { return memPlans(f) }
func (f memFactory) NewSubscriptionRepository() repository.SubscriptionRepository { return memSubscriptions(f) }
func (f memFactory) NewTaskRepository() repository.TaskRepository                 { return memTasks(f) }

type memUsers memFactory

func (r memUsers) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	defer memFactory(r).guard()()
	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	defer memFactory(r).guard()()
	for _, user := range r.store.users {
		if user.Email == email {
			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r memUsers) FindAll(_ context.Context) ([]*entity.User, error) {
	defer memFactory(r).guard()()

	out := make([]*entity.User, 0, len(r.store.users))
	for _, user := range r.store.users {
		out = append(out, &user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })

	return out, nil
}

func (r memUsers) Create(_ context.Context, user *entity.User) error {
	defer memFactory(r).guard()()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.store.users[user.ID] = *user

	return nil
}

func (r memUsers) Update(_ context.Context, user *entity.User) error {
	defer memFactory(r).guard()()
	if _, ok := r.store.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	for id, other := range r.store.users {
		if id != user.ID && other.Email == user.Email {
			return domainerrors.ErrUserAlreadyExists
		}
	}
	r.store.users[user.ID] = *user

	return nil
}

func (r memUsers) LockForUpdate(_ context.Context, id uuid.UUID) error {
	defer memFactory(r).guard()()
	if _, ok := r.store.users[id]; !ok {
		return repository.ErrUserNotFound
	}

	return nil
}

type memSessions memFactory

func (r memSessions) Create(_ context.Context, session *entity.Session) error {
	defer memFactory(r).guard()()
	r.store.sessions[session.ID] = *session

	return nil
}

func (r memSessions) findByHash(tokenHash string) (*entity.Session, error) {
	for _, session := range r.store.sessions {
		if session.TokenHash == tokenHash {
			return &session, nil
		}
	}

	return nil, repository.ErrSessionNotFound
}

func (r memSessions) FindByHash(_ context.Context, tokenHash string) (*entity.Session, error) {
	defer memFactory(r).guard()()

	return r.findByHash(tokenHash)
}

func (r memSessions) FindByHashForUpdate(_ context.Context, tokenHash string) (*entity.Session, error) {
	defer memFactory(r).guard()()

	return r.findByHash(tokenHash)
}

func (r memSessions) FindLive(_ context.Context, userID uuid.UUID, fingerprint entity.DeviceFingerprint, now time.Time) (*entity.Session, error) {
	defer memFactory(r).guard()()

	var newest *entity.Session
	for _, session := range r.store.sessions {
		if session.UserID != userID || session.Fingerprint != fingerprint || !session.IsLive(now) {
			continue
		}
		if newest == nil || session.CreatedAt.After(newest.CreatedAt) {
			newest = &session
		}
	}
	if newest == nil {
		return nil, repository.ErrSessionNotFound
	}

	return newest, nil
}

func (r memSessions) FindLiveByUser(_ context.Context, userID uuid.UUID, now time.Time) ([]*entity.Session, error) {
	defer memFactory(r).guard()()

	var out []*entity.Session
	for _, session := range r.store.sessions {
		if session.UserID == userID && session.IsLive(now) {
			out = append(out, &session)
		}
	}

	return out, nil
}

func (r memSessions) FindAllByUser(_ context.Context, userID uuid.UUID) ([]*entity.Session, error) {
	defer memFactory(r).guard()()

	var out []*entity.Session
	for _, session := range r.store.sessions {
		if session.UserID == userID {
			out = append(out, &session)
		}
	}

	return out, nil
}

// Revoke only touches rows that are not revoked yet, like the conditional UPDATE.
func (r memSessions) Revoke(_ context.Context, id uuid.UUID, at time.Time, replacedBy *uuid.UUID) (bool, error) {
	defer memFactory(r).guard()()

	session, ok := r.store.sessions[id]
	if !ok || session.RevokedAt != nil {
		return false, nil
	}
	session.RevokedAt = &at
	session.ReplacedByID = replacedBy
	r.store.sessions[id] = session

	return true, nil
}

type memResetTokens memFactory

func (r memResetTokens) Create(_ context.Context, token *entity.ResetToken) error {
	defer memFactory(r).guard()()
	r.store.resetTokens[token.ID] = *token

	return nil
}

func (r memResetTokens) FindUnexpiredByHashAndUser(_ context.Context, tokenHash string, userID uuid.UUID, now time.Time) (*entity.ResetToken, error) {
	defer memFactory(r).guard()()
	for _, token := range r.store.resetTokens {
		if token.TokenHash == tokenHash && token.UserID == userID && token.IsUsable(now) {
			return &token, nil
		}
	}

	return nil, repository.ErrResetTokenNotFound
}

func (r memResetTokens) Consume(_ context.Context, id uuid.UUID, now time.Time) (bool, error) {
	defer memFactory(r).guard()()

	token, ok := r.store.resetTokens[id]
	if !ok || !token.IsUsable(now) {
		return false, nil
	}
	token.ExpiresAt = now
	r.store.resetTokens[id] = token

	return true, nil
}

type memPlans memFactory

func (r memPlans) FindByID(_ context.Context, id uuid.UUID) (*entity.Plan, error) {
	defer memFactory(r).guard()()
	plan, ok := r.store.plans[id]
	if !ok {
		return nil, repository.ErrPlanNotFound
	}

	return &plan, nil
}

func (r memPlans) FindAll(_ context.Context, onlyActive bool) ([]*entity.Plan, error) {
	defer memFactory(r).guard()()

	var out []*entity.Plan
	for _, plan := range r.store.plans {
		if onlyActive && !plan.IsActive {
			continue
		}
		out = append(out, &plan)
	}

	return out, nil
}

func (r memPlans) Create(_ context.Context, plan *entity.Plan) error {
	defer memFactory(r).guard()()
	r.store.plans[plan.ID] = *plan

	return nil
}

func (r memPlans) Update(_ context.Context, plan *entity.Plan) error {
	defer memFactory(r).guard()()
	stored, ok := r.store.plans[plan.ID]
	if !ok {
		return repository.ErrPlanNotFound
	}
	updated := *plan
	updated.CreatedAt = stored.CreatedAt
	r.store.plans[plan.ID] = updated

	return nil
}

type memSubscriptions memFactory

func (r memSubscriptions) withPlan(subscription entity.Subscription) *entity.Subscription {
	if plan, ok := r.store.plans[subscription.PlanID]; ok {
		subscription.Plan = &plan
	}

	return &subscription
}

func (r memSubscriptions) Create(_ context.Context, subscription *entity.Subscription) error {
	defer memFactory(r).guard()()
	stored := *subscription
	stored.Plan = nil
	r.store.subscriptions[subscription.ID] = stored

	return nil
}

func (r memSubscriptions) FindByID(_ context.Context, id uuid.UUID) (*entity.Subscription, error) {
	defer memFactory(r).guard()()
	subscription, ok := r.store.subscriptions[id]
	if !ok {
		return nil, repository.ErrSubscriptionNotFound
	}

	return r.withPlan(subscription), nil
}

func (r memSubscriptions) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Subscription, error) {
	defer memFactory(r).guard()()

	var out []*entity.Subscription
	for _, subscription := range r.store.subscriptions {
		if subscription.UserID == userID {
			out = append(out, r.withPlan(subscription))
		}
	}

	return out, nil
}

func (r memSubscriptions) FindCurrent(_ context.Context, userID uuid.UUID, now time.Time) (*entity.Subscription, error) {
	defer memFactory(r).guard()()

	var current *entity.Subscription
	for _, subscription := range r.store.subscriptions {
		if subscription.UserID != userID || !subscription.IsCurrent(now) {
			continue
		}
		if current == nil || subscription.PurchasedAt.After(current.PurchasedAt) {
			current = r.withPlan(subscription)
		}
	}
	if current == nil {
		return nil, repository.ErrSubscriptionNotFound
	}

	return current, nil
}

func (r memSubscriptions) Deactivate(_ context.Context, id uuid.UUID) (bool, error) {
	defer memFactory(r).guard()()

	subscription, ok := r.store.subscriptions[id]
	if !ok || !subscription.IsActive {
		return false, nil
	}
	subscription.IsActive = false
	r.store.subscriptions[id] = subscription

	return true, nil
}

type memTasks memFactory

func (r memTasks) Create(_ context.Context, task *entity.Task) error {
	defer memFactory(r).guard()()
	r.store.tasks[task.ID] = *task

	return nil
}

func (r memTasks) FindByID(_ context.Context, id uuid.UUID) (*entity.Task, error) {
	defer memFactory(r).guard()()
	task, ok := r.store.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}

	return &task, nil
}

func (r memTasks) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	defer memFactory(r).guard()()

	var out []*entity.Task
	for _, task := range r.store.tasks {
		if task.UserID == userID {
			out = append(out, &task)
		}
	}

	return out, nil
}

func (r memTasks) Update(_ context.Context, task *entity.Task) error {
	defer memFactory(r).guard()()
	if _, ok := r.store.tasks[task.ID]; !ok {
		return repository.ErrTaskNotFound
	}
	r.store.tasks[task.ID] = *task

	return nil
}

func (r memTasks) Delete(_ context.Context, id uuid.UUID) error {
	defer memFactory(r).guard()()
	if _, ok := r.store.tasks[id]; !ok {
		return repository.ErrTaskNotFound
	}
	delete(r.store.tasks, id)

	return nil
}

func (r memTasks) CountByUser(_ context.Context, userID uuid.UUID) (int, error) {
	defer memFactory(r).guard()()

	count := 0
	for _, task := range r.store.tasks {
		if task.UserID == userID {
			count++
		}
	}

	return count, nil
}
