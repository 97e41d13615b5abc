package handler

import (
	"time"

	"taskgate/internal/domain/entity"
	"taskgate/internal/usecase"

	"github.com/google/uuid"
)

// TokenResponse is returned by login and refresh.
type TokenResponse struct {
	AccessToken      string    `json:"access_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
	SessionID        uuid.UUID `json:"session_id"`
	TokenType        string    `json:"token_type"`
}

func toTokenResponse(pair *usecase.TokenPair) *TokenResponse {
	return &TokenResponse{
		AccessToken:      pair.AccessToken,
		AccessExpiresAt:  pair.AccessExpiresAt,
		RefreshToken:     pair.RefreshToken,
		RefreshExpiresAt: pair.RefreshExpiresAt,
		SessionID:        pair.SessionID,
		TokenType:        "Bearer",
	}
}

// UserResponse is the public view of an account. The password hash never
// leaves the usecase layer.
type UserResponse struct {
	ID                uuid.UUID  `json:"id"`
	Email             string     `json:"email"`
	Username          string     `json:"username"`
	Role              string     `json:"role"`
	PasswordChangedAt *time.Time `json:"password_changed_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:                user.ID,
		Email:             user.Email,
		Username:          user.Username,
		Role:              user.Role.String(),
		PasswordChangedAt: user.PasswordChangedAt,
		CreatedAt:         user.CreatedAt,
	}
}

// SessionResponse lists a live session without its token hash.
type SessionResponse struct {
	ID        uuid.UUID `json:"id"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Current   bool      `json:"current"`
}

func toSessionResponses(sessions []*entity.Session, currentID uuid.UUID) []*SessionResponse {
	out := make([]*SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, &SessionResponse{
			ID:        session.ID,
			IPAddress: session.Fingerprint.IPAddress,
			UserAgent: session.Fingerprint.UserAgent,
			CreatedAt: session.CreatedAt,
			ExpiresAt: session.ExpiresAt,
			Current:   session.ID == currentID,
		})
	}

	return out
}

// PlanResponse is a catalogue entry. MaxTasks is -1 for unlimited plans.
type PlanResponse struct {
	ID           uuid.UUID `json:"id"`
	Tier         string    `json:"tier"`
	Description  string    `json:"description"`
	PriceCents   int64     `json:"price_cents"`
	MaxTasks     int       `json:"max_tasks"`
	Unlimited    bool      `json:"unlimited"`
	DurationDays int       `json:"duration_days"`
	IsActive     bool      `json:"is_active"`
}

func toPlanResponse(plan *entity.Plan) *PlanResponse {
	return &PlanResponse{
		ID:           plan.ID,
		Tier:         plan.Tier.String(),
		Description:  plan.Description,
		PriceCents:   plan.PriceCents,
		MaxTasks:     plan.MaxTasks,
		Unlimited:    plan.IsUnlimited(),
		DurationDays: plan.DurationDays,
		IsActive:     plan.IsActive,
	}
}

func toPlanResponses(plans []*entity.Plan) []*PlanResponse {
	out := make([]*PlanResponse, 0, len(plans))
	for _, plan := range plans {
		out = append(out, toPlanResponse(plan))
	}

	return out
}

// SubscriptionResponse is one purchase of a plan.
type SubscriptionResponse struct {
	ID          uuid.UUID     `json:"id"`
	PlanID      uuid.UUID     `json:"plan_id"`
	Plan        *PlanResponse `json:"plan,omitempty"`
	IsActive    bool          `json:"is_active"`
	PurchasedAt time.Time     `json:"purchased_at"`
	ExpiresAt   time.Time     `json:"expires_at"`
}

func toSubscriptionResponse(sub *entity.Subscription) *SubscriptionResponse {
	out := &SubscriptionResponse{
		ID:          sub.ID,
		PlanID:      sub.PlanID,
		IsActive:    sub.IsActive,
		PurchasedAt: sub.PurchasedAt,
		ExpiresAt:   sub.ExpiresAt,
	}
	if sub.Plan != nil {
		out.Plan = toPlanResponse(sub.Plan)
	}

	return out
}

func toSubscriptionResponses(subs []*entity.Subscription) []*SubscriptionResponse {
	out := make([]*SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		out = append(out, toSubscriptionResponse(sub))
	}

	return out
}

// TaskResponse is a task owned by the caller.
type TaskResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toTaskResponse(task *entity.Task) *TaskResponse {
	return &TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func toTaskResponses(tasks []*entity.Task) []*TaskResponse {
	out := make([]*TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, toTaskResponse(task))
	}

	return out
}
