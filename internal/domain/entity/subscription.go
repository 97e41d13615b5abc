package entity

import (
	"time"

	"github.com/google/uuid"
)

// Subscription links a user to a purchased plan for a fixed period.
type Subscription struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	PlanID      uuid.UUID
	Plan        *Plan // Loaded alongside the subscription; nil when not preloaded.
	IsActive    bool
	PurchasedAt time.Time
	ExpiresAt   time.Time
}

// IsCurrent reports whether the subscription is active and unexpired at now.
func (s *Subscription) IsCurrent(now time.Time) bool {
	return s.IsActive && s.ExpiresAt.After(now)
}

// IsLapsed reports whether the subscription has already ended, either by
// expiry or by deactivation.
func (s *Subscription) IsLapsed(now time.Time) bool {
	return s.ExpiresAt.Before(now) || !s.IsActive
}
