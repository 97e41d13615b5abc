package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSession_IsLive(t *testing.T) {
	now := time.Now()
	revokedAt := now.Add(-time.Minute)

	tests := []struct {
		name    string
		session Session
		want    bool
	}{
		{name: "fresh", session: Session{ExpiresAt: now.Add(time.Hour)}, want: true},
		{name: "expired", session: Session{ExpiresAt: now.Add(-time.Second)}, want: false},
		{name: "expires exactly now", session: Session{ExpiresAt: now}, want: false},
		{name: "revoked", session: Session{ExpiresAt: now.Add(time.Hour), RevokedAt: &revokedAt}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.session.IsLive(now))
		})
	}
}

func TestSession_WasRotated(t *testing.T) {
	successor := uuid.New()
	assert.False(t, (&Session{}).WasRotated())
	assert.True(t, (&Session{ReplacedByID: &successor}).WasRotated())
}

func TestSubscription_IsLapsed(t *testing.T) {
	now := time.Now()

	assert.False(t, (&Subscription{IsActive: true, ExpiresAt: now.Add(time.Hour)}).IsLapsed(now))
	assert.True(t, (&Subscription{IsActive: false, ExpiresAt: now.Add(time.Hour)}).IsLapsed(now))
	assert.True(t, (&Subscription{IsActive: true, ExpiresAt: now.Add(-time.Hour)}).IsLapsed(now))
}

func TestParseEnums(t *testing.T) {
	tier, ok := ParsePlanTier("premium")
	assert.True(t, ok)
	assert.Equal(t, PlanTierPremium, tier)

	_, ok = ParsePlanTier("gold")
	assert.False(t, ok)

	status, ok := ParseTaskStatus(" inprogress ")
	assert.True(t, ok)
	assert.Equal(t, TaskStatusInProgress, status)

	_, ok = ParseTaskStatus("Blocked")
	assert.False(t, ok)

	priority, ok := ParseTaskPriority("HIGH")
	assert.True(t, ok)
	assert.Equal(t, TaskPriorityHigh, priority)

	_, ok = ParseTaskPriority("")
	assert.False(t, ok)

	role, ok := ParseRole("Admin")
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, role)
}
