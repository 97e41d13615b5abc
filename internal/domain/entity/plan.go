package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UnlimitedTasks as Plan.MaxTasks lifts the task quota entirely.
const UnlimitedTasks = -1

// PlanTier names a product tier in the catalogue.
type PlanTier string

const (
	PlanTierFree     PlanTier = "Free"
	PlanTierPremium  PlanTier = "Premium"
	PlanTierBusiness PlanTier = "Business"
)

var planTiers = []PlanTier{PlanTierFree, PlanTierPremium, PlanTierBusiness}

func (t PlanTier) String() string {
	return string(t)
}

// ParsePlanTier matches s case-insensitively. Unknown values are rejected.
func ParsePlanTier(s string) (PlanTier, bool) {
	for _, tier := range planTiers {
		if strings.EqualFold(strings.TrimSpace(s), string(tier)) {
			return tier, true
		}
	}

	return "", false
}

// Plan is a purchasable catalogue entry.
type Plan struct {
	ID           uuid.UUID
	Tier         PlanTier
	Description  string
	PriceCents   int64
	MaxTasks     int // UnlimitedTasks or a non-negative limit.
	DurationDays int
	IsActive     bool // Whether the plan can still be purchased.
	CreatedAt    time.Time
}

// IsUnlimited reports whether the plan imposes no task quota.
func (p *Plan) IsUnlimited() bool {
	return p.MaxTasks == UnlimitedTasks
}
