package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel mirrors the 'user_plans' table.
type SubscriptionModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	PlanID      uuid.UUID  `gorm:"type:uuid;not null"`
	Plan        *PlanModel `gorm:"foreignKey:PlanID"`
	IsActive    bool       `gorm:"not null;default:true"`
	PurchasedAt time.Time  `gorm:"not null"`
	ExpiresAt   time.Time  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "user_plans"
}
