package model

import (
	"time"

	"github.com/google/uuid"
)

// PlanModel mirrors the 'plans' table.
type PlanModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Tier         string    `gorm:"type:varchar(20);not null"`
	Description  string    `gorm:"type:text"`
	PriceCents   int64     `gorm:"not null;default:0"`
	MaxTasks     int       `gorm:"not null;default:-1"`
	DurationDays int       `gorm:"not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlanModel) TableName() string {
	return "plans"
}
