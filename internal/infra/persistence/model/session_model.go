package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'sessions' table. One row per link of a refresh
// rotation chain; rows are revoked, never deleted.
type SessionModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_sessions_user_device"`
	TokenHash    string     `gorm:"type:varchar(128);unique;not null"`
	ExpiresAt    time.Time  `gorm:"not null"`
	CreatedAt    time.Time  `gorm:"not null"`
	RevokedAt    *time.Time `gorm:"index"`
	ReplacedByID *uuid.UUID `gorm:"type:uuid"`
	IPAddress    string     `gorm:"type:varchar(64);not null;index:idx_sessions_user_device"`
	UserAgent    string     `gorm:"type:varchar(512);not null;index:idx_sessions_user_device"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
