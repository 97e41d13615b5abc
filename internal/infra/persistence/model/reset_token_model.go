package model

import (
	"time"

	"github.com/google/uuid"
)

// ResetTokenModel mirrors the 'password_reset_tokens' table.
type ResetTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(128);uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResetTokenModel) TableName() string {
	return "password_reset_tokens"
}
