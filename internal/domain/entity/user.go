// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a tenant account. Tasks, subscriptions and sessions all hang off it.
type User struct {
	ID                uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Email             string     // Unique login identifier, stored normalized.
	Username          string     // Display name.
	PasswordHash      string     // bcrypt hash of the user's password.
	Role              Role       // Authorization role carried in the access token.
	PasswordChangedAt *time.Time // Set on every password change or reset.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
