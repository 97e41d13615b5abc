// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"time"

	"taskgate/internal/domain/entity"

	"github.com/google/uuid"
)

// RequestContext carries the caller metadata the session and policy core
// needs. Delivery code builds it once per request and passes it explicitly.
type RequestContext struct {
	UserID      uuid.UUID // Zero for anonymous calls such as login.
	RequestID   string
	Fingerprint entity.DeviceFingerprint
}

// TokenPair is the credential set handed to a client after login or refresh.
// RefreshToken is the raw secret and is never returned again.
type TokenPair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
	SessionID        uuid.UUID
}
