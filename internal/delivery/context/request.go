// Package context carries per-request values between the delivery layers:
// the request ID, a request-scoped logger and the authenticated caller.
package context

import (
	"context"
	"log/slog"

	"taskgate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyIdentity  ContextKey = "identity"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// Identity is the caller established by the auth middleware.
type Identity struct {
	UserID    uuid.UUID
	Email     string
	Role      entity.Role
	SessionID uuid.UUID
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestID returns the request ID set by the request ID middleware, or
// an empty string outside of it.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(string(KeyRequestID)).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetRequestIDFromContext extracts the request ID from context.Context.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLogger extracts the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault is GetLogger with a fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// SetIdentity stores the authenticated caller in echo.Context.
func SetIdentity(c echo.Context, identity *Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity returns the authenticated caller, or nil on anonymous routes.
func GetIdentity(c echo.Context) *Identity {
	identity, _ := c.Get(string(KeyIdentity)).(*Identity)

	return identity
}

// Fingerprint reads the device fingerprint of the current request. The IP
// comes from echo's RealIP, so it honours the configured IP extractor.
func Fingerprint(c echo.Context) entity.DeviceFingerprint {
	return entity.DeviceFingerprint{
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}
}
