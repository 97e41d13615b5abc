package errors

import (
	"net/http"

	"taskgate/internal/errors"
)

// Kind classifies a failure independent of transport.
type Kind uint8

const (
	KindInternal Kind = iota
	KindUnauthorized
	KindNotFound
	KindBusinessRule
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindBusinessRule:
		return "business_rule_violation"
	case KindValidation:
		return "validation"
	default:
		return "internal"
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Transport-independent category
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// KindOf returns the kind of the first AppError in err's chain.
// Anything else, storage failures included, is KindInternal.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details. The copy still matches the
// original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches copies made by WithDetails against the predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode && e.kind == t.kind
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		KindValidation,
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Email is already registered",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		KindUnauthorized,
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrAccountLocked = NewBaseError(
		KindUnauthorized,
		http.StatusUnauthorized,
		"ACCOUNT_LOCKED",
		"Too many failed attempts, try again later",
		"",
	)

	ErrMissingToken = NewBaseError(
		KindUnauthorized,
		http.StatusUnauthorized,
		"MISSING_TOKEN",
		"Authorization token is required",
		"",
	)

	ErrInvalidToken = NewBaseError(
		KindUnauthorized,
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid authorization token",
		"",
	)

	ErrTokenExpired = NewBaseError(
		KindUnauthorized,
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Authorization token has expired",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		KindUnauthorized,
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Session is no longer valid",
		"",
	)

	ErrRefreshTokenExpired = NewBaseError(
		KindUnauthorized,
		http.StatusUnauthorized,
		"REFRESH_TOKEN_EXPIRED",
		"Your session has expired",
		"",
	)

	// Presenting an unknown, already rotated or revoked refresh secret.
	ErrRefreshTokenReused = NewBaseError(
		KindUnauthorized,
		http.StatusUnauthorized,
		"REFRESH_TOKEN_REUSED",
		"Your session has expired",
		"",
	)

	ErrResetTokenInvalid = NewBaseError(
		KindUnauthorized,
		http.StatusUnauthorized,
		"RESET_TOKEN_INVALID",
		"The request could not be authorized",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password is too weak",
		"",
	)

	ErrPasswordForbiddenWords = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"PASSWORD_FORBIDDEN_WORDS",
		"Password contains forbidden words or patterns",
		"",
	)

	ErrForbidden = NewBaseError(
		KindUnauthorized,
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	// Plan and quota errors
	ErrNoActivePlan = NewBaseError(
		KindBusinessRule,
		http.StatusUnprocessableEntity,
		"NO_ACTIVE_PLAN",
		"You don't have an active plan",
		"",
	)

	ErrQuotaExceeded = NewBaseError(
		KindBusinessRule,
		http.StatusUnprocessableEntity,
		"QUOTA_EXCEEDED",
		"Your plan's task limit has been reached",
		"",
	)

	ErrPlanAlreadyActive = NewBaseError(
		KindBusinessRule,
		http.StatusUnprocessableEntity,
		"PLAN_ALREADY_ACTIVE",
		"You already have an active plan",
		"",
	)

	ErrPlanExpired = NewBaseError(
		KindBusinessRule,
		http.StatusUnprocessableEntity,
		"PLAN_EXPIRED",
		"This plan has already expired or been deactivated",
		"",
	)

	ErrPlanNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"PLAN_NOT_FOUND",
		"Plan not found",
		"",
	)

	ErrPlanUnavailable = NewBaseError(
		KindBusinessRule,
		http.StatusUnprocessableEntity,
		"PLAN_UNAVAILABLE",
		"This plan is not available for purchase",
		"",
	)

	ErrSubscriptionNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"SUBSCRIPTION_NOT_FOUND",
		"Subscription not found",
		"",
	)

	// Task errors
	ErrTaskNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"TASK_NOT_FOUND",
		"Task not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidEnum = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_ENUM_VALUE",
		"Unsupported value",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
