// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	domainerrors "taskgate/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// RequestValidator validates bound request structs.
type RequestValidator struct {
	validate *playground.Validate
}

// New builds a validator that reports fields by their JSON names.
func New() *RequestValidator {
	validate := playground.New(playground.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &RequestValidator{validate: validate}
}

// Validate implements echo.Validator. Failures come back as
// ErrValidationFailed carrying one "field: rule" entry per violation.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !asValidationErrors(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		parts = append(parts, fieldErr.Field()+": "+describe(fieldErr))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(parts, "; "))
}

func asValidationErrors(err error, target *playground.ValidationErrors) bool {
	fieldErrs, ok := err.(playground.ValidationErrors) //nolint:errorlint // validator returns the slice unwrapped
	if ok {
		*target = fieldErrs
	}

	return ok
}

func describe(fieldErr playground.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return "must be at least " + fieldErr.Param()
	case "max":
		return "must be at most " + fieldErr.Param()
	default:
		return "failed " + fieldErr.Tag()
	}
}
