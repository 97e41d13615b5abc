// Package handler holds the echo handlers of the public API.
package handler

import (
	"taskgate/internal/delivery/api/response"
	deliverycontext "taskgate/internal/delivery/context"
	domainerrors "taskgate/internal/domain/errors"
	"taskgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// requestContext collects the caller metadata the usecases need. UserID is
// zero on routes that run without the auth middleware.
func requestContext(c echo.Context) usecase.RequestContext {
	rc := usecase.RequestContext{
		RequestID:   deliverycontext.GetRequestID(c),
		Fingerprint: deliverycontext.Fingerprint(c),
	}
	if identity := deliverycontext.GetIdentity(c); identity != nil {
		rc.UserID = identity.UserID
	}

	return rc
}

// bindAndValidate decodes the body into req and runs the struct rules.
// When it returns false the error response has already been written.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Request body could not be parsed")
	}
	if err := c.Validate(req); err != nil {
		return false, response.HandleAppError(c, err)
	}

	return true, nil
}

func idParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + ": must be a UUID")
	}

	return id, nil
}
