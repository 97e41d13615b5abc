package response

import (
	"net/http"

	deliverycontext "taskgate/internal/delivery/context"
	domainerrors "taskgate/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuccessResponse is the envelope for 2xx bodies.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is the envelope for 4xx and 5xx bodies.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Details is dropped for 401, 403 and 5xx.
	Details any `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// Success writes data in the success envelope with the request ID.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Error writes an error envelope.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BindingError answers a request body that could not be decoded.
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// InternalServerError writes a 500 without details.
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError renders a client-facing application error. Internal
// failures are returned unchanged so the error middleware logs them and
// answers with a generic 500.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Kind() != domainerrors.KindInternal {
		return Error(c, StatusFor(appErr), appErr.ErrorCode(), appErr.Message(), detailsOf(appErr))
	}

	return errors.WithStack(err)
}

// StatusFor maps an application error to its HTTP status.
func StatusFor(appErr domainerrors.AppError) int {
	switch appErr.Kind() {
	case domainerrors.KindUnauthorized:
		if appErr.HTTPCode() == http.StatusForbidden {
			return http.StatusForbidden
		}

		return http.StatusUnauthorized
	case domainerrors.KindNotFound:
		return http.StatusNotFound
	case domainerrors.KindBusinessRule:
		return http.StatusUnprocessableEntity
	case domainerrors.KindValidation:
		if appErr.HTTPCode() == http.StatusConflict {
			return http.StatusConflict
		}

		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NoContent returns a 204 with no envelope
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func detailsOf(appErr domainerrors.AppError) any {
	if appErr.Details() == "" {
		return nil
	}

	return appErr.Details()
}
