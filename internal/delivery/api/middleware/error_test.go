package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskgate/internal/delivery/api/response"
	domainerrors "taskgate/internal/domain/errors"
	"taskgate/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, response.ErrorResponse) {
	t.Helper()

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	m.HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return rec, body
}

func TestErrorMiddleware_StatusByKind(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unauthorized", domainerrors.ErrSessionInvalid, http.StatusUnauthorized, "SESSION_INVALID"},
		{"forbidden", domainerrors.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"not found", domainerrors.ErrTaskNotFound, http.StatusNotFound, "TASK_NOT_FOUND"},
		{"business rule", domainerrors.ErrQuotaExceeded, http.StatusUnprocessableEntity, "QUOTA_EXCEEDED"},
		{"validation", domainerrors.ErrInvalidEnum, http.StatusBadRequest, "INVALID_ENUM_VALUE"},
		{"duplicate email", domainerrors.ErrUserAlreadyExists, http.StatusConflict, "USER_ALREADY_EXISTS"},
		{"wrapped", errors.Wrap(domainerrors.ErrPlanAlreadyActive, "purchase"), http.StatusUnprocessableEntity, "PLAN_ALREADY_ACTIVE"},
		{"internal app error", domainerrors.ErrPasswordHashFailed, http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"plain error", errors.New("pq: connection refused"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"echo error", echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"), http.StatusMethodNotAllowed, "HTTP_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := renderError(t, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestErrorMiddleware_Details(t *testing.T) {
	t.Run("validation details are shown", func(t *testing.T) {
		_, body := renderError(t, domainerrors.ErrValidationFailed.WithDetails("title: is required"))

		assert.Equal(t, "title: is required", body.Error.Details)
	})

	t.Run("auth details are hidden", func(t *testing.T) {
		_, body := renderError(t, domainerrors.ErrInvalidToken.WithDetails("signature is invalid"))

		assert.Nil(t, body.Error.Details)
	})

	t.Run("internal errors are not leaked", func(t *testing.T) {
		_, body := renderError(t, errors.New("pq: password authentication failed for user taskgate"))

		assert.NotContains(t, body.Error.Message, "pq:")
		assert.Nil(t, body.Error.Details)
	})
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.NoContent(http.StatusNoContent))

	m.HandleHTTPError(domainerrors.ErrTaskNotFound, c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
