package handler

import (
	"log/slog"
	"net/http"

	"taskgate/internal/delivery/api/response"
	deliverycontext "taskgate/internal/delivery/context"
	"taskgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MeHandlerParams holds dependencies for MeHandler, injected by Fx.
type MeHandlerParams struct {
	fx.In

	UserUC   usecase.UserUsecase
	Sessions usecase.SessionManager
	Logger   *slog.Logger
}

// MeHandler serves the signed-in user's own account.
type MeHandler struct {
	userUC   usecase.UserUsecase
	sessions usecase.SessionManager
	logger   *slog.Logger
}

// NewMeHandler is the constructor for MeHandler.
func NewMeHandler(params MeHandlerParams) *MeHandler {
	return &MeHandler{
		userUC:   params.UserUC,
		sessions: params.Sessions,
		logger:   params.Logger,
	}
}

// ChangePasswordRequest represents the request body for a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,max=72"`
}

// GetProfile returns the caller's account.
func (h *MeHandler) GetProfile(c echo.Context) error {
	user, err := h.userUC.GetProfile(c.Request().Context(), requestContext(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// ChangePassword replaces the password and signs out every device.
func (h *MeHandler) ChangePassword(c echo.Context) error {
	var req ChangePasswordRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	err := h.userUC.ChangePassword(c.Request().Context(), &usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}, requestContext(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ListSessions returns the caller's live sessions, flagging the current one.
func (h *MeHandler) ListSessions(c echo.Context) error {
	rc := requestContext(c)

	sessions, err := h.sessions.ListSessions(c.Request().Context(), rc.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	currentID := uuid.Nil
	if identity := deliverycontext.GetIdentity(c); identity != nil {
		currentID = identity.SessionID
	}

	return response.Success(c, http.StatusOK, toSessionResponses(sessions, currentID))
}
