package handler

import (
	"log/slog"
	"net/http"

	"taskgate/internal/delivery/api/response"
	"taskgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves account administration. Every route is admin only.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// UpdateUserRequest edits another account. Omitted fields stay unchanged.
type UpdateUserRequest struct {
	Email    string `json:"email" validate:"omitempty,email,max=254"`
	Username string `json:"username" validate:"omitempty,min=2,max=50"`
}

// ListUsers returns every account, oldest first.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, out)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := idParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	userID, err := idParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateUserRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), userID, &usecase.UpdateUserInput{
		Email:    req.Email,
		Username: req.Username,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// PromoteToAdmin grants the admin role to the account in the path.
func (h *UserHandler) PromoteToAdmin(c echo.Context) error {
	userID, err := idParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.PromoteToAdmin(c.Request().Context(), userID, requestContext(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}
