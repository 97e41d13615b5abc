package handler

import (
	"log/slog"
	"net/http"

	"taskgate/internal/delivery/api/response"
	"taskgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	UserUC     usecase.UserUsecase
	PasswordUC usecase.PasswordUsecase
	Logger     *slog.Logger
}

// AuthHandler serves the account entry points: registration, login, token
// refresh, logout and the password reset flow.
type AuthHandler struct {
	userUC     usecase.UserUsecase
	passwordUC usecase.PasswordUsecase
	logger     *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		userUC:     params.UserUC,
		passwordUC: params.PasswordUC,
		logger:     params.Logger,
	}
}

// RegisterRequest represents the request body for registering a user
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Username string `json:"username" validate:"required,min=2,max=50"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries the refresh secret issued at login or the last refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ForgotPasswordRequest asks for a reset link.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest redeems a reset link.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,max=72"`
}

// Register creates a user account.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterUserInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(output.User))
}

// Login opens a session for the calling device.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}, requestContext(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"tokens": toTokenResponse(output.Tokens),
		"user":   toUserResponse(output.User),
	})
}

// Refresh exchanges a refresh secret for a new token pair.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	pair, err := h.userUC.Refresh(c.Request().Context(), req.RefreshToken, requestContext(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTokenResponse(pair))
}

// Logout ends the session of the calling device.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.userUC.Logout(c.Request().Context(), requestContext(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// LogoutAll ends every session of the caller.
func (h *AuthHandler) LogoutAll(c echo.Context) error {
	revoked, err := h.userUC.LogoutAll(c.Request().Context(), requestContext(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"revoked": revoked})
}

// ForgotPassword always answers 202 unless the service is configured to
// reveal unknown addresses.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.passwordUC.ForgotPassword(c.Request().Context(), req.Email, requestContext(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{
		"message": "If the address is registered, a reset link has been sent",
	})
}

// ResetPassword sets a new password from a reset link.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	err := h.passwordUC.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Email:       req.Email,
		Token:       req.Token,
		NewPassword: req.NewPassword,
	}, requestContext(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
