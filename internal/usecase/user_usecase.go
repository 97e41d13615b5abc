package usecase

import (
	"context"

	"taskgate/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Email    string
	Username string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ChangePasswordInput carries a signed-in user's password change.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// UpdateUserInput carries an admin's edit of another account.
type UpdateUserInput struct {
	Email    string
	Username string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	Tokens *TokenPair
	User   *entity.User
}

// UserUsecase defines the account operations exposed to the delivery layer.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput, rc RequestContext) (*LoginOutput, error)
	Refresh(ctx context.Context, rawRefreshToken string, rc RequestContext) (*TokenPair, error)
	Logout(ctx context.Context, rc RequestContext) error
	LogoutAll(ctx context.Context, rc RequestContext) (int, error)
	ChangePassword(ctx context.Context, input *ChangePasswordInput, rc RequestContext) error
	GetProfile(ctx context.Context, rc RequestContext) (*entity.User, error)

	// Admin operations. Routes are gated on RoleAdmin before reaching these.
	ListUsers(ctx context.Context) ([]*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)

	// PromoteToAdmin grants RoleAdmin. Promoting an admin is a no-op. The
	// new role reaches access tokens minted after the next login or refresh.
	PromoteToAdmin(ctx context.Context, id uuid.UUID, rc RequestContext) (*entity.User, error)
}
