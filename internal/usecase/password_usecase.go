package usecase

import "context"

// ResetPasswordInput redeems a reset token.
type ResetPasswordInput struct {
	Email       string
	Token       string
	NewPassword string
}

// PasswordUsecase is the forgot/reset password flow.
type PasswordUsecase interface {
	// ForgotPassword mails a single-use reset link to the account owner.
	ForgotPassword(ctx context.Context, email string, rc RequestContext) error

	// ResetPassword consumes the token, sets the new password and revokes
	// every session of the user.
	ResetPassword(ctx context.Context, input *ResetPasswordInput, rc RequestContext) error
}
