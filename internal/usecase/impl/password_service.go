package impl

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"taskgate/config"
	deliverycontext "taskgate/internal/delivery/context"
	"taskgate/internal/domain/entity"
	domainerrors "taskgate/internal/domain/errors"
	"taskgate/internal/domain/repository"
	"taskgate/internal/domain/service"
	"taskgate/internal/usecase"
	"taskgate/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultResetTokenTTL = 15 * time.Minute
	resetMailSubject     = "Reset Password"
)

// passwordService implements the PasswordUsecase interface.
type passwordService struct {
	txManager          repository.TransactionManager
	userRepo           repository.UserRepository
	hasher             service.PasswordHasher
	codec              service.TokenCodec
	mailer             service.Mailer
	resetTTL           time.Duration
	resetLinkBaseURL   string
	revealUnknownEmail bool
	now                func() time.Time
	logger             *slog.Logger
}

// PasswordServiceParams holds dependencies for PasswordService, injected by Fx.
type PasswordServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Codec     service.TokenCodec
	Mailer    service.Mailer
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPasswordService is the constructor for passwordService.
func NewPasswordService(params PasswordServiceParams) usecase.PasswordUsecase {
	srv := &passwordService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		codec:     params.Codec,
		mailer:    params.Mailer,
		resetTTL:  defaultResetTokenTTL,
		now:       time.Now,
		logger:    params.Logger,
	}

	if auth := params.Config.Auth; auth != nil {
		if auth.ResetTokenTTL > 0 {
			srv.resetTTL = auth.ResetTokenTTL
		}
		srv.resetLinkBaseURL = auth.ResetLinkBaseURL
		srv.revealUnknownEmail = auth.RevealUnknownEmail
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *passwordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ForgotPassword mails a reset link. Unless revealUnknownEmail is set, an
// unknown address and a failed send both look like success to the caller.
func (srv *passwordService) ForgotPassword(ctx context.Context, email string, rc usecase.RequestContext) error {
	email = util.NormalizeEmail(email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user")
		}

		srv.log(ctx).Info("Password reset requested for unknown email",
			slog.String("email", util.MaskEmail(email)),
			slog.String("ip", rc.Fingerprint.IPAddress),
		)
		if srv.revealUnknownEmail {
			return domainerrors.ErrUserNotFound
		}

		return nil
	}

	rawToken, tokenHash, err := srv.codec.NewResetToken()
	if err != nil {
		return errors.Wrap(err, "failed to create reset token")
	}

	now := srv.now()
	resetToken := &entity.ResetToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: now.Add(srv.resetTTL),
		CreatedAt: now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.NewResetTokenRepository().Create(ctx, resetToken), "failed to store reset token")
	})
	if err != nil {
		return err
	}

	body := "Use the link below to reset your password. It expires in " +
		util.FormatDuration(srv.resetTTL) + ".\n\n" + srv.resetLink(user.Email, rawToken)

	if err := srv.mailer.Send(ctx, user.Email, resetMailSubject, body); err != nil {
		srv.log(ctx).Error("Failed to send password reset email", slog.Any("user_id", user.ID), slog.Any("error", err))
		if srv.revealUnknownEmail {
			return errors.Wrap(err, "failed to send reset email")
		}

		return nil
	}

	srv.log(ctx).Info("Password reset email sent", slog.Any("user_id", user.ID))

	return nil
}

func (srv *passwordService) resetLink(email, rawToken string) string {
	query := url.Values{}
	query.Set("email", email)
	query.Set("token", rawToken)

	return srv.resetLinkBaseURL + "?" + query.Encode()
}

// ResetPassword consumes the token, sets the new password and revokes every
// session of the user in one transaction.
func (srv *passwordService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput, rc usecase.RequestContext) error {
	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return err
	}

	email := util.NormalizeEmail(input.Email)
	tokenHash := srv.codec.HashGenericToken(input.Token)

	var (
		userID  uuid.UUID
		revoked int
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		tokenRepo := repoFactory.NewResetTokenRepository()

		user, err := userRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrResetTokenInvalid
			}

			return errors.Wrap(err, "failed to find user")
		}

		now := srv.now()
		resetToken, err := tokenRepo.FindUnexpiredByHashAndUser(ctx, tokenHash, user.ID, now)
		if err != nil {
			if errors.Is(err, repository.ErrResetTokenNotFound) {
				return domainerrors.ErrResetTokenInvalid
			}

			return errors.Wrap(err, "failed to find reset token")
		}

		consumed, err := tokenRepo.Consume(ctx, resetToken.ID, now)
		if err != nil {
			return errors.Wrap(err, "failed to consume reset token")
		}
		if !consumed {
			return domainerrors.ErrResetTokenInvalid
		}

		hashedPassword, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}

		user.PasswordHash = hashedPassword
		user.PasswordChangedAt = &now
		userID = user.ID

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		revoked, err = revokeAllSessions(ctx, repoFactory.NewSessionRepository(), user.ID, now)

		return errors.Wrap(err, "failed to revoke sessions after password reset")
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrResetTokenInvalid) {
			srv.log(ctx).Warn("Invalid password reset attempt",
				slog.String("email", util.MaskEmail(email)),
				slog.String("ip", rc.Fingerprint.IPAddress),
			)
		}

		return err
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("user_id", userID), slog.Int("revoked_sessions", revoked))

	return nil
}
