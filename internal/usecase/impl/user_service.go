package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

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

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	lockout   service.LoginLockout
	sessions  usecase.SessionManager
	now       func() time.Time
	logger    *slog.Logger

	// decoyHash is compared against when the email is unknown so a miss
	// costs the same bcrypt work as a wrong password.
	decoyHash func() (string, error)
}

// decoyPassword seeds the decoy digest; it is never a valid credential.
const decoyPassword = "taskgate-decoy-credential"

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Lockout   service.LoginLockout
	Sessions  usecase.SessionManager
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	srv := &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		lockout:   params.Lockout,
		sessions:  params.Sessions,
		now:       time.Now,
		logger:    params.Logger,
	}
	srv.decoyHash = sync.OnceValues(func() (string, error) {
		return srv.hasher.Hash(decoyPassword)
	})

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a user with the default role.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	email := util.NormalizeEmail(input.Email)

	srv.log(ctx).Info("Starting registration", slog.String("email", util.MaskEmail(email)))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     input.Username,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		_, err := userRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing user")
		}

		return errors.Wrap(userRepo.Create(ctx, user), "failed to create user during registration")
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", util.MaskEmail(email)), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Registration completed", slog.Any("user_id", user.ID))

	return &usecase.RegisterOutput{User: user}, nil
}

// Login checks the lockout, verifies the password and opens a session on
// the caller's device.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput, rc usecase.RequestContext) (*usecase.LoginOutput, error) {
	email := util.NormalizeEmail(input.Email)

	if err := srv.checkLockout(ctx, email); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if user == nil {
		srv.compareDecoy(ctx, input.Password)
		srv.recordFailure(ctx, email, rc)

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.recordFailure(ctx, email, rc)

		return nil, domainerrors.ErrInvalidCredentials
	}

	if err := srv.lockout.Clear(ctx, email); err != nil {
		srv.log(ctx).Warn("Failed to clear login failures", slog.Any("error", err))
	}

	tokens, err := srv.sessions.Login(ctx, user, rc)
	if err != nil {
		return nil, err
	}

	return &usecase.LoginOutput{Tokens: tokens, User: user}, nil
}

func (srv *userService) compareDecoy(ctx context.Context, password string) {
	digest, err := srv.decoyHash()
	if err != nil {
		srv.log(ctx).Warn("Failed to prepare decoy digest", slog.Any("error", err))

		return
	}

	srv.hasher.Check(password, digest)
}

// checkLockout fails open: an unreachable lockout store must not block logins.
func (srv *userService) checkLockout(ctx context.Context, email string) error {
	lockedUntil, err := srv.lockout.Check(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Lockout check failed", slog.Any("error", err))

		return nil
	}
	if lockedUntil.IsZero() {
		return nil
	}

	srv.log(ctx).Warn("Login refused, account locked",
		slog.String("email", util.MaskEmail(email)),
		slog.Time("locked_until", lockedUntil),
	)

	return domainerrors.ErrAccountLocked.WithDetails("try again in " + util.FormatDuration(lockedUntil.Sub(srv.now())))
}

func (srv *userService) recordFailure(ctx context.Context, email string, rc usecase.RequestContext) {
	locked, err := srv.lockout.RecordFailure(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Failed to record login failure", slog.Any("error", err))

		return
	}

	attrs := []any{
		slog.String("email", util.MaskEmail(email)),
		slog.String("ip", rc.Fingerprint.IPAddress),
	}
	if locked {
		srv.log(ctx).Warn("Too many failed logins, account locked", attrs...)

		return
	}
	srv.log(ctx).Info("Invalid login credentials", attrs...)
}

func (srv *userService) Refresh(ctx context.Context, rawRefreshToken string, rc usecase.RequestContext) (*usecase.TokenPair, error) {
	return srv.sessions.Rotate(ctx, rawRefreshToken, rc)
}

func (srv *userService) Logout(ctx context.Context, rc usecase.RequestContext) error {
	return srv.sessions.Logout(ctx, rc)
}

func (srv *userService) LogoutAll(ctx context.Context, rc usecase.RequestContext) (int, error) {
	return srv.sessions.Revoke(ctx, rc.UserID, usecase.RevokeAllDevices, rc.Fingerprint)
}

// ChangePassword requires the current password and ends every session of
// the user, the caller's included.
func (srv *userService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput, rc usecase.RequestContext) error {
	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, rc.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
			return domainerrors.ErrInvalidCredentials
		}

		hashedPassword, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}

		changedAt := srv.now()
		user.PasswordHash = hashedPassword
		user.PasswordChangedAt = &changedAt

		return errors.Wrap(userRepo.Update(ctx, user), "failed to update password")
	})
	if err != nil {
		return err
	}

	if _, err := srv.sessions.Revoke(ctx, rc.UserID, usecase.RevokeAllDevices, rc.Fingerprint); err != nil {
		return errors.Wrap(err, "failed to revoke sessions after password change")
	}

	srv.log(ctx).Info("Password changed", slog.Any("user_id", rc.UserID))

	return nil
}

func (srv *userService) GetProfile(ctx context.Context, rc usecase.RequestContext) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, rc.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return srv.GetProfile(ctx, usecase.RequestContext{UserID: id})
}

// UpdateUser changes email and username. A blank field keeps its value.
func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		found, err := findUser(ctx, userRepo, id)
		if err != nil {
			return err
		}

		if email := util.NormalizeEmail(input.Email); email != "" {
			found.Email = email
		}
		if input.Username != "" {
			found.Username = input.Username
		}

		if err := userRepo.Update(ctx, found); err != nil {
			if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
				return err
			}

			return errors.Wrap(err, "failed to update user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User updated by admin", slog.Any("user_id", id))

	return user, nil
}

func (srv *userService) PromoteToAdmin(ctx context.Context, id uuid.UUID, rc usecase.RequestContext) (*entity.User, error) {
	var (
		user     *entity.User
		promoted bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		found, err := findUser(ctx, userRepo, id)
		if err != nil {
			return err
		}
		user = found
		if found.Role == entity.RoleAdmin {
			return nil
		}

		found.Role = entity.RoleAdmin
		promoted = true

		return errors.Wrap(userRepo.Update(ctx, found), "failed to promote user")
	})
	if err != nil {
		return nil, err
	}

	if promoted {
		srv.log(ctx).Info("User promoted to admin", slog.Any("user_id", id), slog.Any("promoted_by", rc.UserID))
	}

	return user, nil
}

func findUser(ctx context.Context, userRepo repository.UserRepository, id uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
