// Package repository declares the persistence contracts used by the usecases.
// Implementations live in internal/infra/persistence.
package repository

import (
	"context"

	"taskgate/internal/domain/entity"
	"taskgate/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository stores account records.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail expects an already normalized address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll lists every account, oldest first.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Create and Update return ErrUserAlreadyExists on a duplicate email.
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error

	// LockForUpdate holds the user row until the surrounding transaction
	// ends, serialising quota and purchase checks for that user.
	LockForUpdate(ctx context.Context, id uuid.UUID) error
}
