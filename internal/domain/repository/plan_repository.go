package repository

import (
	"context"

	"taskgate/internal/domain/entity"
	"taskgate/internal/errors"

	"github.com/google/uuid"
)

// ErrPlanNotFound is returned when a plan does not exist.
var ErrPlanNotFound = errors.New("plan not found")

// PlanRepository gives access to the plan catalogue.
type PlanRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Plan, error)

	// FindAll lists the catalogue, optionally restricted to purchasable plans.
	// Reads may be served by a replica.
	FindAll(ctx context.Context, onlyActive bool) ([]*entity.Plan, error)

	Create(ctx context.Context, plan *entity.Plan) error

	// Update saves every editable field of plan, IsActive included.
	Update(ctx context.Context, plan *entity.Plan) error
}
