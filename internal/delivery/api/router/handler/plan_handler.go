package handler

import (
	"log/slog"
	"net/http"

	"taskgate/internal/delivery/api/response"
	"taskgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlanHandlerParams holds dependencies for PlanHandler, injected by Fx.
type PlanHandlerParams struct {
	fx.In

	PlanUC usecase.PlanUsecase
	Logger *slog.Logger
}

// PlanHandler serves the plan catalogue and the caller's subscriptions.
type PlanHandler struct {
	planUC usecase.PlanUsecase
	logger *slog.Logger
}

// NewPlanHandler is the constructor for PlanHandler.
func NewPlanHandler(params PlanHandlerParams) *PlanHandler {
	return &PlanHandler{
		planUC: params.PlanUC,
		logger: params.Logger,
	}
}

// PlanRequest represents the request body for creating or editing a
// catalogue entry. Tier is checked by the usecase so unknown tiers report
// INVALID_ENUM_VALUE.
type PlanRequest struct {
	Tier         string `json:"tier" validate:"required"`
	Description  string `json:"description" validate:"max=500"`
	PriceCents   int64  `json:"price_cents" validate:"gte=0"`
	MaxTasks     int    `json:"max_tasks" validate:"gte=-1"`
	DurationDays int    `json:"duration_days" validate:"required,gt=0"`
}

// ListPlans returns the purchasable plans.
func (h *PlanHandler) ListPlans(c echo.Context) error {
	plans, err := h.planUC.ListPlans(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPlanResponses(plans))
}

// CreatePlan adds a catalogue entry. Admin only.
func (h *PlanHandler) CreatePlan(c echo.Context) error {
	var req PlanRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	plan, err := h.planUC.CreatePlan(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPlanResponse(plan))
}

// GetPlan returns one catalogue entry, inactive ones included.
func (h *PlanHandler) GetPlan(c echo.Context) error {
	planID, err := idParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	plan, err := h.planUC.GetPlan(c.Request().Context(), planID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPlanResponse(plan))
}

// UpdatePlan replaces a catalogue entry's terms. Admin only.
func (h *PlanHandler) UpdatePlan(c echo.Context) error {
	planID, err := idParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PlanRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	plan, err := h.planUC.UpdatePlan(c.Request().Context(), planID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPlanResponse(plan))
}

// ActivatePlan reopens a plan for purchase. Admin only.
func (h *PlanHandler) ActivatePlan(c echo.Context) error {
	return h.setPlanActive(c, true)
}

// DeactivatePlan withdraws a plan from sale. Admin only.
func (h *PlanHandler) DeactivatePlan(c echo.Context) error {
	return h.setPlanActive(c, false)
}

func (h *PlanHandler) setPlanActive(c echo.Context, active bool) error {
	planID, err := idParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	plan, err := h.planUC.SetPlanActive(c.Request().Context(), planID, active)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPlanResponse(plan))
}

func (req *PlanRequest) toInput() *usecase.PlanInput {
	return &usecase.PlanInput{
		Tier:         req.Tier,
		Description:  req.Description,
		PriceCents:   req.PriceCents,
		MaxTasks:     req.MaxTasks,
		DurationDays: req.DurationDays,
	}
}

// Purchase subscribes the caller to a plan.
func (h *PlanHandler) Purchase(c echo.Context) error {
	planID, err := idParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	sub, err := h.planUC.Purchase(c.Request().Context(), planID, requestContext(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toSubscriptionResponse(sub))
}

// ListUserPlans returns every subscription of the caller, newest first.
func (h *PlanHandler) ListUserPlans(c echo.Context) error {
	subs, err := h.planUC.ListUserPlans(c.Request().Context(), requestContext(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSubscriptionResponses(subs))
}

// GetActive returns the caller's current subscription.
func (h *PlanHandler) GetActive(c echo.Context) error {
	sub, err := h.planUC.GetActive(c.Request().Context(), requestContext(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSubscriptionResponse(sub))
}

// Deactivate ends one of the caller's subscriptions.
func (h *PlanHandler) Deactivate(c echo.Context) error {
	subID, err := idParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.planUC.Deactivate(c.Request().Context(), subID, requestContext(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
