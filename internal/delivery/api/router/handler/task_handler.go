package handler

import (
	"log/slog"
	"net/http"

	"taskgate/internal/delivery/api/response"
	"taskgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TaskHandlerParams holds dependencies for TaskHandler, injected by Fx.
type TaskHandlerParams struct {
	fx.In

	TaskUC usecase.TaskUsecase
	Logger *slog.Logger
}

// TaskHandler serves the caller's tasks.
type TaskHandler struct {
	taskUC usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler.
func NewTaskHandler(params TaskHandlerParams) *TaskHandler {
	return &TaskHandler{
		taskUC: params.TaskUC,
		logger: params.Logger,
	}
}

// CreateTaskRequest represents the request body for a new task. Status and
// priority are optional.
type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
}

// UpdateTaskRequest edits a task. Absent fields are left as they are.
type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
}

// ChangeStatusRequest sets a task's status.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ChangePriorityRequest sets a task's priority.
type ChangePriorityRequest struct {
	Priority string `json:"priority" validate:"required"`
}

// Create adds a task, subject to the caller's plan.
func (h *TaskHandler) Create(c echo.Context) error {
	var req CreateTaskRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	task, err := h.taskUC.Create(c.Request().Context(), &usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
	}, requestContext(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toTaskResponse(task))
}

// List returns the caller's tasks.
func (h *TaskHandler) List(c echo.Context) error {
	tasks, err := h.taskUC.List(c.Request().Context(), requestContext(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTaskResponses(tasks))
}

// Get returns one task.
func (h *TaskHandler) Get(c echo.Context) error {
	taskID, err := idParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	task, err := h.taskUC.Get(c.Request().Context(), taskID, requestContext(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTaskResponse(task))
}

// Update edits a task.
func (h *TaskHandler) Update(c echo.Context) error {
	taskID, err := idParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateTaskRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	task, err := h.taskUC.Update(c.Request().Context(), taskID, &usecase.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
	}, requestContext(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTaskResponse(task))
}

// ChangeStatus moves a task to another status.
func (h *TaskHandler) ChangeStatus(c echo.Context) error {
	taskID, err := idParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ChangeStatusRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	task, err := h.taskUC.ChangeStatus(c.Request().Context(), taskID, req.Status, requestContext(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTaskResponse(task))
}

// ChangePriority re-prioritises a task.
func (h *TaskHandler) ChangePriority(c echo.Context) error {
	taskID, err := idParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ChangePriorityRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	task, err := h.taskUC.ChangePriority(c.Request().Context(), taskID, req.Priority, requestContext(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTaskResponse(task))
}

// Delete removes a task.
func (h *TaskHandler) Delete(c echo.Context) error {
	taskID, err := idParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.taskUC.Delete(c.Request().Context(), taskID, requestContext(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
