// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"taskgate/internal/delivery/api/middleware"
	"taskgate/internal/delivery/api/router/handler"
	"taskgate/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	MeHandler      *handler.MeHandler
	PlanHandler    *handler.PlanHandler
	TaskHandler    *handler.TaskHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	meHandler      *handler.MeHandler
	planHandler    *handler.PlanHandler
	taskHandler    *handler.TaskHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		meHandler:      params.MeHandler,
		planHandler:    params.PlanHandler,
		taskHandler:    params.TaskHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/password/forgot", r.authHandler.ForgotPassword)
		authGroup.POST("/password/reset", r.authHandler.ResetPassword)

		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
		authGroup.POST("/logout-all", r.authHandler.LogoutAll, r.authMiddleware.Authenticate)
	}

	api := e.Group("/api/v1")
	api.Use(r.authMiddleware.Authenticate)

	meGroup := api.Group("/me")
	{
		meGroup.GET("", r.meHandler.GetProfile)
		meGroup.PUT("/password", r.meHandler.ChangePassword)
		meGroup.GET("/sessions", r.meHandler.ListSessions)
		meGroup.GET("/plans", r.planHandler.ListUserPlans)
		meGroup.GET("/plans/active", r.planHandler.GetActive)
		meGroup.POST("/plans/:id/deactivate", r.planHandler.Deactivate)
	}

	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	planGroup := api.Group("/plans")
	{
		planGroup.GET("", r.planHandler.ListPlans)
		planGroup.GET("/:id", r.planHandler.GetPlan)
		planGroup.POST("/:id/purchase", r.planHandler.Purchase)

		planGroup.POST("", r.planHandler.CreatePlan, adminOnly)
		planGroup.PUT("/:id", r.planHandler.UpdatePlan, adminOnly)
		planGroup.PATCH("/:id/activate", r.planHandler.ActivatePlan, adminOnly)
		planGroup.PATCH("/:id/deactivate", r.planHandler.DeactivatePlan, adminOnly)
	}

	userGroup := api.Group("/users", adminOnly)
	{
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.PUT("/:id", r.userHandler.UpdateUser)
		userGroup.PATCH("/:id/promote", r.userHandler.PromoteToAdmin)
	}

	taskGroup := api.Group("/tasks")
	{
		taskGroup.POST("", r.taskHandler.Create)
		taskGroup.GET("", r.taskHandler.List)
		taskGroup.GET("/:id", r.taskHandler.Get)
		taskGroup.PUT("/:id", r.taskHandler.Update)
		taskGroup.PATCH("/:id/status", r.taskHandler.ChangeStatus)
		taskGroup.PATCH("/:id/priority", r.taskHandler.ChangePriority)
		taskGroup.DELETE("/:id", r.taskHandler.Delete)
	}
}
