// Package api is the public JSON API of taskgate.
package api

import (
	"log/slog"

	"taskgate/config"
	"taskgate/internal/delivery"
	apimiddleware "taskgate/internal/delivery/api/middleware"
	"taskgate/internal/delivery/api/router"
	"taskgate/internal/delivery/api/validator"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the API server.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := NewHandler(params.Cfg, params.Logger, params.RouterParams)

	return delivery.NewHTTPServer(params.Lc, "API", true, params.Cfg, e, params.Logger), nil
}

// NewHandler assembles the echo instance with every API route mounted.
func NewHandler(cfg *config.Config, logger *slog.Logger, routerParams router.RouterParams) *echo.Echo {
	e := delivery.NewEcho(cfg, logger)

	// Sessions are bound to the client IP, so it has to survive the load balancer.
	e.IPExtractor = echo.ExtractIPFromXFFHeader()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.Secure())

	router.NewRouter(routerParams).RegisterRoutes(e)

	return e
}
