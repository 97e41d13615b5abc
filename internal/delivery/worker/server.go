// Package worker is the HTTP surface of the mail worker.
package worker

import (
	"log/slog"
	"net/http"

	"taskgate/config"
	"taskgate/internal/delivery"
	"taskgate/internal/delivery/worker/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the worker HTTP server. Pub/Sub push subscriptions
// point at /push/mail.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := delivery.NewEcho(params.Cfg, params.Logger)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push/mail", params.PushHandler.HandlePush)

	return delivery.NewHTTPServer(params.Lc, "Worker", false, params.Cfg, e, params.Logger), nil
}
