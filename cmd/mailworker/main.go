// Command mailworker delivers queued mail pushed by Pub/Sub over SMTP.
package main

import (
	"context"
	"log/slog"
	"os"

	"taskgate/config"
	"taskgate/internal/delivery"
	"taskgate/internal/delivery/worker"
	"taskgate/internal/delivery/worker/handler"
	"taskgate/internal/domain/service"
	logs "taskgate/internal/infra/log"
	"taskgate/internal/infra/mail"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

// The worker always sends directly; handing mail back to the queue would loop.
func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				mail.NewSMTPMailer,
				fx.As(new(service.Mailer)),
			),
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
