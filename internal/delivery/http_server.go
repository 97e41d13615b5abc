package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"taskgate/config"
	"taskgate/internal/delivery/middleware"
	"taskgate/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// NewEcho returns an echo instance carrying the configured timeouts and the
// middleware every server shares, in order: panic recovery, request ID,
// access log, body limit.
func NewEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	if cfg.HTTP.MaxRequestBodySize != "" {
		e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))
	}

	return e
}

// HTTPServer serves an echo instance on http.port until the fx app stops.
type HTTPServer struct {
	name   string
	h2c    bool
	cfg    *config.Config
	echo   *echo.Echo
	logger *slog.Logger
}

// NewHTTPServer registers the graceful shutdown hook. With h2c the server
// also accepts cleartext HTTP/2, as Cloud Run forwards it.
func NewHTTPServer(lc fx.Lifecycle, name string, h2c bool, cfg *config.Config, e *echo.Echo, logger *slog.Logger) *HTTPServer {
	srv := &HTTPServer{
		name:   name,
		h2c:    h2c,
		cfg:    cfg,
		echo:   e,
		logger: logger,
	}

	lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv
}

// Serve blocks until the server is shut down.
func (s *HTTPServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting "+s.name+" HTTP server", slog.String("host_port", hostPort))

	var err error
	if s.h2c {
		err = s.echo.StartH2CServer(hostPort, &http2.Server{IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout})
	} else {
		err = s.echo.Start(hostPort)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *HTTPServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down " + s.name + " HTTP server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
