package mail

import (
	"log/slog"

	"taskgate/config"
	"taskgate/internal/domain/constants"
	"taskgate/internal/domain/service"
	"taskgate/internal/errors"

	"go.uber.org/fx"
)

// MailerParams holds dependencies for NewMailer, injected by Fx.
type MailerParams struct {
	fx.In

	Config    *config.Config
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewMailer picks the transport named by mail.transport.
func NewMailer(params MailerParams) (service.Mailer, error) {
	transport := constants.MailTransportNoop
	if params.Config.Mail != nil && params.Config.Mail.Transport != "" {
		transport = params.Config.Mail.Transport
	}

	switch transport {
	case constants.MailTransportNoop:
		params.Logger.Warn("Mail transport is noop, reset emails will not be delivered")

		return &noopMailer{logger: params.Logger}, nil
	case constants.MailTransportSMTP:
		return NewSMTPMailer(params.Config, params.Logger)
	case constants.MailTransportQueue:
		return &queuedMailer{publisher: params.Publisher, logger: params.Logger}, nil
	default:
		return nil, errors.Errorf("unknown mail transport: %s", transport)
	}
}

// Module provides the Mailer FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMailer),
)
