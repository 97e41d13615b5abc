package mail

import (
	"context"
	"log/slog"

	deliverycontext "taskgate/internal/delivery/context"
	"taskgate/internal/domain/service"
	"taskgate/internal/errors"
	"taskgate/internal/util"

	"github.com/google/uuid"
)

// queuedMailer hands mail to the mail worker through the event publisher.
type queuedMailer struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func (m *queuedMailer) Send(ctx context.Context, to, subject, body string) error {
	event := &service.MailEvent{
		ID:        uuid.NewString(),
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		To:        to,
		Subject:   subject,
		Body:      body,
	}

	if err := m.publisher.PublishMailEvent(ctx, event); err != nil {
		return errors.Wrap(err, "queue mail")
	}

	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Info("Mail queued",
		slog.String("mail_id", event.ID),
		slog.String("to", util.MaskEmail(to)),
	)

	return nil
}

// noopMailer only logs. The message body is never logged because it may
// carry a reset token.
type noopMailer struct {
	logger *slog.Logger
}

func (m *noopMailer) Send(ctx context.Context, to, subject, _ string) error {
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Info("Mail transport disabled, dropping message",
		slog.String("to", util.MaskEmail(to)),
		slog.String("subject", subject),
	)

	return nil
}
