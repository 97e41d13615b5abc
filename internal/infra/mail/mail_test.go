package mail

import (
	"context"
	"io"
	"log/slog"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"taskgate/config"
	deliverycontext "taskgate/internal/delivery/context"
	"taskgate/internal/domain/service"
	"taskgate/internal/errors"
	mockSvc "taskgate/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func smtpConfig() *config.Config {
	return &config.Config{Mail: &config.MailConfig{
		Transport: "smtp",
		From:      "no-reply@taskgate.local",
		SMTP:      config.SMTPConfig{Host: "mail.internal", Port: 2525, Username: "relay", Password: "secret"},
	}}
}

func TestSMTPMailer_Send(t *testing.T) {
	mailer, err := NewSMTPMailer(smtpConfig(), discardLogger())
	require.NoError(t, err)

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	var gotAuth smtp.Auth
	mailer.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotAuth, gotFrom, gotTo, gotMsg = addr, a, from, to, msg

		return nil
	}

	require.NoError(t, mailer.Send(context.Background(), "ada@example.com", "Reset Password", "line one\nline two"))

	assert.Equal(t, "mail.internal:2525", gotAddr)
	assert.NotNil(t, gotAuth)
	assert.Equal(t, "no-reply@taskgate.local", gotFrom)
	assert.Equal(t, []string{"ada@example.com"}, gotTo)

	msg := string(gotMsg)
	assert.Contains(t, msg, "To: ada@example.com\r\n")
	assert.Contains(t, msg, "Subject: Reset Password\r\n")
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\nline one\r\nline two"))
}

func TestSMTPMailer_Send_Errors(t *testing.T) {
	mailer, err := NewSMTPMailer(smtpConfig(), discardLogger())
	require.NoError(t, err)

	relayErr := errors.New("451 try again later")
	mailer.send = func(string, smtp.Auth, string, []string, []byte) error { return relayErr }

	assert.ErrorIs(t, mailer.Send(context.Background(), "ada@example.com", "s", "b"), relayErr)
	assert.Error(t, mailer.Send(context.Background(), "ada@example.com\r\nBcc: eve@example.com", "s", "b"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, mailer.Send(ctx, "ada@example.com", "s", "b"), context.Canceled)
}

func TestNewSMTPMailer_Validation(t *testing.T) {
	_, err := NewSMTPMailer(&config.Config{}, discardLogger())
	assert.Error(t, err)

	cfg := smtpConfig()
	cfg.Mail.From = ""
	_, err = NewSMTPMailer(cfg, discardLogger())
	assert.Error(t, err)

	cfg = smtpConfig()
	cfg.Mail.SMTP.Username = ""
	cfg.Mail.SMTP.Port = 0
	mailer, err := NewSMTPMailer(cfg, discardLogger())
	require.NoError(t, err)
	assert.Nil(t, mailer.auth)
	assert.Equal(t, "mail.internal:587", mailer.addr)
}

func TestBuildMessage_EncodesNonASCIISubject(t *testing.T) {
	msg, err := buildMessage("a@b.c", "d@e.f", "Réinitialiser", "x", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Contains(t, string(msg), "Subject: =?utf-8?q?R=C3=A9initialiser?=\r\n")
}

func TestQueuedMailer_Send(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	mailer := &queuedMailer{publisher: publisher, logger: discardLogger()}
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	publisher.EXPECT().
		PublishMailEvent(ctx, mock.MatchedBy(func(e *service.MailEvent) bool {
			return e.ID != "" && e.RequestID == "req-42" && e.To == "ada@example.com" && e.Subject == "Hi" && e.Body == "Body"
		})).
		Return(nil)

	require.NoError(t, mailer.Send(ctx, "ada@example.com", "Hi", "Body"))
}

func TestQueuedMailer_PublishFailure(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	mailer := &queuedMailer{publisher: publisher, logger: discardLogger()}
	ctx := context.Background()

	publisher.EXPECT().PublishMailEvent(ctx, mock.Anything).Return(errors.New("topic unavailable"))

	assert.ErrorContains(t, mailer.Send(ctx, "ada@example.com", "Hi", "Body"), "topic unavailable")
}

func TestNewMailer(t *testing.T) {
	newParams := func(transport string) MailerParams {
		cfg := smtpConfig()
		cfg.Mail.Transport = transport

		return MailerParams{Config: cfg, Publisher: mockSvc.NewMockEventPublisher(t), Logger: discardLogger()}
	}

	mailer, err := NewMailer(newParams(""))
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, mailer)

	mailer, err = NewMailer(newParams("smtp"))
	require.NoError(t, err)
	assert.IsType(t, &SMTPMailer{}, mailer)

	mailer, err = NewMailer(newParams("queue"))
	require.NoError(t, err)
	assert.IsType(t, &queuedMailer{}, mailer)

	_, err = NewMailer(newParams("carrier-pigeon"))
	assert.Error(t, err)
}
