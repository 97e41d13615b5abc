// Package mail holds the service.Mailer transports.
package mail

import (
	"bytes"
	"context"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"taskgate/config"
	"taskgate/internal/domain/service"
	"taskgate/internal/errors"
	"taskgate/internal/util"
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends plain-text mail through an SMTP relay. The mail worker
// uses it directly; the API uses it when mail.transport is "smtp".
type SMTPMailer struct {
	addr   string
	from   string
	auth   smtp.Auth
	send   sendFunc
	logger *slog.Logger
}

// NewSMTPMailer builds a mailer for mail.smtp. PLAIN auth is used only when
// a username is configured.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (*SMTPMailer, error) {
	if cfg.Mail == nil || cfg.Mail.SMTP.Host == "" {
		return nil, errors.New("mail.smtp.host is required")
	}
	if cfg.Mail.From == "" {
		return nil, errors.New("mail.from is required")
	}

	smtpCfg := cfg.Mail.SMTP
	port := smtpCfg.Port
	if port == 0 {
		port = 587
	}

	var auth smtp.Auth
	if smtpCfg.Username != "" {
		auth = smtp.PlainAuth("", smtpCfg.Username, smtpCfg.Password, smtpCfg.Host)
	}

	return &SMTPMailer{
		addr:   net.JoinHostPort(smtpCfg.Host, strconv.Itoa(port)),
		from:   cfg.Mail.From,
		auth:   auth,
		send:   smtp.SendMail,
		logger: logger,
	}, nil
}

// Send delivers one message. net/smtp has no context support, so ctx is
// only checked before dialing.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	msg, err := buildMessage(m.from, to, subject, body, time.Now())
	if err != nil {
		return err
	}

	if err := m.send(m.addr, m.auth, m.from, []string{to}, msg); err != nil {
		return errors.Wrap(err, "smtp send")
	}

	m.logger.Debug("Mail sent over SMTP", slog.String("to", util.MaskEmail(to)))

	return nil
}

var _ service.Mailer = (*SMTPMailer)(nil)

func buildMessage(from, to, subject, body string, date time.Time) ([]byte, error) {
	for _, v := range []string{from, to, subject} {
		if strings.ContainsAny(v, "\r\n") {
			return nil, errors.New("mail header contains a line break")
		}
	}

	var buf bytes.Buffer
	buf.WriteString("From: " + from + "\r\n")
	buf.WriteString("To: " + to + "\r\n")
	buf.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	buf.WriteString("Date: " + date.Format(time.RFC1123Z) + "\r\n")
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	buf.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(strings.ReplaceAll(strings.ReplaceAll(body, "\r\n", "\n"), "\n", "\r\n"))

	return buf.Bytes(), nil
}
