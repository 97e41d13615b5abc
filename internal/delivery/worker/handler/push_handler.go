// Package handler holds the mail worker's Pub/Sub push endpoint.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"taskgate/config"
	deliverycontext "taskgate/internal/delivery/context"
	"taskgate/internal/domain/constants"
	"taskgate/internal/domain/service"
	"taskgate/internal/infra/pubsub"
	"taskgate/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// validateFunc checks a Google-signed OIDC token for audience.
type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler delivers queued mail events pushed by Pub/Sub.
//
// Pub/Sub redelivers anything not answered with a 2xx, so the handler acks
// events it can never deliver and answers 503 only on transport failures.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validate       validateFunc
	mailer         service.Mailer
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Mailer service.Mailer
	Logger *slog.Logger
}

// NewPushHandler creates a new Pub/Sub push handler. Push auth is verified
// for the Google provider outside of development.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		validate: idtoken.Validate,
		mailer:   params.Mailer,
		logger:   params.Logger,
	}
	if ps := params.Config.PubSub; ps != nil {
		h.verifyPushAuth = ps.Provider == constants.PubSubProviderGoogle &&
			params.Config.Env.Env != constants.EnvDevelop
		h.audience = ps.PushAudience
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := decodeMailEvent(&pushMsg)
	if err != nil {
		// Redelivery cannot fix a malformed payload.
		h.logger.Error("[Worker] Dropping undecodable mail event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.mailer.Send(ctx, event.To, event.Subject, event.Body); err != nil {
		reqLogger.Error("[Worker] Failed to deliver mail",
			slog.String("mail_id", event.ID),
			slog.String("to", util.MaskEmail(event.To)),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Mail delivered",
		slog.String("mail_id", event.ID),
		slog.String("to", util.MaskEmail(event.To)),
	)

	return c.NoContent(http.StatusOK)
}

func decodeMailEvent(pushMsg *pubsub.PushMessage) (*service.MailEvent, error) {
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.MailEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse mail event")
	}
	if strings.TrimSpace(event.To) == "" {
		return nil, errors.New("mail event has no recipient")
	}

	return &event, nil
}

// extractRequestID prefers message attributes, then the event, then the
// X-Request-Id of the push request itself.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.MailEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPubSubToken verifies the OIDC token Google attaches to push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
