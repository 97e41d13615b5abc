package service

import (
	"context"
)

// MailEvent is an outbound email queued for the mail worker.
type MailEvent struct {
	ID        string `json:"id"`
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMailEvent publishes an email for async delivery
	PublishMailEvent(ctx context.Context, event *MailEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
