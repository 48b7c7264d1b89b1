package service

import (
	"context"

	"passfit/internal/domain/entity"
)

// SubscriptionEvent is published whenever a subscription lifecycle mutation
// (create, renew, cancel) commits. The sync worker consumes it to project the
// status onto the user record and notify the user's devices.
type SubscriptionEvent struct {
	SubscriptionID string                    `json:"subscription_id"`
	UserID         string                    `json:"user_id"`
	Status         entity.SubscriptionStatus `json:"status"`
	RequestID      string                    `json:"request_id,omitempty"`
}

// EventPublisher defines the interface for publishing domain events.
type EventPublisher interface {
	// PublishSubscriptionEvent publishes a subscription lifecycle event.
	PublishSubscriptionEvent(ctx context.Context, event *SubscriptionEvent) error

	// Close releases publisher resources.
	Close() error
}
