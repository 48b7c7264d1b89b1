package repository

import (
	"context"
	"time"

	"passfit/internal/domain/entity"
	"passfit/internal/errors"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// SubscriptionRepository defines the interface for subscription documents.
type SubscriptionRepository interface {
	// CreateSubscription persists a new subscription record.
	CreateSubscription(ctx context.Context, subscription *entity.Subscription) error

	// FindSubscriptionByID retrieves a subscription by its document ID.
	FindSubscriptionByID(ctx context.Context, id string) (*entity.Subscription, error)

	// FindLatestSubscriptionByUser retrieves the user's most recently
	// started subscription, the source of truth for the projected status.
	FindLatestSubscriptionByUser(ctx context.Context, userID string) (*entity.Subscription, error)

	// FindSubscriptionsByUser retrieves all subscriptions for a user,
	// newest first.
	FindSubscriptionsByUser(ctx context.Context, userID string) ([]*entity.Subscription, error)

	// UpdateSubscriptionStatus transitions the lifecycle status of a
	// subscription.
	UpdateSubscriptionStatus(ctx context.Context, id string, status entity.SubscriptionStatus) error

	// ExtendSubscription moves the expiry forward and forces the status to
	// active, used by renewals.
	ExtendSubscription(ctx context.Context, id string, expiresAt time.Time) error
}
