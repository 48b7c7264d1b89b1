package usecase

import (
	"context"
	"time"

	"passfit/internal/domain/entity"
	"passfit/internal/domain/service"
)

// SubscriptionUsecase manages plan subscriptions and the projection of their
// status onto the user record.
type SubscriptionUsecase interface {
	// CreateSubscription starts a new subscription for the user and
	// publishes a lifecycle event. An unconfirmed payment leaves the
	// subscription pending; it does not grant membership until a later
	// event activates it.
	CreateSubscription(ctx context.Context, userID, planID string, expiresAt time.Time, paymentConfirmed bool) (*entity.Subscription, error)

	// RenewSubscription extends the subscription's expiry, reactivating it,
	// and publishes a lifecycle event.
	RenewSubscription(ctx context.Context, subscriptionID string, expiresAt time.Time) (*entity.Subscription, error)

	// CancelSubscription transitions the subscription to canceled and
	// publishes a lifecycle event.
	CancelSubscription(ctx context.Context, subscriptionID string) error

	// GetUserSubscriptions returns all of the user's subscriptions, newest
	// first.
	GetUserSubscriptions(ctx context.Context, userID string) ([]*entity.Subscription, error)

	// GetMembershipStatus derives the user's membership status from their
	// latest subscription. A user with no subscription is "free".
	GetMembershipStatus(ctx context.Context, userID string) (entity.UserSubscriptionStatus, error)

	// ApplyStatusProjection consumes a subscription lifecycle event: it
	// writes the derived membership status onto the user document and
	// invalidates the affected cache keys. The write is best effort; a
	// failure still invalidates the cache so readers re-derive.
	ApplyStatusProjection(ctx context.Context, event *service.SubscriptionEvent) error
}
