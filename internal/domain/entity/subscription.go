package entity

import "time"

// SubscriptionStatus is the lifecycle state of a billing subscription.
// The billing collaborator owns the record; the core only reads it and
// projects its status onto the user document.
type SubscriptionStatus string

const (
	SubscriptionPending  SubscriptionStatus = "pending"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionExpired  SubscriptionStatus = "expired"
)

// UserSubscriptionStatus is the denormalized membership state shown on the
// user record. It is strictly derived from the latest Subscription and must
// only ever be written by the status projector.
type UserSubscriptionStatus string

const (
	UserSubscriptionActive  UserSubscriptionStatus = "active"
	UserSubscriptionFree    UserSubscriptionStatus = "free"
	UserSubscriptionExpired UserSubscriptionStatus = "expired"
)

// Subscription represents a user's plan subscription.
type Subscription struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	PlanID    string             `json:"plan_id"`
	StartedAt time.Time          `json:"started_at"`
	ExpiresAt time.Time          `json:"expires_at"`
	Status    SubscriptionStatus `json:"status"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// IsExpired reports whether the subscription has passed its expiry at t.
func (s *Subscription) IsExpired(t time.Time) bool {
	return !s.ExpiresAt.IsZero() && s.ExpiresAt.Before(t)
}
