package entity

import "time"

// User is the core account entity. The auth collaborator issues the ID (an
// opaque stable string); the document store holds the rest.
type User struct {
	ID                 string                 // Stable identifier issued by the auth provider.
	Email              string                 // Primary contact email.
	DisplayName        string                 // Display name shown in the app.
	SubscriptionStatus UserSubscriptionStatus // Denormalized membership state, written only by the projector.
	FCMTokens          []string               // Registered device tokens for push notifications.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// EffectiveSubscriptionStatus returns the denormalized status, defaulting to
// "free" whenever the field is absent so readers never see an indeterminate
// membership state.
func (u *User) EffectiveSubscriptionStatus() UserSubscriptionStatus {
	if u == nil || u.SubscriptionStatus == "" {
		return UserSubscriptionFree
	}

	return u.SubscriptionStatus
}
