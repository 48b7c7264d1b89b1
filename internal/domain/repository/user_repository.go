package repository

import (
	"context"

	"passfit/internal/domain/entity"
	"passfit/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user document does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the interface for user documents.
type UserRepository interface {
	// FindUserByID retrieves a user by the auth provider's stable ID.
	FindUserByID(ctx context.Context, id string) (*entity.User, error)

	// CreateUser persists a new user document.
	CreateUser(ctx context.Context, user *entity.User) error

	// UpdateSubscriptionStatus writes the denormalized membership status.
	// Only the status projector may call this; nothing else is allowed to
	// touch the field, or it diverges from the subscription record.
	UpdateSubscriptionStatus(ctx context.Context, id string, status entity.UserSubscriptionStatus) error

	// AddFCMToken registers a device push token on the user document.
	// Adding an already-registered token is a no-op.
	AddFCMToken(ctx context.Context, id, token string) error

	// RemoveFCMToken drops a device push token the provider rejected as
	// invalid or unregistered. Removing an unknown token is a no-op.
	RemoveFCMToken(ctx context.Context, id, token string) error
}
