package usecase

import (
	"context"

	"passfit/internal/domain/entity"
	"passfit/internal/domain/service"
)

// UserUsecase manages user profiles and device registration.
type UserUsecase interface {
	// GetProfile returns the user's profile, reading through the client
	// cache. The membership status always carries a defined value.
	GetProfile(ctx context.Context, userID string) (*entity.User, error)

	// EnsureUser creates the user document on first sign-in if it does not
	// exist yet.
	EnsureUser(ctx context.Context, auth *service.AuthenticatedUser) (*entity.User, error)

	// RegisterFCMToken registers a device push token for the user.
	// Registering an already-known token is a no-op.
	RegisterFCMToken(ctx context.Context, userID, token string) error
}
