// Package usecase defines the application-layer interfaces between the
// delivery layer and the domain services.
package usecase

import (
	"context"

	"passfit/internal/domain/entity"
)

// LocationStatus is the resolution state of a user's position.
type LocationStatus string

const (
	// LocationLoading means a resolution attempt is in flight and nothing
	// has ever been resolved for this user.
	LocationLoading LocationStatus = "loading"
	// LocationGranted means a live position is available.
	LocationGranted LocationStatus = "granted"
	// LocationDenied means live positioning failed (permission refused,
	// unavailable, or timed out) and a fallback location is in effect.
	LocationDenied LocationStatus = "denied"
)

// LocationState is the locator's answer for one user. Whatever the status,
// Coordinates always holds a usable point: the live position when granted,
// the effective fallback otherwise. Consumers never have to wait on it.
type LocationState struct {
	Status      LocationStatus           `json:"status"`
	Coordinates entity.GeoPoint          `json:"coordinates"`
	Position    *entity.Position         `json:"position,omitempty"` // Set only when granted.
	Fallback    *entity.FallbackLocation `json:"fallback,omitempty"` // Set when the fallback is in effect.
	// DeniedReason describes why live positioning failed, empty when granted.
	DeniedReason string `json:"denied_reason,omitempty"`
}

// LocatorUsecase resolves a usable position for each user, degrading to a
// selectable fallback location when live positioning fails.
type LocatorUsecase interface {
	// Current returns the user's location state without triggering a new
	// resolution. Before anything has resolved it reports the configured
	// default fallback.
	Current(ctx context.Context, userID string) *LocationState

	// Resolve attempts live position resolution with a bounded wait and
	// returns the resulting state. Concurrent calls for the same user share
	// one attempt.
	Resolve(ctx context.Context, userID string) (*LocationState, error)

	// Retry discards the user's failed state and resolves again. Calling it
	// while granted is equivalent to Resolve.
	Retry(ctx context.Context, userID string) (*LocationState, error)

	// SelectFallback pins one of the predefined fallback locations for the
	// user and returns the updated state.
	SelectFallback(ctx context.Context, userID, fallbackID string) (*LocationState, error)

	// ListFallbacks returns the selectable fallback locations.
	ListFallbacks(ctx context.Context) []entity.FallbackLocation

	// ReportPosition stores a device-reported fix (or denial) for later
	// resolution attempts.
	ReportPosition(ctx context.Context, position *entity.DevicePosition) error
}
