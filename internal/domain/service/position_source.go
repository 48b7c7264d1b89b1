package service

import (
	"context"

	"passfit/internal/domain/entity"
	"passfit/internal/errors"
)

// Position source failure taxonomy. The locator maps these onto its
// user-facing states; none of them are fatal.
var (
	// ErrPositionPermissionDenied means the device refused to share location.
	ErrPositionPermissionDenied = errors.New("position permission denied")
	// ErrPositionUnavailable means no usable fix exists (hardware failure,
	// nothing reported yet, or the last fix is too stale).
	ErrPositionUnavailable = errors.New("position unavailable")
)

// PositionSource produces the user's current position. Implementations must
// honor ctx cancellation so the locator can enforce its bounded wait.
type PositionSource interface {
	CurrentPosition(ctx context.Context, userID string) (*entity.Position, error)
}
