package repository

import (
	"context"

	"passfit/internal/domain/entity"
	"passfit/internal/errors"
)

// Domain-specific errors for device position persistence.
var (
	// ErrPositionNotFound is returned when no position has been reported yet.
	ErrPositionNotFound = errors.New("device position not found")
)

// PositionRepository stores the last coordinate fix each device reported.
type PositionRepository interface {
	// SavePosition overwrites the user's last reported position.
	SavePosition(ctx context.Context, position *entity.DevicePosition) error

	// FindPositionByUser retrieves the user's last reported position.
	FindPositionByUser(ctx context.Context, userID string) (*entity.DevicePosition, error)
}
