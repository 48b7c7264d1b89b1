package repository

import (
	"context"
	"time"

	"passfit/internal/domain/entity"
)

// CheckInRepository defines the append-only check-in ledger operations.
type CheckInRepository interface {
	// CreateCheckIn appends a new check-in record. Records are immutable
	// once written.
	CreateCheckIn(ctx context.Context, checkIn *entity.CheckIn) error

	// FindCheckInsInRange retrieves a user's check-ins for one studio with
	// checkinTime in [from, to).
	FindCheckInsInRange(ctx context.Context, userID, studioID string, from, to time.Time) ([]*entity.CheckIn, error)

	// FindRecentCheckIns retrieves a user's most recent check-ins across all
	// studios, newest first, bounded by limit.
	FindRecentCheckIns(ctx context.Context, userID string, limit int) ([]*entity.CheckIn, error)
}
