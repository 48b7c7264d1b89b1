package usecase

import (
	"context"

	"passfit/internal/domain/entity"
)

// CheckInUsecase manages the append-only check-in ledger.
type CheckInUsecase interface {
	// CheckIn records a visit to a studio. At most one check-in per user,
	// studio and local calendar day is accepted; a second attempt fails
	// without touching the ledger.
	CheckIn(ctx context.Context, userID, studioID string) (*entity.CheckIn, error)

	// HasCheckedInToday reports whether the user already has a check-in at
	// the studio for the current local day. The cache answers first, so an
	// accepted check-in is visible here before the ledger read would show
	// it; the answer reverts to false once the local day rolls over.
	HasCheckedInToday(ctx context.Context, userID, studioID string) (bool, error)

	// ProcessCheckInCode decodes a scanned studio QR payload and records
	// the check-in it encodes.
	ProcessCheckInCode(ctx context.Context, userID, payload string) (*entity.CheckIn, error)

	// GenerateStudioCode renders the studio's check-in QR code as PNG.
	GenerateStudioCode(ctx context.Context, studioID string) ([]byte, error)

	// GetHistory returns the user's most recent check-ins, newest first.
	// A non-positive limit falls back to the configured page size.
	GetHistory(ctx context.Context, userID string, limit int) ([]*entity.CheckIn, error)

	// GetStats derives visit statistics from the user's recent check-ins.
	// The numbers cover a bounded recent window, not the full ledger.
	GetStats(ctx context.Context, userID string) (*entity.CheckInStats, error)
}
