// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"passfit/internal/domain/entity"
	"passfit/internal/errors"
)

// Domain-specific errors for studio persistence.
var (
	// ErrStudioNotFound is returned when a studio document does not exist.
	ErrStudioNotFound = errors.New("studio not found")
)

// StudioRepository defines read access to the studio catalog. The catalog is
// owned by the directory collaborator; the core never writes to it.
type StudioRepository interface {
	// FindStudioByID retrieves a single studio by its document ID.
	FindStudioByID(ctx context.Context, id string) (*entity.Studio, error)

	// FindActiveStudios retrieves the full active catalog ordered by name.
	// A studio without coordinates is still included; radius filtering is
	// the caller's concern.
	FindActiveStudios(ctx context.Context) ([]*entity.Studio, error)
}
