// Package location adapts persisted device position reports into the
// PositionSource the locator resolves against.
package location

import (
	"context"
	"time"

	"passfit/config"
	"passfit/internal/domain/entity"
	"passfit/internal/domain/repository"
	"passfit/internal/domain/service"

	"github.com/pkg/errors"
)

type devicePositionSource struct {
	positionRepo repository.PositionRepository
	ttl          time.Duration
	now          func() time.Time
}

// NewDevicePositionSource creates a PositionSource backed by the positions
// collection. A fix older than the configured TTL counts as unavailable, as
// does a user who has never reported one.
func NewDevicePositionSource(positionRepo repository.PositionRepository, cfg *config.Config) service.PositionSource {
	ttl := 15 * time.Minute
	if cfg != nil && cfg.Location != nil && cfg.Location.PositionTTL > 0 {
		ttl = cfg.Location.PositionTTL
	}

	return &devicePositionSource{
		positionRepo: positionRepo,
		ttl:          ttl,
		now:          time.Now,
	}
}

// CurrentPosition returns the user's last reported fix, mapped onto the
// position source failure taxonomy.
func (s *devicePositionSource) CurrentPosition(ctx context.Context, userID string) (*entity.Position, error) {
	devicePos, err := s.positionRepo.FindPositionByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPositionNotFound) {
			return nil, service.ErrPositionUnavailable
		}

		return nil, errors.Wrap(err, "failed to load device position")
	}

	if devicePos.Denied {
		return nil, service.ErrPositionPermissionDenied
	}

	if s.now().Sub(devicePos.ReportedAt) > s.ttl {
		return nil, service.ErrPositionUnavailable
	}

	return &entity.Position{
		Point:      devicePos.Point,
		ReportedAt: devicePos.ReportedAt,
		Accuracy:   devicePos.Accuracy,
	}, nil
}
