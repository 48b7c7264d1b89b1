// Package impl contains the concrete use case services.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"passfit/config"
	"passfit/internal/domain/entity"
	domainerrors "passfit/internal/domain/errors"
	"passfit/internal/domain/repository"
	"passfit/internal/domain/service"
	"passfit/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Denial reasons reported in LocationState when live positioning fails.
const (
	deniedReasonPermission  = "permission_denied"
	deniedReasonUnavailable = "position_unavailable"
	deniedReasonTimeout     = "timeout"
	deniedReasonUnknown     = "unknown"
)

// userLocation is the locator's per-user state. inflight is non-nil while a
// resolution attempt is running; it is closed when the attempt completes so
// concurrent callers share one attempt instead of stacking them.
type userLocation struct {
	state    *usecase.LocationState
	inflight chan struct{}
}

type locatorService struct {
	positionSource service.PositionSource
	positionRepo   repository.PositionRepository
	config         *config.Config
	logger         *slog.Logger

	mu     sync.Mutex
	states map[string]*userLocation
}

// LocatorServiceParams holds dependencies for LocatorService, injected by Fx.
type LocatorServiceParams struct {
	fx.In

	PositionSource service.PositionSource
	PositionRepo   repository.PositionRepository
	Config         *config.Config
	Logger         *slog.Logger
}

// NewLocatorService creates a new locator service instance
func NewLocatorService(params LocatorServiceParams) usecase.LocatorUsecase {
	return &locatorService{
		positionSource: params.PositionSource,
		positionRepo:   params.PositionRepo,
		config:         params.Config,
		logger:         params.Logger,
		states:         make(map[string]*userLocation),
	}
}

// Current returns the user's location state without triggering a resolution.
func (s *locatorService) Current(ctx context.Context, userID string) *usecase.LocationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if loc, ok := s.states[userID]; ok && loc.state != nil {
		return cloneState(loc.state)
	}

	// Nothing resolved yet: report the default fallback so the caller has a
	// usable point immediately.
	return s.initialState()
}

// Resolve attempts live position resolution with a bounded wait. Failure is
// not an error: it degrades the state to denied with the effective fallback.
func (s *locatorService) Resolve(ctx context.Context, userID string) (*usecase.LocationState, error) {
	s.mu.Lock()
	loc, ok := s.states[userID]
	if !ok {
		loc = &userLocation{state: s.initialState()}
		s.states[userID] = loc
	}

	// Join an in-flight attempt instead of starting a second one.
	if loc.inflight != nil {
		done := loc.inflight
		s.mu.Unlock()

		select {
		case <-done:
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, domainerrors.ErrLocationTimeout
			}

			return nil, errors.WithStack(ctx.Err())
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		return cloneState(loc.state), nil
	}

	done := make(chan struct{})
	loc.inflight = done
	s.mu.Unlock()

	state := s.attempt(ctx, userID, loc)

	s.mu.Lock()
	loc.state = state
	loc.inflight = nil
	close(done)
	s.mu.Unlock()

	return cloneState(state), nil
}

// attempt runs one bounded resolution and classifies the outcome.
func (s *locatorService) attempt(ctx context.Context, userID string, loc *userLocation) *usecase.LocationState {
	attemptCtx, cancel := context.WithTimeout(ctx, s.resolveTimeout())
	defer cancel()

	position, err := s.positionSource.CurrentPosition(attemptCtx, userID)
	if err == nil {
		return &usecase.LocationState{
			Status:      usecase.LocationGranted,
			Coordinates: position.Point,
			Position:    position,
		}
	}

	reason := classifyDenial(err)
	s.logger.Info("position resolution failed",
		slog.String("user_id", userID),
		slog.String("reason", reason),
	)

	return s.deniedState(loc, reason)
}

// classifyDenial maps a resolution failure onto a denial reason. Anything
// unrecognized is reported as unknown rather than leaking the raw error.
func classifyDenial(err error) string {
	switch {
	case errors.Is(err, service.ErrPositionPermissionDenied):
		return deniedReasonPermission
	case errors.Is(err, service.ErrPositionUnavailable):
		return deniedReasonUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return deniedReasonTimeout
	default:
		return deniedReasonUnknown
	}
}

// deniedState builds the denied state, keeping a previously selected
// fallback in effect.
func (s *locatorService) deniedState(loc *userLocation, reason string) *usecase.LocationState {
	fallback := s.defaultFallback()
	if loc.state != nil && loc.state.Fallback != nil {
		fallback = *loc.state.Fallback
	}

	return &usecase.LocationState{
		Status:       usecase.LocationDenied,
		Coordinates:  fallback.Coordinates,
		Fallback:     &fallback,
		DeniedReason: reason,
	}
}

// Retry discards the failed state and resolves again.
func (s *locatorService) Retry(ctx context.Context, userID string) (*usecase.LocationState, error) {
	return s.Resolve(ctx, userID)
}

// SelectFallback pins one of the predefined fallback locations for the user.
func (s *locatorService) SelectFallback(ctx context.Context, userID, fallbackID string) (*usecase.LocationState, error) {
	fallback, ok := entity.FallbackLocationByID(fallbackID)
	if !ok {
		return nil, domainerrors.ErrFallbackLocationNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	loc, exists := s.states[userID]
	if !exists {
		loc = &userLocation{}
		s.states[userID] = loc
	}

	reason := deniedReasonUnknown
	if loc.state != nil && loc.state.DeniedReason != "" {
		reason = loc.state.DeniedReason
	}

	loc.state = &usecase.LocationState{
		Status:       usecase.LocationDenied,
		Coordinates:  fallback.Coordinates,
		Fallback:     &fallback,
		DeniedReason: reason,
	}

	return cloneState(loc.state), nil
}

// ListFallbacks returns the selectable fallback locations.
func (s *locatorService) ListFallbacks(ctx context.Context) []entity.FallbackLocation {
	return entity.FallbackLocations
}

// ReportPosition stores a device-reported fix or denial.
func (s *locatorService) ReportPosition(ctx context.Context, position *entity.DevicePosition) error {
	if position.ReportedAt.IsZero() {
		position.ReportedAt = time.Now()
	}

	if err := s.positionRepo.SavePosition(ctx, position); err != nil {
		return errors.Wrap(err, "failed to save reported position")
	}

	return nil
}

func (s *locatorService) resolveTimeout() time.Duration {
	if s.config != nil && s.config.Location != nil && s.config.Location.ResolveTimeout > 0 {
		return s.config.Location.ResolveTimeout
	}

	return 10 * time.Second
}

func (s *locatorService) defaultFallback() entity.FallbackLocation {
	id := ""
	if s.config != nil && s.config.Location != nil {
		id = s.config.Location.DefaultFallbackID
	}
	if fallback, ok := entity.FallbackLocationByID(id); ok {
		return fallback
	}

	return entity.FallbackLocations[0]
}

func (s *locatorService) initialState() *usecase.LocationState {
	fallback := s.defaultFallback()

	return &usecase.LocationState{
		Status:      usecase.LocationLoading,
		Coordinates: fallback.Coordinates,
		Fallback:    &fallback,
	}
}

func cloneState(state *usecase.LocationState) *usecase.LocationState {
	if state == nil {
		return nil
	}
	clone := *state

	return &clone
}
