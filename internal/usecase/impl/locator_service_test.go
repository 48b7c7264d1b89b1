package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"passfit/config"
	"passfit/internal/domain/entity"
	domainerrors "passfit/internal/domain/errors"
	"passfit/internal/domain/service"
	mockRepo "passfit/internal/mocks/repository"
	mockSvc "passfit/internal/mocks/service"
	"passfit/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func locatorConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Location = &config.LocationConfig{
		ResolveTimeout:    200 * time.Millisecond,
		PositionTTL:       15 * time.Minute,
		DefaultFallbackID: "damascus",
	}

	return cfg
}

func newLocator(t *testing.T, source *mockSvc.MockPositionSource) usecase.LocatorUsecase {
	t.Helper()

	return NewLocatorService(LocatorServiceParams{
		PositionSource: source,
		PositionRepo:   mockRepo.NewMockPositionRepository(t),
		Config:         locatorConfig(),
		Logger:         discardLogger(),
	})
}

func TestLocatorService_Current_BeforeResolve(t *testing.T) {
	locator := newLocator(t, mockSvc.NewMockPositionSource(t))

	state := locator.Current(context.Background(), "user-1")
	require.NotNil(t, state)
	assert.Equal(t, usecase.LocationLoading, state.Status)
	require.NotNil(t, state.Fallback)
	assert.Equal(t, "damascus", state.Fallback.ID)
	assert.InDelta(t, 33.5138, state.Coordinates.Latitude, 1e-9)
}

func TestLocatorService_Resolve_Granted(t *testing.T) {
	source := mockSvc.NewMockPositionSource(t)
	locator := newLocator(t, source)

	position := &entity.Position{
		Point:      entity.GeoPoint{Latitude: 52.52, Longitude: 13.405},
		ReportedAt: time.Now(),
	}
	source.EXPECT().
		CurrentPosition(mock.Anything, "user-1").
		Return(position, nil)

	state, err := locator.Resolve(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, usecase.LocationGranted, state.Status)
	assert.Equal(t, position.Point, state.Coordinates)
	assert.Nil(t, state.Fallback)
	assert.Empty(t, state.DeniedReason)
}

func TestLocatorService_Resolve_PermissionDenied(t *testing.T) {
	source := mockSvc.NewMockPositionSource(t)
	locator := newLocator(t, source)

	source.EXPECT().
		CurrentPosition(mock.Anything, "user-1").
		Return(nil, service.ErrPositionPermissionDenied)

	state, err := locator.Resolve(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, usecase.LocationDenied, state.Status)
	assert.Equal(t, "permission_denied", state.DeniedReason)
	require.NotNil(t, state.Fallback)
	assert.Equal(t, "damascus", state.Fallback.ID)
}

func TestLocatorService_Resolve_Unavailable(t *testing.T) {
	source := mockSvc.NewMockPositionSource(t)
	locator := newLocator(t, source)

	source.EXPECT().
		CurrentPosition(mock.Anything, "user-1").
		Return(nil, service.ErrPositionUnavailable)

	state, err := locator.Resolve(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, usecase.LocationDenied, state.Status)
	assert.Equal(t, "position_unavailable", state.DeniedReason)
}

func TestLocatorService_Resolve_Timeout(t *testing.T) {
	source := mockSvc.NewMockPositionSource(t)
	locator := newLocator(t, source)

	source.EXPECT().
		CurrentPosition(mock.Anything, "user-1").
		RunAndReturn(func(ctx context.Context, _ string) (*entity.Position, error) {
			<-ctx.Done()

			return nil, ctx.Err()
		})

	start := time.Now()
	state, err := locator.Resolve(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, usecase.LocationDenied, state.Status)
	assert.Equal(t, "timeout", state.DeniedReason)
	require.NotNil(t, state.Fallback)
}

func TestLocatorService_Resolve_SharedAttempt(t *testing.T) {
	source := mockSvc.NewMockPositionSource(t)
	locator := newLocator(t, source)

	release := make(chan struct{})
	source.EXPECT().
		CurrentPosition(mock.Anything, "user-1").
		RunAndReturn(func(ctx context.Context, _ string) (*entity.Position, error) {
			<-release

			return &entity.Position{Point: entity.GeoPoint{Latitude: 1, Longitude: 2}}, nil
		}).
		Once()

	var wg sync.WaitGroup
	states := make([]*usecase.LocationState, 2)
	for i := range states {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			state, err := locator.Resolve(context.Background(), "user-1")
			require.NoError(t, err)
			states[i] = state
		}(i)
	}

	// Give both goroutines time to either start or join the attempt.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, state := range states {
		require.NotNil(t, state)
		assert.Equal(t, usecase.LocationGranted, state.Status)
	}
}

func TestLocatorService_SelectFallback(t *testing.T) {
	source := mockSvc.NewMockPositionSource(t)
	locator := newLocator(t, source)

	source.EXPECT().
		CurrentPosition(mock.Anything, "user-1").
		Return(nil, service.ErrPositionUnavailable)

	_, err := locator.Resolve(context.Background(), "user-1")
	require.NoError(t, err)

	state, err := locator.SelectFallback(context.Background(), "user-1", "berlin")
	require.NoError(t, err)
	assert.Equal(t, usecase.LocationDenied, state.Status)
	require.NotNil(t, state.Fallback)
	assert.Equal(t, "berlin", state.Fallback.ID)
	assert.InDelta(t, 52.52, state.Coordinates.Latitude, 1e-9)

	// Selection survives into the visible state.
	current := locator.Current(context.Background(), "user-1")
	require.NotNil(t, current.Fallback)
	assert.Equal(t, "berlin", current.Fallback.ID)
}

func TestLocatorService_SelectFallback_Unknown(t *testing.T) {
	locator := newLocator(t, mockSvc.NewMockPositionSource(t))

	_, err := locator.SelectFallback(context.Background(), "user-1", "atlantis")
	assert.ErrorIs(t, err, domainerrors.ErrFallbackLocationNotFound)
}

func TestLocatorService_Resolve_JoinedCallerDeadline(t *testing.T) {
	source := mockSvc.NewMockPositionSource(t)
	locator := newLocator(t, source)

	started := make(chan struct{})
	release := make(chan struct{})
	source.EXPECT().
		CurrentPosition(mock.Anything, "user-1").
		RunAndReturn(func(ctx context.Context, _ string) (*entity.Position, error) {
			close(started)
			<-release

			return &entity.Position{Point: entity.GeoPoint{Latitude: 1, Longitude: 2}}, nil
		}).
		Once()

	resolved := make(chan struct{})
	go func() {
		defer close(resolved)
		_, _ = locator.Resolve(context.Background(), "user-1")
	}()
	<-started

	// A second caller joining the in-flight attempt with an already lapsed
	// deadline gets the typed timeout, not a raw context error.
	expired, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := locator.Resolve(expired, "user-1")
	assert.ErrorIs(t, err, domainerrors.ErrLocationTimeout)

	close(release)
	<-resolved
}

func TestLocatorService_SelectedFallback_KeptAfterFailedRetry(t *testing.T) {
	source := mockSvc.NewMockPositionSource(t)
	locator := newLocator(t, source)

	_, err := locator.SelectFallback(context.Background(), "user-1", "munich")
	require.NoError(t, err)

	source.EXPECT().
		CurrentPosition(mock.Anything, "user-1").
		Return(nil, service.ErrPositionUnavailable)

	state, err := locator.Retry(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, state.Fallback)
	assert.Equal(t, "munich", state.Fallback.ID)
}

func TestLocatorService_Retry_AfterDenialCanSucceed(t *testing.T) {
	source := mockSvc.NewMockPositionSource(t)
	locator := newLocator(t, source)

	source.EXPECT().
		CurrentPosition(mock.Anything, "user-1").
		Return(nil, service.ErrPositionPermissionDenied).
		Once()
	source.EXPECT().
		CurrentPosition(mock.Anything, "user-1").
		Return(&entity.Position{Point: entity.GeoPoint{Latitude: 34.7324, Longitude: 36.7137}}, nil).
		Once()

	state, err := locator.Resolve(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, usecase.LocationDenied, state.Status)

	state, err = locator.Retry(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, usecase.LocationGranted, state.Status)
}

func TestLocatorService_ListFallbacks(t *testing.T) {
	locator := newLocator(t, mockSvc.NewMockPositionSource(t))

	fallbacks := locator.ListFallbacks(context.Background())
	assert.Equal(t, entity.FallbackLocations, fallbacks)
}

func TestLocatorService_ReportPosition(t *testing.T) {
	positionRepo := mockRepo.NewMockPositionRepository(t)
	locator := NewLocatorService(LocatorServiceParams{
		PositionSource: mockSvc.NewMockPositionSource(t),
		PositionRepo:   positionRepo,
		Config:         locatorConfig(),
		Logger:         discardLogger(),
	})

	positionRepo.EXPECT().
		SavePosition(mock.Anything, mock.AnythingOfType("*entity.DevicePosition")).
		Return(nil)

	err := locator.ReportPosition(context.Background(), &entity.DevicePosition{
		UserID: "user-1",
		Point:  entity.GeoPoint{Latitude: 1, Longitude: 2},
	})
	require.NoError(t, err)
}
