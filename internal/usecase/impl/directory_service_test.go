package impl

import (
	"context"
	"math"
	"testing"

	"passfit/internal/domain/entity"
	domainerrors "passfit/internal/domain/errors"
	"passfit/internal/domain/repository"
	mockRepo "passfit/internal/mocks/repository"
	"passfit/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testStudios() []*entity.Studio {
	return []*entity.Studio{
		{
			ID:            "studio-near",
			Name:          "Alpha Fitness",
			Address:       "Main Street 1, Damascus",
			Location:      &entity.GeoPoint{Latitude: 33.52, Longitude: 36.28},
			Amenities:     []string{"sauna", "pool"},
			AverageRating: 4.5,
			IsActive:      true,
		},
		{
			ID:            "studio-far",
			Name:          "Beta Gym",
			Address:       "Aleppo Road 9",
			Location:      &entity.GeoPoint{Latitude: 36.2, Longitude: 37.13},
			Amenities:     []string{"sauna"},
			AverageRating: 3.2,
			IsActive:      true,
		},
		{
			ID:       "studio-nowhere",
			Name:     "Gamma Yoga",
			Address:  "Unknown",
			IsActive: true,
		},
	}
}

func newDirectory(t *testing.T, studios []*entity.Studio) usecase.DirectoryUsecase {
	t.Helper()

	studioRepo := mockRepo.NewMockStudioRepository(t)
	studioRepo.EXPECT().
		FindActiveStudios(mock.Anything).
		Return(studios, nil)

	return NewDirectoryService(DirectoryServiceParams{
		StudioRepo: studioRepo,
	})
}

func TestDirectoryService_Search_Unbounded_NoCenter(t *testing.T) {
	directory := newDirectory(t, testStudios())

	results, err := directory.Search(context.Background(), &usecase.DirectoryQuery{})
	require.NoError(t, err)

	// No center: nothing is distance-filtered, ordering is by name.
	require.Len(t, results, 3)
	assert.Equal(t, "Alpha Fitness", results[0].Studio.Name)
	assert.Equal(t, "Beta Gym", results[1].Studio.Name)
	assert.Equal(t, "Gamma Yoga", results[2].Studio.Name)
	for _, result := range results {
		assert.Nil(t, result.DistanceKm)
		assert.Empty(t, result.FormattedDistance)
	}
}

func TestDirectoryService_Search_RadiusBounded(t *testing.T) {
	directory := newDirectory(t, testStudios())

	center := &entity.GeoPoint{Latitude: 33.5138, Longitude: 36.2765}
	results, err := directory.Search(context.Background(), &usecase.DirectoryQuery{
		Center:   center,
		RadiusKm: 50,
	})
	require.NoError(t, err)

	// Only the Damascus studio is within 50 km; the studio without
	// coordinates cannot be inside any radius.
	require.Len(t, results, 1)
	assert.Equal(t, "studio-near", results[0].Studio.ID)
	require.NotNil(t, results[0].DistanceKm)
	assert.Less(t, *results[0].DistanceKm, 50.0)
	assert.NotEmpty(t, results[0].FormattedDistance)
}

func TestDirectoryService_Search_InfiniteRadiusUnbounded(t *testing.T) {
	directory := newDirectory(t, testStudios())

	center := &entity.GeoPoint{Latitude: 33.5138, Longitude: 36.2765}
	results, err := directory.Search(context.Background(), &usecase.DirectoryQuery{
		Center:   center,
		RadiusKm: math.Inf(1),
	})
	require.NoError(t, err)

	// Infinite radius disables the bound entirely; ordering is by distance
	// with the unlocated studio last.
	require.Len(t, results, 3)
	assert.Equal(t, "studio-near", results[0].Studio.ID)
	assert.Equal(t, "studio-far", results[1].Studio.ID)
	assert.Equal(t, "studio-nowhere", results[2].Studio.ID)
	assert.Nil(t, results[2].DistanceKm)
}

func TestDirectoryService_Search_NegativeRadiusUnbounded(t *testing.T) {
	directory := newDirectory(t, testStudios())

	results, err := directory.Search(context.Background(), &usecase.DirectoryQuery{
		Center:   &entity.GeoPoint{Latitude: 33.5138, Longitude: 36.2765},
		RadiusKm: -1,
	})
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestDirectoryService_Search_ZeroRadiusUnbounded(t *testing.T) {
	directory := newDirectory(t, testStudios())

	// Zero radius means no radius filter at all; the center still drives
	// distance annotation and ordering.
	results, err := directory.Search(context.Background(), &usecase.DirectoryQuery{
		Center: &entity.GeoPoint{Latitude: 33.5138, Longitude: 36.2765},
	})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "studio-near", results[0].Studio.ID)
	assert.Equal(t, "studio-far", results[1].Studio.ID)
	assert.Equal(t, "studio-nowhere", results[2].Studio.ID)
}

func TestDirectoryService_Search_SearchTerm(t *testing.T) {
	directory := newDirectory(t, testStudios())

	results, err := directory.Search(context.Background(), &usecase.DirectoryQuery{
		SearchTerm: "beta",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "studio-far", results[0].Studio.ID)
}

func TestDirectoryService_Search_MinRating(t *testing.T) {
	directory := newDirectory(t, testStudios())

	results, err := directory.Search(context.Background(), &usecase.DirectoryQuery{
		MinRating: 4.0,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "studio-near", results[0].Studio.ID)
}

func TestDirectoryService_Search_Amenities(t *testing.T) {
	directory := newDirectory(t, testStudios())

	results, err := directory.Search(context.Background(), &usecase.DirectoryQuery{
		Amenities: []string{"sauna", "pool"},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "studio-near", results[0].Studio.ID)
}

func TestDirectoryService_Search_Viewport(t *testing.T) {
	directory := newDirectory(t, testStudios())

	results, err := directory.Search(context.Background(), &usecase.DirectoryQuery{
		Viewport: &usecase.ViewportBounds{
			LatMin: 33.0, LatMax: 34.0,
			LngMin: 36.0, LngMax: 37.0,
		},
	})
	require.NoError(t, err)

	// The viewport keeps the Damascus studio and drops the one without
	// coordinates.
	require.Len(t, results, 1)
	assert.Equal(t, "studio-near", results[0].Studio.ID)
}

func TestDirectoryService_GetStudio_WithCenter(t *testing.T) {
	studioRepo := mockRepo.NewMockStudioRepository(t)
	directory := NewDirectoryService(DirectoryServiceParams{
		StudioRepo: studioRepo,
	})

	studio := testStudios()[0]
	studioRepo.EXPECT().
		FindStudioByID(mock.Anything, "studio-near").
		Return(studio, nil)

	result, err := directory.GetStudio(context.Background(), "studio-near", &entity.GeoPoint{Latitude: 33.5138, Longitude: 36.2765})
	require.NoError(t, err)
	assert.Equal(t, studio, result.Studio)
	require.NotNil(t, result.DistanceKm)
	assert.NotEmpty(t, result.FormattedDistance)
}

func TestDirectoryService_GetStudio_NotFound(t *testing.T) {
	studioRepo := mockRepo.NewMockStudioRepository(t)
	directory := NewDirectoryService(DirectoryServiceParams{
		StudioRepo: studioRepo,
	})

	studioRepo.EXPECT().
		FindStudioByID(mock.Anything, "studio-gone").
		Return(nil, repository.ErrStudioNotFound)

	_, err := directory.GetStudio(context.Background(), "studio-gone", nil)
	assert.ErrorIs(t, err, domainerrors.ErrStudioNotFound)
}

func TestDirectoryService_GetStudio_FetchFailure(t *testing.T) {
	studioRepo := mockRepo.NewMockStudioRepository(t)
	directory := NewDirectoryService(DirectoryServiceParams{
		StudioRepo: studioRepo,
	})

	studioRepo.EXPECT().
		FindStudioByID(mock.Anything, "studio-near").
		Return(nil, errors.New("deadline exceeded"))

	_, err := directory.GetStudio(context.Background(), "studio-near", nil)
	assert.ErrorIs(t, err, domainerrors.ErrDirectoryUnavailable)
}

func TestDirectoryService_Search_FetchFailure(t *testing.T) {
	studioRepo := mockRepo.NewMockStudioRepository(t)
	directory := NewDirectoryService(DirectoryServiceParams{
		StudioRepo: studioRepo,
	})

	studioRepo.EXPECT().
		FindActiveStudios(mock.Anything).
		Return(nil, errors.New("deadline exceeded"))

	_, err := directory.Search(context.Background(), &usecase.DirectoryQuery{})
	assert.ErrorIs(t, err, domainerrors.ErrDirectoryUnavailable)
}
