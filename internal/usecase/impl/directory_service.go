package impl

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"passfit/internal/domain/entity"
	domainerrors "passfit/internal/domain/errors"
	"passfit/internal/domain/repository"
	"passfit/internal/geo"
	"passfit/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type directoryService struct {
	studioRepo repository.StudioRepository
	now        func() time.Time
}

// DirectoryServiceParams holds dependencies for DirectoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	StudioRepo repository.StudioRepository
}

// NewDirectoryService creates a new directory service instance
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	return &directoryService{
		studioRepo: params.StudioRepo,
		now:        time.Now,
	}
}

// Search runs the filter pipeline over the active catalog.
func (s *directoryService) Search(ctx context.Context, query *usecase.DirectoryQuery) ([]*usecase.StudioResult, error) {
	if query == nil {
		query = &usecase.DirectoryQuery{}
	}

	studios, err := s.studioRepo.FindActiveStudios(ctx)
	if err != nil {
		// Catalog fetch failure is retryable by the caller, not a fault
		// of the request.
		return nil, domainerrors.ErrDirectoryUnavailable.WrapMessage(err.Error())
	}

	studios = geo.FilterByViewport(studios, viewportBound(query.Viewport))
	studios = filterByTerm(studios, query.SearchTerm)
	studios = filterByRating(studios, query.MinRating)
	studios = filterByAmenities(studios, query.Amenities)
	if query.OpenNow {
		studios = filterOpenAt(studios, s.now())
	}

	results := s.annotateDistance(studios, query.Center)

	if bounded, radius := s.radiusBound(query); bounded {
		results = filterByRadius(results, radius)
	}

	sortResults(results, query.Center != nil)

	return results, nil
}

// GetStudio retrieves one studio with optional distance annotations.
func (s *directoryService) GetStudio(ctx context.Context, id string, center *entity.GeoPoint) (*usecase.StudioResult, error) {
	studio, err := s.studioRepo.FindStudioByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStudioNotFound) {
			return nil, domainerrors.ErrStudioNotFound
		}

		return nil, domainerrors.ErrDirectoryUnavailable.WrapMessage(err.Error())
	}

	results := s.annotateDistance([]*entity.Studio{studio}, center)

	return results[0], nil
}

// radiusBound decides whether the search is distance-bounded. Without a
// center there is nothing to measure from; a non-positive or infinite radius
// explicitly asks for everything.
func (s *directoryService) radiusBound(query *usecase.DirectoryQuery) (bool, float64) {
	if query.Center == nil {
		return false, 0
	}
	if query.RadiusKm <= 0 || math.IsInf(query.RadiusKm, 1) {
		return false, 0
	}

	return true, query.RadiusKm
}

// annotateDistance computes per-studio distance from center. Studios without
// coordinates keep nil distance and sort last.
func (s *directoryService) annotateDistance(studios []*entity.Studio, center *entity.GeoPoint) []*usecase.StudioResult {
	results := make([]*usecase.StudioResult, 0, len(studios))
	for _, studio := range studios {
		result := &usecase.StudioResult{Studio: studio}
		if center != nil && studio.Location != nil {
			km := geo.DistanceKm(center.Latitude, center.Longitude, studio.Location.Latitude, studio.Location.Longitude)
			result.DistanceKm = &km
			result.FormattedDistance = geo.FormatDistance(km)
		}
		results = append(results, result)
	}

	return results
}

func viewportBound(viewport *usecase.ViewportBounds) *orb.Bound {
	if viewport == nil {
		return nil
	}
	bound := geo.Bound(viewport.LatMin, viewport.LatMax, viewport.LngMin, viewport.LngMax)

	return &bound
}

func filterByTerm(studios []*entity.Studio, term string) []*entity.Studio {
	term = strings.TrimSpace(strings.ToLower(term))
	if term == "" {
		return studios
	}

	filtered := make([]*entity.Studio, 0, len(studios))
	for _, studio := range studios {
		if strings.Contains(strings.ToLower(studio.Name), term) ||
			strings.Contains(strings.ToLower(studio.Address), term) {
			filtered = append(filtered, studio)
		}
	}

	return filtered
}

func filterByRating(studios []*entity.Studio, minRating float64) []*entity.Studio {
	if minRating <= 0 {
		return studios
	}

	filtered := make([]*entity.Studio, 0, len(studios))
	for _, studio := range studios {
		if studio.AverageRating >= minRating {
			filtered = append(filtered, studio)
		}
	}

	return filtered
}

func filterByAmenities(studios []*entity.Studio, amenities []string) []*entity.Studio {
	if len(amenities) == 0 {
		return studios
	}

	filtered := make([]*entity.Studio, 0, len(studios))
	for _, studio := range studios {
		if studio.HasAmenities(amenities) {
			filtered = append(filtered, studio)
		}
	}

	return filtered
}

func filterOpenAt(studios []*entity.Studio, t time.Time) []*entity.Studio {
	filtered := make([]*entity.Studio, 0, len(studios))
	for _, studio := range studios {
		if studio.IsOpenAt(t) {
			filtered = append(filtered, studio)
		}
	}

	return filtered
}

// filterByRadius keeps results within radius km. Results without a computed
// distance cannot be inside any radius and are dropped.
func filterByRadius(results []*usecase.StudioResult, radiusKm float64) []*usecase.StudioResult {
	filtered := make([]*usecase.StudioResult, 0, len(results))
	for _, result := range results {
		if result.DistanceKm != nil && *result.DistanceKm <= radiusKm {
			filtered = append(filtered, result)
		}
	}

	return filtered
}

// sortResults orders by distance ascending when a center is known, by name
// ascending otherwise. The sort is stable so equal keys keep catalog order.
func sortResults(results []*usecase.StudioResult, byDistance bool) {
	if byDistance {
		sort.SliceStable(results, func(i, j int) bool {
			di, dj := results[i].DistanceKm, results[j].DistanceKm
			switch {
			case di == nil && dj == nil:
				return results[i].Studio.Name < results[j].Studio.Name
			case di == nil:
				return false
			case dj == nil:
				return true
			default:
				return *di < *dj
			}
		})

		return
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Studio.Name < results[j].Studio.Name
	})
}
