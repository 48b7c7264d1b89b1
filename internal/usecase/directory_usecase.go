package usecase

import (
	"context"

	"passfit/internal/domain/entity"
)

// ViewportBounds is a rectangular map window in degrees, inclusive of its
// edges. A nil *ViewportBounds means no window is known yet and nothing is
// filtered out.
type ViewportBounds struct {
	LatMin float64 `json:"lat_min"`
	LatMax float64 `json:"lat_max"`
	LngMin float64 `json:"lng_min"`
	LngMax float64 `json:"lng_max"`
}

// DirectoryQuery describes one studio directory search. Zero values mean
// "no constraint": a nil Center or a non-positive/infinite RadiusKm yields an
// unbounded search, empty filters pass everything.
type DirectoryQuery struct {
	Center     *entity.GeoPoint `json:"center,omitempty"`
	RadiusKm   float64          `json:"radius_km,omitempty"`
	Viewport   *ViewportBounds  `json:"viewport,omitempty"`
	SearchTerm string           `json:"search_term,omitempty"`
	MinRating  float64          `json:"min_rating,omitempty"`
	Amenities  []string         `json:"amenities,omitempty"`
	OpenNow    bool             `json:"open_now,omitempty"`
}

// StudioResult is one directory hit. Distance fields are populated only when
// the query carried a center.
type StudioResult struct {
	Studio            *entity.Studio `json:"studio"`
	DistanceKm        *float64       `json:"distance_km,omitempty"`
	FormattedDistance string         `json:"formatted_distance,omitempty"`
}

// DirectoryUsecase searches the studio catalog.
type DirectoryUsecase interface {
	// Search runs the filter pipeline over the active catalog. Results are
	// ordered by distance ascending when a center is known, by name
	// ascending otherwise.
	Search(ctx context.Context, query *DirectoryQuery) ([]*StudioResult, error)

	// GetStudio retrieves one studio, with distance annotations relative to
	// center when provided.
	GetStudio(ctx context.Context, id string, center *entity.GeoPoint) (*StudioResult, error)
}
