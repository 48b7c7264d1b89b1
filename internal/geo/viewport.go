package geo

import (
	"passfit/internal/domain/entity"

	"github.com/paulmach/orb"
)

// Bound builds an orb viewport bound from the map window edges. orb points
// are {lng, lat}.
func Bound(latMin, latMax, lngMin, lngMax float64) orb.Bound {
	return orb.Bound{
		Min: orb.Point{lngMin, latMin},
		Max: orb.Point{lngMax, latMax},
	}
}

// FilterByViewport restricts studios to the rectangular lat/lng window,
// inclusive of the edges. A nil bound means the map has not reported a region
// yet, and the filter is the identity: studios must never be hidden before a
// viewport exists. Studios without coordinates are excluded once a bound is
// present.
//
// Longitude wraparound at the antimeridian is not handled; a viewport
// spanning the ±180° seam filters as two disjoint windows would.
func FilterByViewport(studios []*entity.Studio, bound *orb.Bound) []*entity.Studio {
	if bound == nil {
		return studios
	}

	filtered := make([]*entity.Studio, 0, len(studios))
	for _, studio := range studios {
		if studio.Location == nil {
			continue
		}
		point := orb.Point{studio.Location.Longitude, studio.Location.Latitude}
		if bound.Contains(point) {
			filtered = append(filtered, studio)
		}
	}

	return filtered
}
