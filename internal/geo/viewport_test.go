package geo

import (
	"testing"

	"passfit/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func studioAt(id string, lat, lng float64) *entity.Studio {
	return &entity.Studio{
		ID:       id,
		Name:     "Studio " + id,
		Location: &entity.GeoPoint{Latitude: lat, Longitude: lng},
	}
}

func TestFilterByViewport_NilBoundIsIdentity(t *testing.T) {
	studios := []*entity.Studio{
		studioAt("a", 33.5, 36.3),
		studioAt("b", 52.5, 13.4),
		{ID: "c", Name: "Studio c"}, // no location
	}

	got := FilterByViewport(studios, nil)
	assert.Equal(t, studios, got)
}

func TestFilterByViewport_NilBoundEmptyInput(t *testing.T) {
	assert.Empty(t, FilterByViewport(nil, nil))
}

func TestFilterByViewport_RestrictsToWindow(t *testing.T) {
	studios := []*entity.Studio{
		studioAt("inside", 33.5, 36.3),
		studioAt("north", 40.0, 36.3),
		studioAt("west", 33.5, 30.0),
	}
	bound := Bound(33.0, 34.0, 36.0, 37.0)

	got := FilterByViewport(studios, &bound)
	assert.Len(t, got, 1)
	assert.Equal(t, "inside", got[0].ID)
}

func TestFilterByViewport_EdgesAreInclusive(t *testing.T) {
	studios := []*entity.Studio{
		studioAt("min-corner", 33.0, 36.0),
		studioAt("max-corner", 34.0, 37.0),
	}
	bound := Bound(33.0, 34.0, 36.0, 37.0)

	got := FilterByViewport(studios, &bound)
	assert.Len(t, got, 2)
}

func TestFilterByViewport_ExcludesStudiosWithoutLocation(t *testing.T) {
	studios := []*entity.Studio{
		studioAt("located", 33.5, 36.3),
		{ID: "unlocated", Name: "Studio unlocated"},
	}
	bound := Bound(33.0, 34.0, 36.0, 37.0)

	got := FilterByViewport(studios, &bound)
	assert.Len(t, got, 1)
	assert.Equal(t, "located", got[0].ID)
}
