// Package model contains the document-store representations of the domain
// entities, kept separate so firestore tags never leak into the domain layer.
package model

import (
	"time"

	"passfit/internal/domain/entity"
)

// GeoPointModel mirrors the embedded coordinate map on location-bearing
// documents.
type GeoPointModel struct {
	Latitude  float64 `firestore:"lat"`
	Longitude float64 `firestore:"lng"`
}

// OpeningHourModel mirrors one entry of a studio's weekly opening hours.
type OpeningHourModel struct {
	Weekday int    `firestore:"weekday"`
	Opens   string `firestore:"opens"`
	Closes  string `firestore:"closes"`
}

// StudioModel mirrors documents in the 'studios' collection. The directory
// service owns the collection; this model is read-only here.
type StudioModel struct {
	Name          string             `firestore:"name"`
	Address       string             `firestore:"address"`
	Location      *GeoPointModel     `firestore:"location"`
	Amenities     []string           `firestore:"amenities"`
	AverageRating float64            `firestore:"averageRating"`
	RatingCount   int                `firestore:"ratingCount"`
	OpeningHours  []OpeningHourModel `firestore:"openingHours"`
	IsActive      bool               `firestore:"isActive"`
	CreatedAt     time.Time          `firestore:"createdAt"`
	UpdatedAt     time.Time          `firestore:"updatedAt"`
}

// ToStudioDomain converts a studio document to the domain entity.
func ToStudioDomain(id string, m *StudioModel) *entity.Studio {
	studio := &entity.Studio{
		ID:            id,
		Name:          m.Name,
		Address:       m.Address,
		Amenities:     m.Amenities,
		AverageRating: m.AverageRating,
		RatingCount:   m.RatingCount,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Location != nil {
		studio.Location = &entity.GeoPoint{
			Latitude:  m.Location.Latitude,
			Longitude: m.Location.Longitude,
		}
	}
	for _, h := range m.OpeningHours {
		studio.OpeningHours = append(studio.OpeningHours, entity.OpeningHour{
			Weekday: time.Weekday(h.Weekday),
			Opens:   h.Opens,
			Closes:  h.Closes,
		})
	}

	return studio
}
