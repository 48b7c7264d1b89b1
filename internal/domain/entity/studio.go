package entity

import "time"

// Studio represents a gym or fitness studio listed in the directory.
// The directory service owns these documents; the core reads them only.
type Studio struct {
	ID            string        // Document ID in the studio catalog.
	Name          string        // Display name of the studio.
	Address       string        // Human-readable street address.
	Location      *GeoPoint     // Coordinates; may be nil for studios without a verified pin.
	Amenities     []string      // Offered amenities, e.g. "sauna", "pool".
	AverageRating float64       // Mean member rating, 0 when unrated.
	RatingCount   int           // Number of ratings backing AverageRating.
	OpeningHours  []OpeningHour // Weekly opening hours.
	IsActive      bool          // Inactive studios are hidden from the directory.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OpeningHour describes the opening window for one weekday.
type OpeningHour struct {
	Weekday time.Weekday `json:"weekday"`
	Opens   string       `json:"opens"`  // "06:00", 24h clock, studio-local.
	Closes  string       `json:"closes"` // "22:00"
}

// IsOpenAt reports whether the studio is open at the given local time.
// Studios without opening hours are treated as always open.
func (s *Studio) IsOpenAt(t time.Time) bool {
	if len(s.OpeningHours) == 0 {
		return true
	}

	clock := t.Format("15:04")
	for _, h := range s.OpeningHours {
		if h.Weekday != t.Weekday() {
			continue
		}
		if h.Opens <= clock && clock < h.Closes {
			return true
		}
	}

	return false
}

// HasAmenities reports whether the studio offers every requested amenity.
func (s *Studio) HasAmenities(required []string) bool {
	for _, want := range required {
		found := false
		for _, have := range s.Amenities {
			if have == want {
				found = true

				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
