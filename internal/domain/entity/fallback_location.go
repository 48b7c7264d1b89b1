package entity

// FallbackLocation is a predefined place the user can pick when live
// positioning is denied or unavailable. The list is a small static table;
// at this scale a directory-of-places service would be overkill.
type FallbackLocation struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	Coordinates GeoPoint `json:"coordinates"`
}

// FallbackLocations is the static lookup table of selectable fallback places.
var FallbackLocations = []FallbackLocation{
	{ID: "damascus", Name: "Damascus", Country: "SY", Coordinates: GeoPoint{Latitude: 33.5138, Longitude: 36.2765}},
	{ID: "aleppo", Name: "Aleppo", Country: "SY", Coordinates: GeoPoint{Latitude: 36.2021, Longitude: 37.1343}},
	{ID: "homs", Name: "Homs", Country: "SY", Coordinates: GeoPoint{Latitude: 34.7324, Longitude: 36.7137}},
	{ID: "latakia", Name: "Latakia", Country: "SY", Coordinates: GeoPoint{Latitude: 35.5307, Longitude: 35.7915}},
	{ID: "berlin", Name: "Berlin", Country: "DE", Coordinates: GeoPoint{Latitude: 52.5200, Longitude: 13.4050}},
	{ID: "hamburg", Name: "Hamburg", Country: "DE", Coordinates: GeoPoint{Latitude: 53.5511, Longitude: 9.9937}},
	{ID: "munich", Name: "Munich", Country: "DE", Coordinates: GeoPoint{Latitude: 48.1351, Longitude: 11.5820}},
}

// FallbackLocationByID looks up a fallback location in the static table.
func FallbackLocationByID(id string) (FallbackLocation, bool) {
	for _, loc := range FallbackLocations {
		if loc.ID == id {
			return loc, true
		}
	}

	return FallbackLocation{}, false
}
