// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// GeoPoint is a geographic coordinate pair in degrees.
type GeoPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Position is the resolved geographic position of a client. It is ephemeral
// state: produced by the locator, held in memory, never persisted.
type Position struct {
	Point      GeoPoint  `json:"point"`
	ReportedAt time.Time `json:"reported_at"` // When the device reported these coordinates.
	Accuracy   float64   `json:"accuracy"`    // Horizontal accuracy in meters, 0 if unknown.
}

// DevicePosition is the last coordinate fix a device reported for a user.
// Unlike Position it is persisted so the resolver can answer without a live
// device round trip.
type DevicePosition struct {
	UserID     string    `json:"user_id"`
	Point      GeoPoint  `json:"point"`
	Accuracy   float64   `json:"accuracy"`
	ReportedAt time.Time `json:"reported_at"`
	// Denied is set when the device reported that the user refused to share
	// location instead of reporting a fix.
	Denied bool `json:"denied"`
}
