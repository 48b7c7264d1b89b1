package entity

import "time"

// CheckIn is one visit of a user to a studio. Records are append-only: they
// are created exactly once and never updated or deleted by the normal flow.
type CheckIn struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	StudioID    string    `json:"studio_id"`
	CheckinTime time.Time `json:"checkin_time"`
}

// CheckInStats aggregates a user's recent check-in history. The numbers are
// derived from a bounded recent window, not the full ledger.
type CheckInStats struct {
	Total           int    `json:"total"`
	ThisMonth       int    `json:"this_month"`
	ThisWeek        int    `json:"this_week"`
	DistinctStudios int    `json:"distinct_studios"`
	MostVisitedID   string `json:"most_visited_studio_id"`
}
