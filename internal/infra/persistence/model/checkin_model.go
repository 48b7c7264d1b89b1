package model

import (
	"time"

	"passfit/internal/domain/entity"
)

// CheckInModel mirrors documents in the 'checkins' collection. Documents are
// append-only and never updated after creation.
type CheckInModel struct {
	UserID      string    `firestore:"userId"`
	StudioID    string    `firestore:"studioId"`
	CheckinTime time.Time `firestore:"checkinTime"`
}

// ToCheckInDomain converts a check-in document to the domain entity.
func ToCheckInDomain(id string, m *CheckInModel) *entity.CheckIn {
	return &entity.CheckIn{
		ID:          id,
		UserID:      m.UserID,
		StudioID:    m.StudioID,
		CheckinTime: m.CheckinTime,
	}
}

// FromCheckInDomain converts a domain check-in to its document form.
func FromCheckInDomain(checkIn *entity.CheckIn) *CheckInModel {
	return &CheckInModel{
		UserID:      checkIn.UserID,
		StudioID:    checkIn.StudioID,
		CheckinTime: checkIn.CheckinTime,
	}
}
