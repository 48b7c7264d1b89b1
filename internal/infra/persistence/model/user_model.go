package model

import (
	"time"

	"passfit/internal/domain/entity"
)

// UserModel mirrors documents in the 'users' collection. Document IDs are the
// auth provider's stable user IDs. The subscriptionStatus field is written
// only by the status projector.
type UserModel struct {
	Email              string    `firestore:"email"`
	DisplayName        string    `firestore:"displayName"`
	SubscriptionStatus string    `firestore:"subscriptionStatus"`
	FCMTokens          []string  `firestore:"fcmTokens"`
	CreatedAt          time.Time `firestore:"createdAt"`
	UpdatedAt          time.Time `firestore:"updatedAt"`
}

// ToUserDomain converts a user document to the domain entity. A missing
// subscriptionStatus defaults to "free" on read.
func ToUserDomain(id string, m *UserModel) *entity.User {
	status := entity.UserSubscriptionStatus(m.SubscriptionStatus)
	if status == "" {
		status = entity.UserSubscriptionFree
	}

	return &entity.User{
		ID:                 id,
		Email:              m.Email,
		DisplayName:        m.DisplayName,
		SubscriptionStatus: status,
		FCMTokens:          m.FCMTokens,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// FromUserDomain converts a domain user to its document form.
func FromUserDomain(user *entity.User) *UserModel {
	return &UserModel{
		Email:              user.Email,
		DisplayName:        user.DisplayName,
		SubscriptionStatus: string(user.EffectiveSubscriptionStatus()),
		FCMTokens:          user.FCMTokens,
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}
}

// DevicePositionModel mirrors documents in the 'positions' collection,
// keyed by user ID.
type DevicePositionModel struct {
	Point      GeoPointModel `firestore:"point"`
	Accuracy   float64       `firestore:"accuracy"`
	ReportedAt time.Time     `firestore:"reportedAt"`
	Denied     bool          `firestore:"denied"`
}

// ToDevicePositionDomain converts a position document to the domain entity.
func ToDevicePositionDomain(userID string, m *DevicePositionModel) *entity.DevicePosition {
	return &entity.DevicePosition{
		UserID:     userID,
		Point:      entity.GeoPoint{Latitude: m.Point.Latitude, Longitude: m.Point.Longitude},
		Accuracy:   m.Accuracy,
		ReportedAt: m.ReportedAt,
		Denied:     m.Denied,
	}
}

// FromDevicePositionDomain converts a domain position to its document form.
func FromDevicePositionDomain(position *entity.DevicePosition) *DevicePositionModel {
	return &DevicePositionModel{
		Point:      GeoPointModel{Latitude: position.Point.Latitude, Longitude: position.Point.Longitude},
		Accuracy:   position.Accuracy,
		ReportedAt: position.ReportedAt,
		Denied:     position.Denied,
	}
}
