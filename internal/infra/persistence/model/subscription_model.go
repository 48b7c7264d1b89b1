package model

import (
	"time"

	"passfit/internal/domain/entity"
)

// SubscriptionModel mirrors documents in the 'subscriptions' collection.
type SubscriptionModel struct {
	UserID    string    `firestore:"userId"`
	PlanID    string    `firestore:"planId"`
	StartedAt time.Time `firestore:"startedAt"`
	ExpiresAt time.Time `firestore:"expiresAt"`
	Status    string    `firestore:"status"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

// ToSubscriptionDomain converts a subscription document to the domain entity.
func ToSubscriptionDomain(id string, m *SubscriptionModel) *entity.Subscription {
	return &entity.Subscription{
		ID:        id,
		UserID:    m.UserID,
		PlanID:    m.PlanID,
		StartedAt: m.StartedAt,
		ExpiresAt: m.ExpiresAt,
		Status:    entity.SubscriptionStatus(m.Status),
		UpdatedAt: m.UpdatedAt,
	}
}

// FromSubscriptionDomain converts a domain subscription to its document form.
func FromSubscriptionDomain(subscription *entity.Subscription) *SubscriptionModel {
	return &SubscriptionModel{
		UserID:    subscription.UserID,
		PlanID:    subscription.PlanID,
		StartedAt: subscription.StartedAt,
		ExpiresAt: subscription.ExpiresAt,
		Status:    string(subscription.Status),
		UpdatedAt: subscription.UpdatedAt,
	}
}
