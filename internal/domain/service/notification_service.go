package service

import "context"

// NotificationService defines the interface for push notification delivery.
type NotificationService interface {
	// SendSingleNotification sends a push notification to a single device token.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error

	// SendBatchNotification sends push notifications to multiple device tokens
	// (max 500 tokens). Returns counts and the tokens the provider reported
	// as invalid or unregistered so the caller can prune them.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
