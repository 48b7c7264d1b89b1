// Package constants holds shared domain-level constant values.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub provider names.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Cache key prefixes. Every derived key for a user must be invalidated
// together when the projector writes through.
const (
	CacheKeyUserPrefix          = "user:"
	CacheKeySubscriptionsPrefix = "subscriptions:user:"
	CacheKeyCheckInPrefix       = "checkin:"

	// CacheKeyStatusSuffix derives the per-user membership status key from
	// the user key, e.g. "user:<id>:subscriptionStatus".
	CacheKeyStatusSuffix = ":subscriptionStatus"
)
