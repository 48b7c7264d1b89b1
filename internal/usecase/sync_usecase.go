package usecase

import "context"

// SyncUsecase bridges the document store's push channel into the client
// cache. Each (consumer, cache key) pair holds at most one live watch:
// re-subscribing tears the previous watch down first.
type SyncUsecase interface {
	// SyncDocument starts pushing the document at path into the cache under
	// cacheKey on behalf of consumerID. Pushes for one key apply in emit
	// order; a push reporting a missing document resolves the entry to the
	// deleted sentinel.
	SyncDocument(ctx context.Context, consumerID, path, cacheKey string) error

	// StopSync tears down the consumer's watch for cacheKey. It is
	// synchronous: after it returns no further pushes for that watch reach
	// the cache.
	StopSync(consumerID, cacheKey string)

	// StopConsumer tears down all of the consumer's watches.
	StopConsumer(consumerID string)

	// Close tears down every watch.
	Close()
}
