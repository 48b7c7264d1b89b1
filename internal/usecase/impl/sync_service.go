package impl

import (
	"context"
	"log/slog"
	"sync"

	"passfit/internal/domain/service"
	"passfit/internal/infra/cache"
	"passfit/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type syncService struct {
	watcher    service.DocumentWatcher
	cacheStore *cache.Store
	logger     *slog.Logger

	mu      sync.Mutex
	watches map[string]service.CancelFunc // keyed by consumerID + "\x00" + cacheKey
}

// SyncServiceParams holds dependencies for SyncService, injected by Fx.
type SyncServiceParams struct {
	fx.In

	Watcher    service.DocumentWatcher
	CacheStore *cache.Store
	Logger     *slog.Logger
}

// NewSyncService creates a new realtime sync service instance
func NewSyncService(params SyncServiceParams) usecase.SyncUsecase {
	return &syncService{
		watcher:    params.Watcher,
		cacheStore: params.CacheStore,
		logger:     params.Logger,
		watches:    make(map[string]service.CancelFunc),
	}
}

// SyncDocument starts pushing the document at path into the cache under
// cacheKey. An existing watch for the same consumer and key is torn down
// first so each pair holds at most one live watch.
func (s *syncService) SyncDocument(ctx context.Context, consumerID, path, cacheKey string) error {
	// The watch outlives the request that registered it; its lifetime is
	// owned by StopSync, StopConsumer and Close, not by the caller's
	// context.
	watchCtx := context.WithoutCancel(ctx)

	cancel, err := s.watcher.WatchDocument(watchCtx, path,
		func(change service.DocumentChange) {
			if !change.Exists {
				s.cacheStore.SetDeleted(cacheKey)

				return
			}
			s.cacheStore.Set(cacheKey, change.Data)
		},
		func(err error) {
			s.logger.Error("document watch failed",
				slog.String("path", path),
				slog.String("cache_key", cacheKey),
				slog.Any("error", err),
			)
		},
	)
	if err != nil {
		return errors.Wrapf(err, "failed to watch document %s", path)
	}

	key := watchKey(consumerID, cacheKey)

	s.mu.Lock()
	previous := s.watches[key]
	s.watches[key] = cancel
	s.mu.Unlock()

	if previous != nil {
		previous()
	}

	return nil
}

// StopSync tears down the consumer's watch for cacheKey.
func (s *syncService) StopSync(consumerID, cacheKey string) {
	key := watchKey(consumerID, cacheKey)

	s.mu.Lock()
	cancel := s.watches[key]
	delete(s.watches, key)
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// StopConsumer tears down all of the consumer's watches.
func (s *syncService) StopConsumer(consumerID string) {
	prefix := consumerID + "\x00"

	s.mu.Lock()
	var cancels []service.CancelFunc
	for key, cancel := range s.watches {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			cancels = append(cancels, cancel)
			delete(s.watches, key)
		}
	}
	s.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}

// Close tears down every watch.
func (s *syncService) Close() {
	s.mu.Lock()
	cancels := make([]service.CancelFunc, 0, len(s.watches))
	for key, cancel := range s.watches {
		cancels = append(cancels, cancel)
		delete(s.watches, key)
	}
	s.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}

// watchKey joins consumer and cache key with a separator neither can contain.
func watchKey(consumerID, cacheKey string) string {
	return consumerID + "\x00" + cacheKey
}
