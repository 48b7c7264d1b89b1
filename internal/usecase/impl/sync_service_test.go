package impl

import (
	"context"
	"testing"

	"passfit/internal/domain/service"
	"passfit/internal/infra/cache"
	mockSvc "passfit/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// capturedWatch lets a test drive the push channel by hand.
type capturedWatch struct {
	ctx      context.Context
	onChange func(service.DocumentChange)
	canceled bool
}

func expectWatch(watcher *mockSvc.MockDocumentWatcher, path string) *capturedWatch {
	watch := &capturedWatch{}
	watcher.EXPECT().
		WatchDocument(mock.Anything, path, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, onChange func(service.DocumentChange), _ func(error)) (service.CancelFunc, error) {
			watch.ctx = ctx
			watch.onChange = onChange

			return func() { watch.canceled = true }, nil
		})

	return watch
}

func TestSyncService_PushesApplyToCache(t *testing.T) {
	watcher := mockSvc.NewMockDocumentWatcher(t)
	store := cache.NewStore()
	sync := NewSyncService(SyncServiceParams{
		Watcher:    watcher,
		CacheStore: store,
		Logger:     discardLogger(),
	})

	watch := expectWatch(watcher, "users/user-1")

	err := sync.SyncDocument(context.Background(), "consumer-a", "users/user-1", "user:user-1")
	require.NoError(t, err)

	watch.onChange(service.DocumentChange{Exists: true, Data: map[string]any{"email": "a@b.c"}})
	watch.onChange(service.DocumentChange{Exists: true, Data: map[string]any{"email": "x@y.z"}})

	entry, ok := store.Get("user:user-1")
	require.True(t, ok)

	// Whole-value replace: the last push wins, nothing is merged.
	data, ok := entry.Value.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "x@y.z", data["email"])
	assert.Equal(t, uint64(2), entry.Version)
}

func TestSyncService_MissingDocumentResolvesToDeletedSentinel(t *testing.T) {
	watcher := mockSvc.NewMockDocumentWatcher(t)
	store := cache.NewStore()
	sync := NewSyncService(SyncServiceParams{
		Watcher:    watcher,
		CacheStore: store,
		Logger:     discardLogger(),
	})

	watch := expectWatch(watcher, "users/user-1")
	require.NoError(t, sync.SyncDocument(context.Background(), "consumer-a", "users/user-1", "user:user-1"))

	watch.onChange(service.DocumentChange{Exists: false})

	entry, ok := store.Get("user:user-1")
	require.True(t, ok)
	assert.IsType(t, cache.Deleted{}, entry.Value)
}

func TestSyncService_WatchOutlivesCallerContext(t *testing.T) {
	watcher := mockSvc.NewMockDocumentWatcher(t)
	store := cache.NewStore()
	sync := NewSyncService(SyncServiceParams{
		Watcher:    watcher,
		CacheStore: store,
		Logger:     discardLogger(),
	})

	watch := expectWatch(watcher, "users/user-1")

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, sync.SyncDocument(ctx, "consumer-a", "users/user-1", "user:user-1"))

	// Cancelling the registering caller must not tear the watch down; only
	// StopSync, StopConsumer and Close do that.
	cancel()
	require.NoError(t, watch.ctx.Err())
	assert.False(t, watch.canceled)

	watch.onChange(service.DocumentChange{Exists: true, Data: map[string]any{"email": "a@b.c"}})

	entry, ok := store.Get("user:user-1")
	require.True(t, ok)
	data, ok := entry.Value.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a@b.c", data["email"])
}

func TestSyncService_ResubscribeTearsDownPreviousWatch(t *testing.T) {
	watcher := mockSvc.NewMockDocumentWatcher(t)
	store := cache.NewStore()
	sync := NewSyncService(SyncServiceParams{
		Watcher:    watcher,
		CacheStore: store,
		Logger:     discardLogger(),
	})

	first := &capturedWatch{}
	second := &capturedWatch{}
	calls := 0
	watcher.EXPECT().
		WatchDocument(mock.Anything, "users/user-1", mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, onChange func(service.DocumentChange), _ func(error)) (service.CancelFunc, error) {
			calls++
			watch := first
			if calls == 2 {
				watch = second
			}
			watch.onChange = onChange

			return func() { watch.canceled = true }, nil
		}).
		Twice()

	require.NoError(t, sync.SyncDocument(context.Background(), "consumer-a", "users/user-1", "user:user-1"))
	require.NoError(t, sync.SyncDocument(context.Background(), "consumer-a", "users/user-1", "user:user-1"))

	assert.True(t, first.canceled)
	assert.False(t, second.canceled)
}

func TestSyncService_StopSync(t *testing.T) {
	watcher := mockSvc.NewMockDocumentWatcher(t)
	store := cache.NewStore()
	sync := NewSyncService(SyncServiceParams{
		Watcher:    watcher,
		CacheStore: store,
		Logger:     discardLogger(),
	})

	watch := expectWatch(watcher, "users/user-1")
	require.NoError(t, sync.SyncDocument(context.Background(), "consumer-a", "users/user-1", "user:user-1"))

	sync.StopSync("consumer-a", "user:user-1")
	assert.True(t, watch.canceled)

	// Stopping an unknown watch is a no-op.
	sync.StopSync("consumer-a", "user:user-1")
}

func TestSyncService_StopConsumer_OnlyAffectsThatConsumer(t *testing.T) {
	watcher := mockSvc.NewMockDocumentWatcher(t)
	store := cache.NewStore()
	sync := NewSyncService(SyncServiceParams{
		Watcher:    watcher,
		CacheStore: store,
		Logger:     discardLogger(),
	})

	watchA := expectWatch(watcher, "users/user-1")
	watchB := expectWatch(watcher, "users/user-2")

	require.NoError(t, sync.SyncDocument(context.Background(), "consumer-a", "users/user-1", "user:user-1"))
	require.NoError(t, sync.SyncDocument(context.Background(), "consumer-b", "users/user-2", "user:user-2"))

	sync.StopConsumer("consumer-a")
	assert.True(t, watchA.canceled)
	assert.False(t, watchB.canceled)
}

func TestSyncService_Close(t *testing.T) {
	watcher := mockSvc.NewMockDocumentWatcher(t)
	store := cache.NewStore()
	sync := NewSyncService(SyncServiceParams{
		Watcher:    watcher,
		CacheStore: store,
		Logger:     discardLogger(),
	})

	watchA := expectWatch(watcher, "users/user-1")
	watchB := expectWatch(watcher, "users/user-2")

	require.NoError(t, sync.SyncDocument(context.Background(), "consumer-a", "users/user-1", "user:user-1"))
	require.NoError(t, sync.SyncDocument(context.Background(), "consumer-a", "users/user-2", "user:user-2"))

	sync.Close()
	assert.True(t, watchA.canceled)
	assert.True(t, watchB.canceled)
}
