package cache

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetAndGet(t *testing.T) {
	store := NewStore()

	store.Set("user:1", "active")

	entry, ok := store.Get("user:1")
	require.True(t, ok)
	assert.Equal(t, "active", entry.Value)
	assert.Equal(t, uint64(1), entry.Version)
}

func TestStore_SetOverwritesWholesale(t *testing.T) {
	store := NewStore()

	store.Set("user:1", map[string]any{"status": "free", "name": "a"})
	store.Set("user:1", map[string]any{"status": "active"})

	entry, ok := store.Get("user:1")
	require.True(t, ok)
	// No merge: the second write replaces the whole value.
	assert.Equal(t, map[string]any{"status": "active"}, entry.Value)
	assert.Equal(t, uint64(2), entry.Version)
}

func TestStore_SetDeletedResolvesToSentinel(t *testing.T) {
	store := NewStore()

	store.Set("user:1", "active")
	store.SetDeleted("user:1")

	entry, ok := store.Get("user:1")
	require.True(t, ok)
	assert.IsType(t, Deleted{}, entry.Value)
}

func TestStore_SubscribeObservesWritesInOrder(t *testing.T) {
	store := NewStore()

	var seen []any
	cancel := store.Subscribe("user:1", func(e Entry) {
		seen = append(seen, e.Value)
	})
	defer cancel()

	store.Set("user:1", "pending")
	store.Set("user:1", "active")
	store.Set("user:2", "ignored") // different key

	assert.Equal(t, []any{"pending", "active"}, seen)
}

func TestStore_CancelStopsDelivery(t *testing.T) {
	store := NewStore()

	var seen int
	cancel := store.Subscribe("user:1", func(Entry) {
		seen++
	})

	store.Set("user:1", "first")
	cancel()

	// A push arriving after cancel must be discarded, not applied.
	store.Set("user:1", "late")

	assert.Equal(t, 1, seen)
}

func TestStore_CancelWaitsOutInFlightDelivery(t *testing.T) {
	store := NewStore()

	entered := make(chan struct{})
	release := make(chan struct{})
	var delivered atomic.Int32
	cancel := store.Subscribe("user:1", func(Entry) {
		delivered.Add(1)
		close(entered)
		<-release
	})

	go store.Set("user:1", "first")
	<-entered

	canceled := make(chan struct{})
	go func() {
		cancel()
		close(canceled)
	}()

	// Cancel must block while the delivery is still running.
	select {
	case <-canceled:
		t.Fatal("cancel returned while a delivery was in flight")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	<-canceled

	// After cancel has returned, further writes never reach the listener.
	store.Set("user:1", "late")
	assert.Equal(t, int32(1), delivered.Load())
}

func TestStore_InvalidateDropsWithoutNotifying(t *testing.T) {
	store := NewStore()

	var seen int
	cancel := store.Subscribe("user:1", func(Entry) {
		seen++
	})
	defer cancel()

	store.Set("user:1", "active")
	store.Invalidate("user:1", "user:1:subscriptionStatus")

	_, ok := store.Get("user:1")
	assert.False(t, ok)
	assert.Equal(t, 1, seen)
}

func TestStore_VersionsAreMonotonicAcrossInvalidate(t *testing.T) {
	store := NewStore()

	store.Set("user:1", "a")
	store.Invalidate("user:1")
	entry := store.Set("user:1", "b")

	// Invalidate drops the entry, so versioning restarts; a fresh write is
	// still observable as a new entry.
	assert.Equal(t, uint64(1), entry.Version)
	assert.Equal(t, "b", entry.Value)
}
