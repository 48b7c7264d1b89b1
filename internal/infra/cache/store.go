// Package cache provides the process-wide keyed client cache. It is the only
// shared mutable state in the core: realtime sync writes pushed document
// states into it, the mutation layer writes through optimistically, and every
// reader observes the same value without re-querying the store.
package cache

import (
	"sync"
)

// Entry is one cached value. Values are replaced wholesale on every write;
// there is no field-level merge. Version increases by one per overwrite of
// the same key.
type Entry struct {
	Key     string
	Value   any
	Version uint64
}

// Deleted is the sentinel stored when a push reports that the backing
// document no longer exists. Readers get a defined "gone" value rather than
// an absent one, so dependent state never renders indeterminate.
type Deleted struct{}

// Listener observes overwrites of a single key.
type Listener func(Entry)

// registration wraps a listener with its cancellation barrier. Delivery and
// cancellation serialize on the registration's own mutex, so cancel waits out
// an in-flight delivery and no delivery can start after it returns.
type registration struct {
	fn Listener

	mu       sync.Mutex
	canceled bool
}

func (r *registration) notify(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.canceled {
		return
	}
	r.fn(entry)
}

func (r *registration) cancel() {
	r.mu.Lock()
	r.canceled = true
	r.mu.Unlock()
}

// Store is a keyed last-write-wins store. Last write wins by arrival order
// and whole-value replacement is the concurrency discipline; no locking is
// exposed to callers and no merge is ever performed.
type Store struct {
	mu        sync.Mutex
	entries   map[string]Entry
	listeners map[string]map[int]*registration
	nextID    int
}

// NewStore creates an empty cache store.
func NewStore() *Store {
	return &Store{
		entries:   make(map[string]Entry),
		listeners: make(map[string]map[int]*registration),
	}
}

// Get returns the current entry for key.
func (s *Store) Get(key string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]

	return entry, ok
}

// Set overwrites the entry for key wholesale and notifies key listeners.
func (s *Store) Set(key string, value any) Entry {
	s.mu.Lock()
	entry := Entry{
		Key:     key,
		Value:   value,
		Version: s.entries[key].Version + 1,
	}
	s.entries[key] = entry
	observers := s.listenersFor(key)
	s.mu.Unlock()

	for _, reg := range observers {
		reg.notify(entry)
	}

	return entry
}

// SetDeleted resolves the entry to the deleted sentinel. Used when a push
// reports the backing document is gone.
func (s *Store) SetDeleted(key string) Entry {
	return s.Set(key, Deleted{})
}

// Invalidate drops the entries for the given keys without notifying
// listeners. The next read misses and re-derives from the store of record.
func (s *Store) Invalidate(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.entries, key)
	}
}

// Subscribe registers a listener for overwrites of key and returns a cancel
// function. Cancel is synchronous: it waits out an in-flight delivery, and
// once it returns the listener will not be invoked again. A listener must
// not cancel its own subscription from inside the callback.
func (s *Store) Subscribe(key string, fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	reg := &registration{fn: fn}
	if s.listeners[key] == nil {
		s.listeners[key] = make(map[int]*registration)
	}
	s.listeners[key][id] = reg

	return func() {
		reg.cancel()

		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.listeners[key], id)
		if len(s.listeners[key]) == 0 {
			delete(s.listeners, key)
		}
	}
}

// listenersFor snapshots the listener set for key. Callers must hold s.mu.
func (s *Store) listenersFor(key string) []*registration {
	observers := make([]*registration, 0, len(s.listeners[key]))
	for _, reg := range s.listeners[key] {
		observers = append(observers, reg)
	}

	return observers
}
