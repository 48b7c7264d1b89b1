package service

import "context"

// DocumentChange is one push event from the document store's live channel.
// Exists=false means the document no longer exists; the consumer must resolve
// that to a defined sentinel, never to an indeterminate value.
type DocumentChange struct {
	Exists bool
	Data   map[string]any
}

// CancelFunc tears down a watch. It is synchronous: after it returns no
// further callbacks are delivered for that watch.
type CancelFunc func()

// DocumentWatcher exposes the document store's push channel. Within one watch
// the store's emit order is preserved; across watches there is no ordering
// guarantee.
type DocumentWatcher interface {
	// WatchDocument subscribes to pushes for a single document path such as
	// "users/<id>". onError receives terminal stream failures.
	WatchDocument(ctx context.Context, path string, onChange func(DocumentChange), onError func(error)) (CancelFunc, error)
}
