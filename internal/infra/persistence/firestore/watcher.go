package firestore

import (
	"context"
	"log/slog"
	"sync/atomic"

	"passfit/internal/domain/service"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// documentWatcher implements service.DocumentWatcher on top of Firestore
// snapshot listeners. Snapshot order within one listener is the store's emit
// order, which gives the per-key ordering guarantee the cache sync relies on.
type documentWatcher struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewDocumentWatcher is the constructor for documentWatcher.
func NewDocumentWatcher(client *firestore.Client, logger *slog.Logger) service.DocumentWatcher {
	return &documentWatcher{
		client: client,
		logger: logger,
	}
}

// WatchDocument subscribes to pushes for a single document path.
func (w *documentWatcher) WatchDocument(ctx context.Context, path string, onChange func(service.DocumentChange), onError func(error)) (service.CancelFunc, error) {
	if path == "" {
		return nil, errors.New("document path is required")
	}

	watchCtx, stop := context.WithCancel(ctx)
	snapshots := w.client.Doc(path).Snapshots(watchCtx)

	// canceled is flipped before the iterator is stopped so that a snapshot
	// already pulled off the wire is discarded, not delivered.
	var canceled atomic.Bool

	go func() {
		defer snapshots.Stop()
		for {
			snap, err := snapshots.Next()
			if canceled.Load() {
				return
			}
			if err != nil {
				if status.Code(err) == codes.Canceled || errors.Is(err, context.Canceled) {
					return
				}
				w.logger.Warn("Document watch stream failed",
					slog.String("path", path),
					slog.Any("error", err),
				)
				onError(errors.Wrap(err, "document watch stream failed"))

				return
			}

			change := service.DocumentChange{Exists: snap.Exists()}
			if snap.Exists() {
				change.Data = snap.Data()
			}
			onChange(change)
		}
	}()

	cancel := func() {
		canceled.Store(true)
		stop()
	}

	return cancel, nil
}
