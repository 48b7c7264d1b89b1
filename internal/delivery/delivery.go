// Package delivery defines the contract every transport server fulfills so
// the entrypoints can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport server. Serve blocks until the server
// stops; graceful shutdown is handled through lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
