// Package delivery defines the contract every transport adapter satisfies.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, ...) started by
// the application entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
