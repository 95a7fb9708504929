// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a long-running inbound transport.
type Delivery interface {
	// Serve blocks until the transport stops.
	Serve(ctx context.Context) error
}
