// Package delivery defines the contract shared by every inbound server.
package delivery

import "context"

// Delivery is a server that runs until ctx is cancelled or it fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
