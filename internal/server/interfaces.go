package server

import "context"

// Server defines the lifecycle contract of a transport server.
type Server interface {
	// Run serves requests until ctx is cancelled, then shuts down
	// gracefully. It returns the first serving or shutdown error.
	Run(ctx context.Context) error
}
