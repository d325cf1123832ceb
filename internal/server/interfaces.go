package server

import "context"

// Server defines the lifecycle contract of the transport server.
type Server interface {
	// RunServer serves requests and blocks until SIGINT, SIGTERM or SIGQUIT
	// is received, then shuts down gracefully.
	RunServer()

	// Run serves requests until ctx is done or the listener fails.
	// A graceful shutdown is not an error.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
