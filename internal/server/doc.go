// Package server runs the friend-library HTTP server.
//
// It owns the server lifecycle: listening, signal handling and graceful
// shutdown.
package server
