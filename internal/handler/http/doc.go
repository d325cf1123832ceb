// Package http implements the REST transport of the friend-library server.
//
// It wires the chi router, request handlers and middleware. Session
// resolution, request tracing, access logging and request metrics are
// handled in this package before requests reach the identity and catalog
// services.
package http
