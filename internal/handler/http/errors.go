// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the auth middleware and the request decoders.
// Callers can match against them with [errors.Is].
var (
	// ErrNoSession is returned when the request carries neither a session
	// cookie nor an "Authorization" header.
	ErrNoSession = errors.New("no session cookie or `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
