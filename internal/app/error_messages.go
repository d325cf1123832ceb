// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains user-facing message strings shared by the
// friend-library CLI commands.
//
// Keeping them in one place keeps the wording consistent across commands.
package app

const (
	// MsgNotLoggedIn is shown when a command needs a session and none is
	// stored locally.
	MsgNotLoggedIn = "not logged in: run `login` or `register` first"

	// MsgSessionExpired is shown when the server rejects the stored session.
	MsgSessionExpired = "session is expired or invalid: run `login` again"

	// MsgInvalidCredentials is shown when login fails. The server does not
	// say which of the two fields was wrong.
	MsgInvalidCredentials = "invalid email or password"

	// MsgEmailTaken is shown when registering an email that already exists.
	MsgEmailTaken = "this email is already registered"

	// MsgServerUnavailable is shown when the server cannot be reached.
	MsgServerUnavailable = "library server is unavailable"

	// MsgLoggedOut confirms that the local session was removed.
	MsgLoggedOut = "logged out"

	// MsgNoItems is printed by `items list` for an empty catalog.
	MsgNoItems = "no items yet"
)
