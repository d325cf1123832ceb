// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the friend-library command line client.
//
// It wires the cobra command tree to a [adapter.LibraryAdapter] and keeps
// the session token in a local file between invocations.
package client
