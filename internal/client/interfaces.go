// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of the command line client.
type Client interface {
	// Run executes the command named by the process arguments.
	Run() error

	// Execute runs the command tree with args under ctx.
	Execute(ctx context.Context, args []string) error
}
