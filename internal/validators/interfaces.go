// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request models before they reach storage.
//
// Services receive a [Validator] through their constructor; the only
// implementation, [LibraryValidator], is driven by `validate` struct tags on
// the models package types. Failures are reported as [ErrInvalidInput] wrapped
// with a per-field message.
package validators

import "context"

// Validator validates a request model. When fields are passed only those
// struct fields are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
