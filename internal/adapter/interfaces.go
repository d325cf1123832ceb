// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for talking to the
// friend-library server.
//
// The primary abstraction is [LibraryAdapter], which keeps the CLI commands
// unaware of the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPLibraryAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/Tristano1/friend-library-system/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/library_adapter_mock.go -package=mock

// LibraryAdapter defines communication with the friend-library server.
// Implementations handle serialisation, the session header and mapping of
// transport errors to the sentinel values of this package.
type LibraryAdapter interface {
	// SetToken stores the session token attached to every authenticated
	// request.
	SetToken(token string)

	// Token returns the stored session token, or "" when none is set.
	Token() string

	// Register creates an account and stores the returned session token.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates and stores the returned session token.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Me returns the user bound to the stored session.
	Me(ctx context.Context) (models.User, error)

	// SetDefaultLoanLength changes the default loan length of the current user.
	SetDefaultLoanLength(ctx context.Context, days int) (models.User, error)

	// AddItem adds an item owned by the current user.
	AddItem(ctx context.Context, item models.NewItem) (models.Item, error)

	// ListItems returns the items of the current user.
	ListItems(ctx context.Context) ([]models.Item, error)
}
