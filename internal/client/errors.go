package client

import (
	"errors"

	"github.com/Tristano1/friend-library-system/internal/app"
)

var (
	// ErrNoSavedToken is returned by TokenStore.Load when no session is saved.
	ErrNoSavedToken = errors.New("no saved session token")

	// ErrNotLoggedIn is returned by commands that need a session when none
	// is available.
	ErrNotLoggedIn = errors.New(app.MsgNotLoggedIn)
)
