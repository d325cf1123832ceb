package service

import "errors"

// Error kinds returned by the identity and catalog services. Store-level
// sentinels never cross the service boundary; they are translated to one of
// these first.
var (
	// ErrValidation reports missing or malformed input. The wrapped error
	// names the offending fields.
	ErrValidation = errors.New("validation error")

	// ErrDuplicateEmail reports a registration for an email that is already
	// taken.
	ErrDuplicateEmail = errors.New("email is already registered")

	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated reports that an operation needs a resolved session
	// and none was given, or that a session token does not resolve.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrReferentialIntegrity reports an item whose owner does not exist.
	ErrReferentialIntegrity = errors.New("referential integrity violation")
)
