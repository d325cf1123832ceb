package validators

import "errors"

var (
	// ErrUnsupportedType is returned for values the validator has no rules for.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrInvalidInput wraps every rule violation. The message names the
	// offending fields.
	ErrInvalidInput = errors.New("invalid input")
)
