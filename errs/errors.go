// Package errs defines sentinel errors shared across httpcompress packages.
//
// All errors are wrapped with context using fmt.Errorf("%w: ...", ...) at the
// call site, so callers can match them with errors.Is.
package errs

import "errors"

var (
	// ErrInvalidName is returned when registering an encoder with a blank name.
	ErrInvalidName = errors.New("encoder name must not be blank")

	// ErrDuplicateEncoder is returned when registering an encoder under a name
	// that is already taken.
	ErrDuplicateEncoder = errors.New("encoder name already registered")

	// ErrPolicyFrozen is returned when registering an encoder or adding a
	// condition after Build has been called.
	ErrPolicyFrozen = errors.New("policy is frozen, registration is closed")

	// ErrInvalidPriority is returned when an encoder is registered with a
	// negative priority.
	ErrInvalidPriority = errors.New("encoder priority must not be negative")
)
