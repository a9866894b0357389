package service

import "errors"

// Sentinel errors returned by service methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrInvalidDateOfBirth is returned by quote generation when the stored
	// date of birth cannot be parsed as a calendar date. The wrapped message
	// carries the offending value so the transport layer can surface it.
	ErrInvalidDateOfBirth = errors.New("Invalid customer date of birth")
)
