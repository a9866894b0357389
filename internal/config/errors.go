package config

import "errors"

// Sentinel errors returned by config validation. Callers can match against
// them with [errors.Is].
var (
	// ErrInvalidStorageConfigs is returned when the storage section of the
	// merged configuration is unusable: unknown driver or empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs provided")
)
