package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing listen address or non-positive request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidStorageConfigs indicates invalid database settings
	// (for example, empty host, database name, or an out-of-range port).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidClassifierConfigs indicates invalid inference endpoint
	// settings (for example, empty address or negative real-label id).
	ErrInvalidClassifierConfigs = errors.New("invalid classifier configuration")
)
