package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server address or zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker
	// settings (for example, a negative probe interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
