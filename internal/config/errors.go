package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates an unusable candidate port range.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates missing addon store settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidFetcherConfigs indicates an unusable manifest fetcher
	// timeout.
	ErrInvalidFetcherConfigs = errors.New("invalid fetcher configuration")
)
