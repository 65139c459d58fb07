package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidCompanionConfigs indicates invalid companion endpoint
	// settings (for example, a missing address).
	ErrInvalidCompanionConfigs = errors.New("invalid companion configuration")
	// ErrInvalidStorageConfigs indicates invalid association store
	// settings (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing keystore passphrase).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidQueryConfigs indicates an unusable query: neither or
	// both of URL and search string were supplied.
	ErrInvalidQueryConfigs = errors.New("invalid query configuration")
)
