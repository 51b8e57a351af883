package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid token or hashing settings
	// (for example, a sign key shorter than 256 bits).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidMailConfigs indicates incomplete SMTP settings.
	ErrInvalidMailConfigs = errors.New("invalid mail configuration")
	// ErrInvalidChainConfigs indicates an invalid chain id, gas limit or
	// gas price.
	ErrInvalidChainConfigs = errors.New("invalid chain configuration")
	// ErrInvalidOTPConfigs indicates a non-positive issuance throttle.
	ErrInvalidOTPConfigs = errors.New("invalid otp configuration")
)
