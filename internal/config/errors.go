package config

import "errors"

// Validation errors returned when a required configuration group is
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates a missing or malformed destination,
	// verifier or name limit.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidSignerConfigs indicates that neither a signer key nor a
	// keystore file is configured.
	ErrInvalidSignerConfigs = errors.New("invalid signer configuration")
	// ErrInvalidDecryptionConfigs indicates a non-positive grant duration
	// or timeout.
	ErrInvalidDecryptionConfigs = errors.New("invalid decryption configuration")
	// ErrInvalidAdapterConfigs indicates an unknown adapter mode or missing
	// gateway address.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates missing DSNs or an unknown driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidEngineConfigs indicates missing key material or a bad width.
	ErrInvalidEngineConfigs = errors.New("invalid engine configuration")
	// ErrInvalidAuthConfigs indicates a missing token signing key.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive worker interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
