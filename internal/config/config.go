// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// heirloom CLI and the development gateway. It is populated by merging
// defaults, an optional JSON file, environment variables and command-line
// overrides.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identity and ledger settings: signer key, destination
	// contract, chain id and logging.
	App App `envPrefix:"APP_"`

	// Decryption holds grant lifetime and decryption timeout.
	Decryption Decryption `envPrefix:"DECRYPTION_"`

	// Adapter selects how the CLI reaches the encryption gateway.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the vault and ciphertext backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the gateway HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Engine holds the gateway master key and element width.
	Engine Engine `envPrefix:"ENGINE_"`

	// Auth holds the bearer token settings of the gateway ACL endpoint.
	Auth Auth `envPrefix:"AUTH_"`

	// Workers holds background worker intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds identity and ledger settings.
type App struct {
	// SignerKey is a hex-encoded secp256k1 private key.
	// Env: APP_SIGNER_KEY
	SignerKey string `env:"SIGNER_KEY"`

	// KeystorePath points to a go-ethereum keystore file, used when
	// SignerKey is empty.
	// Env: APP_KEYSTORE_PATH
	KeystorePath string `env:"KEYSTORE_PATH"`

	// KeystorePassphrase unlocks KeystorePath.
	// Env: APP_KEYSTORE_PASSPHRASE
	KeystorePassphrase string `env:"KEYSTORE_PASSPHRASE"`

	// Destination is the address of the contract credentials are bound to.
	// Env: APP_DESTINATION
	Destination string `env:"DESTINATION"`

	// ChainID and Verifier form the EIP-712 domain of decryption grants.
	// Env: APP_CHAIN_ID, APP_VERIFIER
	ChainID  int64  `env:"CHAIN_ID"`
	Verifier string `env:"VERIFIER"`

	// NameMaxLength caps credential names, in characters.
	// Env: APP_NAME_MAX_LENGTH
	NameMaxLength int `env:"NAME_MAX_LENGTH"`

	// LogLevel is a zerolog level name. LogDir is where the CLI log file
	// is written.
	// Env: APP_LOG_LEVEL, APP_LOG_DIR
	LogLevel string `env:"LOG_LEVEL"`
	LogDir   string `env:"LOG_DIR"`

	// Version is reported by the version command and GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Decryption holds the decryption pipeline limits.
type Decryption struct {
	// GrantDuration is the validity window of a signed grant.
	// Env: DECRYPTION_GRANT_DURATION
	GrantDuration time.Duration `env:"GRANT_DURATION"`

	// Timeout bounds the batch decryption call.
	// Env: DECRYPTION_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Adapter modes.
const (
	AdapterModeHTTP     = "http"
	AdapterModeEmbedded = "embedded"
)

// Adapter selects and configures the encryption session adapter.
type Adapter struct {
	// Mode is "http" (remote gateway) or "embedded" (in-process engine).
	// Env: ADAPTER_MODE
	Mode string `env:"MODE"`

	// HTTPAddress is the gateway base URL (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single gateway request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ACLToken is the bearer token sent to POST /api/v1/acl.
	// Env: ADAPTER_ACL_TOKEN
	ACLToken string `env:"ACL_TOKEN"`
}

// Storage groups the persistence backends.
type Storage struct {
	// Vault is the development ledger database.
	Vault Vault `envPrefix:"VAULT_"`

	// Ciphertext is the gateway ciphertext store.
	Ciphertext Ciphertext `envPrefix:"CIPHERTEXT_"`
}

// Vault holds the SQLite ledger settings.
type Vault struct {
	// DSN is a go-sqlite3 data source name.
	// Env: STORAGE_VAULT_DSN
	DSN string `env:"DSN"`
}

// Ciphertext store drivers.
const (
	CiphertextDriverPostgres = "postgres"
	CiphertextDriverBadger   = "badger"
)

// Ciphertext holds the gateway ciphertext store settings.
type Ciphertext struct {
	// Driver is "postgres" or "badger".
	// Env: STORAGE_CIPHERTEXT_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_CIPHERTEXT_DSN
	DSN string `env:"DSN"`

	// Dir is the badger data directory. Empty keeps data in memory.
	// Env: STORAGE_CIPHERTEXT_DIR
	Dir string `env:"DIR"`
}

// Server holds the gateway HTTP listener settings.
type Server struct {
	// HTTPAddress is the "host:port" the gateway listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of one inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit (requests per second) and RateBurst limit POST /user-decrypt.
	// Env: SERVER_RATE_LIMIT, SERVER_RATE_BURST
	RateLimit float64 `env:"RATE_LIMIT"`
	RateBurst int     `env:"RATE_BURST"`

	// CORSOrigins is a comma separated allow-list.
	// Env: SERVER_CORS_ORIGINS
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// Engine holds the gateway key material and value width.
type Engine struct {
	// KMSKeyURI is a gocloud.dev/secrets keeper URL
	// (e.g. "base64key://..." or "hashivault://mykey").
	// Env: ENGINE_KMS_KEY_URI
	KMSKeyURI string `env:"KMS_KEY_URI"`

	// WrappedMasterKey is the base64 master key encrypted by KMSKeyURI.
	// Env: ENGINE_WRAPPED_MASTER_KEY
	WrappedMasterKey string `env:"WRAPPED_MASTER_KEY"`

	// WidthBits is the bit width W of one field element.
	// Env: ENGINE_WIDTH_BITS
	WidthBits int `env:"WIDTH_BITS"`
}

// Auth holds JWT settings for the gateway ACL endpoint.
type Auth struct {
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Workers holds background worker settings.
type Workers struct {
	// GCInterval is how often the badger value log is collected.
	// Env: WORKERS_GC_INTERVAL
	GCInterval time.Duration `env:"GC_INTERVAL"`

	// GCDiscardRatio is passed to badger's RunValueLogGC.
	// Env: WORKERS_GC_DISCARD_RATIO
	GCDiscardRatio float64 `env:"GC_DISCARD_RATIO"`
}

// GetStructuredConfig loads and merges configuration from all sources in
// the following priority order (later sources win for non-zero fields):
//  1. Built-in defaults
//  2. JSON file (path from overrides or the CONFIG variable)
//  3. Environment variables (after loading .env files)
//  4. overrides, usually parsed from command-line flags
func GetStructuredConfig(overrides *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withOverrides(overrides).
		withJSON().
		build()
}
