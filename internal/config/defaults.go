package config

import "time"

// Defaults returns the built-in configuration layer.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ChainID:       31337,
			NameMaxLength: 64,
			LogLevel:      "info",
			Version:       "dev",
		},
		Decryption: Decryption{
			GrantDuration: 24 * time.Hour,
			Timeout:       60 * time.Second,
		},
		Adapter: Adapter{
			Mode:           AdapterModeHTTP,
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			Vault:      Vault{DSN: "heirloom.db?_foreign_keys=on"},
			Ciphertext: Ciphertext{Driver: CiphertextDriverBadger},
		},
		Server: Server{
			HTTPAddress:    ":8080",
			RequestTimeout: 30 * time.Second,
			RateLimit:      10,
			RateBurst:      20,
		},
		Engine: Engine{WidthBits: 256},
		Auth: Auth{
			TokenIssuer:   "heirloom-gateway",
			TokenDuration: 30 * 24 * time.Hour,
		},
		Workers: Workers{
			GCInterval:     10 * time.Minute,
			GCDiscardRatio: 0.5,
		},
	}
}
