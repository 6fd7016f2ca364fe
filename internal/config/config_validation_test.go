// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	cfg := Defaults()
	cfg.App.Destination = "0x00000000000000000000000000000000000000c3"
	cfg.App.SignerKey = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	return cfg.ClientView()
}

func validGatewayConfig() *GatewayConfig {
	cfg := Defaults()
	cfg.Engine.KMSKeyURI = "base64key://smGbjm71Nxd1Ig5FS0wj9SlbzAIrnolCz9bQQ6uAhl4="
	cfg.Engine.WrappedMasterKey = "wrapped"
	cfg.Auth.TokenSignKey = "secret"
	return cfg.GatewayView()
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{"valid", func(c *ClientConfig) {}, nil},
		{"bad destination", func(c *ClientConfig) { c.App.Destination = "0x12" }, ErrInvalidAppConfigs},
		{"bad verifier", func(c *ClientConfig) { c.App.Verifier = "nope" }, ErrInvalidAppConfigs},
		{"zero name length", func(c *ClientConfig) { c.App.NameMaxLength = 0 }, ErrInvalidAppConfigs},
		{"no signer", func(c *ClientConfig) { c.App.SignerKey = "" }, ErrInvalidSignerConfigs},
		{"keystore signer", func(c *ClientConfig) { c.App.SignerKey = ""; c.App.KeystorePath = "/k.json" }, nil},
		{"zero timeout", func(c *ClientConfig) { c.Decryption.Timeout = 0 }, ErrInvalidDecryptionConfigs},
		{"no vault", func(c *ClientConfig) { c.Vault.DSN = "" }, ErrInvalidStorageConfigs},
		{"no gateway address", func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, ErrInvalidAdapterConfigs},
		{"unknown mode", func(c *ClientConfig) { c.Adapter.Mode = "grpc" }, ErrInvalidAdapterConfigs},
		{"embedded without key", func(c *ClientConfig) { c.Adapter.Mode = AdapterModeEmbedded }, ErrInvalidEngineConfigs},
		{"embedded", func(c *ClientConfig) {
			c.Adapter.Mode = AdapterModeEmbedded
			c.Engine.KMSKeyURI = "base64key://"
			c.Engine.WrappedMasterKey = "w"
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGatewayConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *GatewayConfig)
		wantErr error
	}{
		{"valid", func(c *GatewayConfig) {}, nil},
		{"no address", func(c *GatewayConfig) { c.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"zero rate", func(c *GatewayConfig) { c.Server.RateLimit = 0 }, ErrInvalidServerConfigs},
		{"postgres without dsn", func(c *GatewayConfig) { c.Ciphertext.Driver = CiphertextDriverPostgres }, ErrInvalidStorageConfigs},
		{"unknown driver", func(c *GatewayConfig) { c.Ciphertext.Driver = "redis" }, ErrInvalidStorageConfigs},
		{"odd width", func(c *GatewayConfig) { c.Engine.WidthBits = 12 }, ErrInvalidEngineConfigs},
		{"width too large", func(c *GatewayConfig) { c.Engine.WidthBits = 512 }, ErrInvalidEngineConfigs},
		{"no wrapped key", func(c *GatewayConfig) { c.Engine.WrappedMasterKey = "" }, ErrInvalidEngineConfigs},
		{"no sign key", func(c *GatewayConfig) { c.Auth.TokenSignKey = "" }, ErrInvalidAuthConfigs},
		{"no gc interval", func(c *GatewayConfig) { c.Workers.GCInterval = 0 }, ErrInvalidWorkerConfigs},
		{"postgres ignores gc", func(c *GatewayConfig) {
			c.Ciphertext.Driver = CiphertextDriverPostgres
			c.Ciphertext.DSN = "postgres://localhost/gw"
			c.Workers.GCInterval = 0
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validGatewayConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetClientConfig_FromEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_DESTINATION": "0x00000000000000000000000000000000000000c3",
		"APP_SIGNER_KEY":  "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318",
	})

	cfg, err := GetClientConfig(&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://flag:1"}})
	require.NoError(t, err)
	assert.Equal(t, "http://flag:1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "heirloom.db?_foreign_keys=on", cfg.Vault.DSN)
}

func TestGetGatewayConfig_MissingKeys(t *testing.T) {
	_, err := GetGatewayConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidEngineConfigs)
}
