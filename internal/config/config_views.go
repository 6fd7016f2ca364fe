package config

import (
	"fmt"
)

// ClientConfig is the view used by the heirloom CLI.
type ClientConfig struct {
	App        App
	Decryption Decryption
	Adapter    Adapter
	Vault      Vault
	// Ciphertext, Engine and Auth are only read in embedded adapter mode.
	Ciphertext Ciphertext
	Engine     Engine
	Auth       Auth
}

// GatewayConfig is the view used by the development gateway.
type GatewayConfig struct {
	App        App
	Server     Server
	Ciphertext Ciphertext
	Engine     Engine
	Auth       Auth
	Workers    Workers
}

// GetClientConfig builds and validates the CLI configuration.
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(overrides)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.ClientView()
	return clientCfg, clientCfg.validate()
}

// GetGatewayConfig builds and validates the gateway configuration.
func GetGatewayConfig(overrides *StructuredConfig) (*GatewayConfig, error) {
	cfg, err := GetStructuredConfig(overrides)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	gatewayCfg := cfg.GatewayView()
	return gatewayCfg, gatewayCfg.validate()
}

// ClientView maps the fields relevant to the CLI.
func (cfg *StructuredConfig) ClientView() *ClientConfig {
	return &ClientConfig{
		App:        cfg.App,
		Decryption: cfg.Decryption,
		Adapter:    cfg.Adapter,
		Vault:      cfg.Storage.Vault,
		Ciphertext: cfg.Storage.Ciphertext,
		Engine:     cfg.Engine,
		Auth:       cfg.Auth,
	}
}

// GatewayView maps the fields relevant to the gateway.
func (cfg *StructuredConfig) GatewayView() *GatewayConfig {
	return &GatewayConfig{
		App:        cfg.App,
		Server:     cfg.Server,
		Ciphertext: cfg.Storage.Ciphertext,
		Engine:     cfg.Engine,
		Auth:       cfg.Auth,
		Workers:    cfg.Workers,
	}
}
