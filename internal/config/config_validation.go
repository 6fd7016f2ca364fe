// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/ethereum/go-ethereum/common"
)

func (cfg *ClientConfig) validate() error {
	if !common.IsHexAddress(cfg.App.Destination) || cfg.App.NameMaxLength <= 0 {
		return ErrInvalidAppConfigs
	}
	if cfg.App.Verifier != "" && !common.IsHexAddress(cfg.App.Verifier) {
		return ErrInvalidAppConfigs
	}

	if cfg.App.SignerKey == "" && cfg.App.KeystorePath == "" {
		return ErrInvalidSignerConfigs
	}

	if cfg.Decryption.GrantDuration <= 0 || cfg.Decryption.Timeout <= 0 {
		return ErrInvalidDecryptionConfigs
	}

	if cfg.Vault.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Adapter.Mode {
	case AdapterModeHTTP:
		if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
			return ErrInvalidAdapterConfigs
		}
	case AdapterModeEmbedded:
		if err := validateCiphertext(cfg.Ciphertext); err != nil {
			return err
		}
		return validateEngine(cfg.Engine)
	default:
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *GatewayConfig) validate() error {
	if cfg.App.Verifier != "" && !common.IsHexAddress(cfg.App.Verifier) {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.RateLimit <= 0 || cfg.Server.RateBurst <= 0 {
		return ErrInvalidServerConfigs
	}

	if err := validateCiphertext(cfg.Ciphertext); err != nil {
		return err
	}

	if err := validateEngine(cfg.Engine); err != nil {
		return err
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Ciphertext.Driver == CiphertextDriverBadger && cfg.Workers.GCInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func validateCiphertext(c Ciphertext) error {
	switch c.Driver {
	case CiphertextDriverPostgres:
		if c.DSN == "" {
			return ErrInvalidStorageConfigs
		}
	case CiphertextDriverBadger:
	default:
		return ErrInvalidStorageConfigs
	}
	return nil
}

func validateEngine(e Engine) error {
	if e.KMSKeyURI == "" || e.WrappedMasterKey == "" {
		return ErrInvalidEngineConfigs
	}
	if e.WidthBits < 8 || e.WidthBits > 256 || e.WidthBits%8 != 0 {
		return ErrInvalidEngineConfigs
	}
	return nil
}
