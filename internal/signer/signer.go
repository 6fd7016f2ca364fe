// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package signer holds the viewer's secp256k1 key and produces EIP-712
// signatures over decryption grants.
//
// Every signature passes through an [Approval] hook first, so interactive
// binaries can show the grant and let the user refuse.
package signer

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/SaurabViena/heirloom/internal/config"
	"github.com/SaurabViena/heirloom/internal/logger"
)

// Approval decides whether typed may be signed.
type Approval func(ctx context.Context, typed apitypes.TypedData) (bool, error)

// AutoApprove signs without asking.
func AutoApprove(context.Context, apitypes.TypedData) (bool, error) { return true, nil }

// KeystoreSigner signs EIP-712 payloads with a local private key.
type KeystoreSigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
	approve Approval
	logger  *logger.Logger
}

// New loads the key configured in app: the hex SignerKey wins over
// KeystorePath. A nil approve falls back to [AutoApprove].
func New(app config.App, approve Approval, log *logger.Logger) (*KeystoreSigner, error) {
	switch {
	case app.SignerKey != "":
		return FromHex(app.SignerKey, approve, log)
	case app.KeystorePath != "":
		return FromKeystore(app.KeystorePath, app.KeystorePassphrase, approve, log)
	default:
		return nil, ErrNoKey
	}
}

func FromHex(hexKey string, approve Approval, log *logger.Logger) (*KeystoreSigner, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return newSigner(key, approve, log), nil
}

// FromKeystore decrypts a go-ethereum JSON keystore file.
func FromKeystore(path, passphrase string, approve Approval, log *logger.Logger) (*KeystoreSigner, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keystore: %w", err)
	}
	k, err := keystore.DecryptKey(raw, passphrase)
	if err != nil {
		log.Err(err).Str("func", "FromKeystore").Str("path", path).Msg("cannot decrypt keystore")
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return newSigner(k.PrivateKey, approve, log), nil
}

func newSigner(key *ecdsa.PrivateKey, approve Approval, log *logger.Logger) *KeystoreSigner {
	if approve == nil {
		approve = AutoApprove
	}
	return &KeystoreSigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		approve: approve,
		logger:  log,
	}
}

func (s *KeystoreSigner) Address() common.Address {
	return s.address
}

// SignTypedData returns a 65-byte [R || S || V] signature with V in {27, 28}.
func (s *KeystoreSigner) SignTypedData(ctx context.Context, typed apitypes.TypedData) ([]byte, error) {
	ok, err := s.approve(ctx, typed)
	if err != nil {
		return nil, fmt.Errorf("approve signature: %w", err)
	}
	if !ok {
		s.logger.Info().Str("func", "*KeystoreSigner.SignTypedData").Msg("signature refused")
		return nil, ErrUserRejected
	}

	digest, _, err := apitypes.TypedDataAndHash(typed)
	if err != nil {
		return nil, fmt.Errorf("hash typed data: %w", err)
	}
	sig, err := crypto.Sign(digest, s.key)
	if err != nil {
		return nil, fmt.Errorf("sign typed data: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}
