// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/SaurabViena/heirloom/internal/codec"
	"github.com/SaurabViena/heirloom/internal/fhe"
	"github.com/SaurabViena/heirloom/internal/store"
	"github.com/SaurabViena/heirloom/internal/validators"
)

// mapSessionError translates an adapter error into a pipeline outcome.
// Errors the adapter did not classify become fallback.
func mapSessionError(err, fallback error) error {
	if err == nil {
		return nil
	}

	var mapped error
	switch {
	case errors.Is(err, fhe.ErrNotReady):
		mapped = ErrAdapterNotReady
	case errors.Is(err, fhe.ErrGrantExpired):
		mapped = ErrGrantExpired
	case errors.Is(err, fhe.ErrGrantRejected):
		mapped = ErrGrantRejected
	case errors.Is(err, fhe.ErrInvalidProof):
		mapped = ErrInvalidProof
	case errors.Is(err, fhe.ErrEncryptionFailed), errors.Is(err, fhe.ErrValueTooWide):
		mapped = ErrEncryptionFailed
	case errors.Is(err, fhe.ErrDecryptionFailed),
		errors.Is(err, fhe.ErrUnknownHandle),
		errors.Is(err, fhe.ErrSealedBox):
		mapped = ErrDecryptionFailed
	default:
		mapped = fallback
	}

	return fmt.Errorf("%w: %v", mapped, err)
}

// mapSealError reports every seal failure as ErrEncryptionFailed, keeping
// the adapter's text for the log.
func mapSealError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrEncryptionFailed, err)
}

// mapStoreError translates repository errors into ledger outcomes.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrCredentialNotFound):
		return ErrCredentialNotFound
	case errors.Is(err, store.ErrAuthorizationExists):
		return ErrAlreadyAuthorized
	default:
		return err
	}
}

// mapValidationError translates validator sentinels. kind is returned for
// anything not more specific.
func mapValidationError(err, kind error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, validators.ErrSelfAuthorization):
		return fmt.Errorf("%w: %v", ErrSelfGrant, err)
	case errors.Is(err, validators.ErrInvalidAddress):
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	default:
		return fmt.Errorf("%w: %v", kind, err)
	}
}

func mapCodecError(err error) error {
	if errors.Is(err, codec.ErrInvalidCapacity) {
		return fmt.Errorf("%w: %v", ErrInvalidCapacity, err)
	}
	return err
}

// Retryable reports whether a fresh, explicit attempt can succeed where err
// failed. Cancellation and configuration errors are not retryable.
func Retryable(err error) bool {
	switch {
	case errors.Is(err, ErrEncryptionFailed),
		errors.Is(err, ErrGrantExpired),
		errors.Is(err, ErrGrantRejected),
		errors.Is(err, ErrDecryptionTimedOut),
		errors.Is(err, ErrDecryptionFailed),
		errors.Is(err, ErrAdapterNotReady):
		return true
	default:
		return false
	}
}
