package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SaurabViena/heirloom/internal/codec"
	"github.com/SaurabViena/heirloom/internal/fhe"
)

func TestMapSessionError(t *testing.T) {
	fallback := errors.New("fallback")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "not ready", in: fhe.ErrNotReady, want: ErrAdapterNotReady},
		{name: "expired", in: fhe.ErrGrantExpired, want: ErrGrantExpired},
		{name: "rejected", in: fhe.ErrGrantRejected, want: ErrGrantRejected},
		{name: "proof", in: fhe.ErrInvalidProof, want: ErrInvalidProof},
		{name: "too wide", in: fhe.ErrValueTooWide, want: ErrEncryptionFailed},
		{name: "sealed box", in: fhe.ErrSealedBox, want: ErrDecryptionFailed},
		{name: "unclassified", in: errors.New("EOF"), want: fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapSessionError(fmt.Errorf("call: %w", tt.in), fallback)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.in.Error())
		})
	}

	assert.NoError(t, mapSessionError(nil, fallback))
}

func TestMapCodecError(t *testing.T) {
	_, err := codec.Default.Encode("x", 64, 1)
	assert.ErrorIs(t, mapCodecError(err), ErrInvalidCapacity)
	assert.False(t, Retryable(mapCodecError(err)))
}

func TestRetryable(t *testing.T) {
	retryable := []error{ErrEncryptionFailed, ErrGrantExpired, ErrGrantRejected, ErrDecryptionTimedOut, ErrDecryptionFailed, ErrAdapterNotReady}
	for _, err := range retryable {
		assert.True(t, Retryable(fmt.Errorf("wrapped: %w", err)), err.Error())
	}

	final := []error{ErrUserCancelled, ErrInvalidCapacity, ErrInvalidDraft, ErrAccessDenied, nil}
	for _, err := range final {
		assert.False(t, Retryable(err))
	}
}
