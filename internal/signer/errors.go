package signer

import (
	"errors"
	"fmt"

	"github.com/SaurabViena/heirloom/internal/service"
)

var (
	// ErrUserRejected is returned when the approval hook declines to sign.
	// It satisfies the refusal contract of service.Signer.
	ErrUserRejected = fmt.Errorf("%w: user rejected the request", service.ErrSignatureRefused)

	// ErrNoKey is returned when neither a hex key nor a keystore is configured.
	ErrNoKey = errors.New("no signing key configured")

	// ErrInvalidKey is returned when the key material cannot be decoded.
	ErrInvalidKey = errors.New("invalid signing key")
)
