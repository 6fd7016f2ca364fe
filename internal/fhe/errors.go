package fhe

import "errors"

// Adapter-level failures. Implementations wrap transport or engine details
// with one of these so callers can match them with errors.Is.
var (
	ErrNotReady         = errors.New("encryption capability is not ready")
	ErrEncryptionFailed = errors.New("encryption failed")
	ErrDecryptionFailed = errors.New("decryption failed")
	ErrGrantExpired     = errors.New("decryption grant expired")
	ErrGrantRejected    = errors.New("decryption grant rejected")
	ErrInvalidProof     = errors.New("input proof is invalid")
	ErrValueTooWide     = errors.New("value exceeds element width")
	ErrUnknownHandle    = errors.New("unknown ciphertext handle")
	ErrInvalidKey       = errors.New("invalid key material")
	ErrSealedBox        = errors.New("cannot open sealed box")
)
