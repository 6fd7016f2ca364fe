package service

import "errors"

// Pipeline outcomes. Every error returned by a service wraps exactly one of
// these, so callers can render attempt-specific guidance with errors.Is.
var (
	// ErrInvalidCapacity means the attribute layout cannot be encoded with
	// the configured element width. It is a configuration mistake.
	ErrInvalidCapacity = errors.New("invalid attribute capacity")

	// ErrEncryptionFailed abandons a submission; retry from the draft.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrUserCancelled means the signer declined the grant. It is not a
	// failure to report.
	ErrUserCancelled = errors.New("cancelled by user")

	// ErrSignatureRefused is what a [Signer] wraps when the user declines a
	// signature request.
	ErrSignatureRefused = errors.New("signature request refused")

	ErrGrantExpired  = errors.New("decryption grant expired")
	ErrGrantRejected = errors.New("decryption grant rejected")

	// ErrDecryptionTimedOut means the gateway did not answer within the
	// decryption timeout. The grant and keypair are discarded.
	ErrDecryptionTimedOut = errors.New("decryption timed out")

	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrAdapterNotReady is returned when the readiness precondition of a
	// pipeline invocation does not hold.
	ErrAdapterNotReady = errors.New("encryption adapter is not ready")
)

// Draft and ledger errors.
var (
	ErrInvalidDraft       = errors.New("invalid credential draft")
	ErrInvalidSubmission  = errors.New("invalid credential submission")
	ErrInvalidProof       = errors.New("input proof rejected")
	ErrInvalidAddress     = errors.New("invalid address")
	ErrSelfGrant          = errors.New("cannot authorize your own address")
	ErrAlreadyAuthorized  = errors.New("authorization already exists")
	ErrCredentialNotFound = errors.New("credential not found")
	ErrAccessDenied       = errors.New("access denied")
)
