package client

import (
	"errors"

	"github.com/SaurabViena/heirloom/internal/service"
)

// Human-readable guidance printed by the CLI for each pipeline outcome.
const (
	MsgInvalidCapacity    = "the credential layout does not fit the element width; check the configuration"
	MsgEncryptionFailed   = "encryption failed; nothing was stored, submit the credential again"
	MsgUserCancelled      = "cancelled; no signature was produced"
	MsgGrantExpired       = "the decryption grant expired; reveal again to sign a fresh one"
	MsgGrantRejected      = "the gateway rejected the grant; check that you are authorized for this credential"
	MsgDecryptionTimedOut = "the gateway did not answer in time; try again"
	MsgDecryptionFailed   = "decryption failed; try again"
	MsgAdapterNotReady    = "the encryption gateway is not reachable"
	MsgInvalidDraft       = "the credential is invalid"
	MsgInvalidProof       = "the gateway proof was rejected by the ledger"
	MsgInvalidAddress     = "invalid address"
	MsgSelfGrant          = "you cannot authorize your own address"
	MsgAlreadyAuthorized  = "this authorization already exists"
	MsgCredentialNotFound = "no credential at that index"
	MsgAccessDenied       = "you are not authorized to read this credential"
)

var messages = []struct {
	err error
	msg string
}{
	{service.ErrInvalidCapacity, MsgInvalidCapacity},
	{service.ErrEncryptionFailed, MsgEncryptionFailed},
	{service.ErrUserCancelled, MsgUserCancelled},
	{service.ErrGrantExpired, MsgGrantExpired},
	{service.ErrGrantRejected, MsgGrantRejected},
	{service.ErrDecryptionTimedOut, MsgDecryptionTimedOut},
	{service.ErrDecryptionFailed, MsgDecryptionFailed},
	{service.ErrAdapterNotReady, MsgAdapterNotReady},
	{service.ErrInvalidDraft, MsgInvalidDraft},
	{service.ErrInvalidSubmission, MsgInvalidDraft},
	{service.ErrInvalidProof, MsgInvalidProof},
	{service.ErrInvalidAddress, MsgInvalidAddress},
	{service.ErrSelfGrant, MsgSelfGrant},
	{service.ErrAlreadyAuthorized, MsgAlreadyAuthorized},
	{service.ErrCredentialNotFound, MsgCredentialNotFound},
	{service.ErrAccessDenied, MsgAccessDenied},
}

// Message returns the guidance for err, or err's own text when no pipeline
// outcome matches.
func Message(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return err.Error()
}
