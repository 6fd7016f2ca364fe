package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/SaurabViena/heirloom/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Signer produces EIP-712 signatures for the current identity.
// SignTypedData returns an error wrapping [ErrSignatureRefused] when the
// user declines; any other error means the signer itself failed.
type Signer interface {
	Address() common.Address
	SignTypedData(ctx context.Context, typed apitypes.TypedData) ([]byte, error)
}

// Observer receives every state transition of a decryption attempt.
type Observer interface {
	OnTransition(from, to models.DecryptionState)
}

// ObserverFunc adapts a function to [Observer].
type ObserverFunc func(from, to models.DecryptionState)

func (f ObserverFunc) OnTransition(from, to models.DecryptionState) { f(from, to) }

// Ledger is the development ledger: credential handles and authorization
// records with owner/viewer access checks.
type Ledger interface {
	CreateCredential(ctx context.Context, req models.SubmissionRequest) (uint64, error)
	CredentialCount(ctx context.Context, owner common.Address) (uint64, error)
	CredentialNames(ctx context.Context, owner common.Address) ([]string, error)
	CredentialMeta(ctx context.Context, owner common.Address, index uint64) (models.CredentialMeta, error)
	// CredentialHandles returns the handles of (owner, index) if caller is
	// the owner or holds access to that index.
	CredentialHandles(ctx context.Context, caller, owner common.Address, index uint64) ([]models.Handle, error)
	GrantSingle(ctx context.Context, owner, viewer common.Address, index uint64) error
	GrantAll(ctx context.Context, owner, viewer common.Address) error
	GivenAuthorizations(ctx context.Context, owner common.Address) ([]models.AuthorizationRecord, error)
	ReceivedAuthorizations(ctx context.Context, viewer common.Address) ([]models.AuthorizationRecord, error)
}
