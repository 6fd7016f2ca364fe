package fhe

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/SaurabViena/heirloom/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/fhe_mock.go -package=mock

// Session is the client-side encryption capability. Implementations are
// safe for concurrent use by independent pipeline flows.
type Session interface {
	// Ready returns nil when the capability can serve requests, or an error
	// wrapping ErrNotReady.
	Ready(ctx context.Context) error

	// CreateBatch starts an encryption batch scoped to one destination
	// contract and one submitter.
	CreateBatch(destination, submitter common.Address) BatchBuilder

	// GenerateKeypair returns a fresh ephemeral keypair. It never touches
	// the network.
	GenerateKeypair() (models.Keypair, error)

	// BuildGrant produces the unsigned decryption authorization for the given
	// public key. The result depends only on its arguments.
	BuildGrant(publicKey []byte, destinations []common.Address, issuedAt time.Time, duration time.Duration) (models.UnsignedGrant, error)

	// DecryptBatch re-encrypts the requested handles to the request keypair
	// and returns their plaintext values.
	DecryptBatch(ctx context.Context, req DecryptRequest) (map[models.Handle]models.FieldElement, error)
}

// BatchBuilder accumulates values for one encryption batch. Append order is
// the order of the resulting handles.
type BatchBuilder interface {
	Append(value models.FieldElement) BatchBuilder
	Seal(ctx context.Context) (models.CiphertextBundle, error)
}

// Registry is the ledger-side capability of the gateway: it checks input
// proofs and extends ciphertext access lists.
type Registry interface {
	VerifyInput(ctx context.Context, destination, submitter common.Address, bundle models.CiphertextBundle) error
	Allow(ctx context.Context, handles []models.Handle, account common.Address) error
}
