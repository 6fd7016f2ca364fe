package engine

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/SaurabViena/heirloom/internal/fhe"
	"github.com/SaurabViena/heirloom/models"
)

//go:generate mockgen -destination=../../mock/engine_mock.go -package=mock github.com/SaurabViena/heirloom/internal/fhe/engine Gateway

// CiphertextRepository persists gateway ciphertexts and their access lists.
type CiphertextRepository interface {
	// Save stores new records. Saving a handle twice is an error.
	Save(ctx context.Context, records []models.CiphertextRecord) error
	// Get returns the stored records for the handles that exist.
	Get(ctx context.Context, handles []models.Handle) (map[models.Handle]models.CiphertextRecord, error)
	// Allow adds account to the access list of every handle. Idempotent.
	Allow(ctx context.Context, handles []models.Handle, account common.Address) error
	// Allowed reports whether account is on the handle's access list.
	Allowed(ctx context.Context, handle models.Handle, account common.Address) (bool, error)
}

// Gateway is the operation set the HTTP API exposes.
type Gateway interface {
	NetworkKey() []byte
	Domain() fhe.GrantDomain
	WidthBits() int
	Ingest(ctx context.Context, destination, submitter common.Address, inputs [][]byte) (models.CiphertextBundle, error)
	VerifyInput(ctx context.Context, destination, submitter common.Address, bundle models.CiphertextBundle) error
	Allow(ctx context.Context, handles []models.Handle, account common.Address) error
	UserDecrypt(ctx context.Context, req UserDecryptRequest) (map[models.Handle][]byte, error)
}
