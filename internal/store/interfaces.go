package store

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/SaurabViena/heirloom/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultRepository is the development ledger: credential handles and
// authorization records, keyed by owner address. It holds no plaintext.
type VaultRepository interface {
	// CreateCredential stores req under the next free index of req.Submitter
	// and returns that index.
	CreateCredential(ctx context.Context, req models.SubmissionRequest, createdAt time.Time) (uint64, error)
	CredentialCount(ctx context.Context, owner common.Address) (uint64, error)
	CredentialNames(ctx context.Context, owner common.Address) ([]string, error)
	CredentialMeta(ctx context.Context, owner common.Address, index uint64) (models.CredentialMeta, error)
	CredentialHandles(ctx context.Context, owner common.Address, index uint64) ([]models.Handle, error)
	SaveAuthorization(ctx context.Context, rec models.AuthorizationRecord) error
	GivenAuthorizations(ctx context.Context, owner common.Address) ([]models.AuthorizationRecord, error)
	ReceivedAuthorizations(ctx context.Context, viewer common.Address) ([]models.AuthorizationRecord, error)
}

// CiphertextRepository persists gateway ciphertexts and their access lists.
type CiphertextRepository interface {
	Save(ctx context.Context, records []models.CiphertextRecord) error
	Get(ctx context.Context, handles []models.Handle) (map[models.Handle]models.CiphertextRecord, error)
	Allow(ctx context.Context, handles []models.Handle, account common.Address) error
	Allowed(ctx context.Context, handle models.Handle, account common.Address) (bool, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
