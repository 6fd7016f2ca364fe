package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/SaurabViena/heirloom/internal/codec"
	"github.com/SaurabViena/heirloom/internal/config"
	"github.com/SaurabViena/heirloom/internal/fhe"
	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/internal/metrics"
	"github.com/SaurabViena/heirloom/internal/store"
	"github.com/SaurabViena/heirloom/internal/validators"
	"github.com/SaurabViena/heirloom/models"
)

// SubmissionService turns a plaintext draft into handles plus a proof.
type SubmissionService interface {
	// Submit validates, encodes and encrypts draft for destination on behalf
	// of submitter. It does not write to the ledger.
	Submit(ctx context.Context, draft models.CredentialDraft, destination, submitter common.Address) (models.SubmissionRequest, error)
}

// DecryptionService recovers plaintext through a signed, time-bounded grant.
type DecryptionService interface {
	// Decrypt reveals the attributes behind refs.
	Decrypt(ctx context.Context, req DecryptionRequest) (models.Revealed, error)
	// Reveal fetches the handles of one credential from the ledger and
	// decrypts them.
	Reveal(ctx context.Context, req RevealRequest) (models.Revealed, error)
}

// AccessService answers "who can read what" from the authorization records.
type AccessService interface {
	Received(ctx context.Context, viewer common.Address) ([]InheritedCredentials, error)
	Given(ctx context.Context, owner common.Address) ([]models.AuthorizationRecord, error)
}

// Services bundles everything the CLI calls.
type Services struct {
	SubmissionService SubmissionService
	DecryptionService DecryptionService
	Ledger            Ledger
	AccessService     AccessService
}

// Dependencies are the collaborators shared by all services.
type Dependencies struct {
	Session  fhe.Session
	Registry fhe.Registry
	Vault    store.VaultRepository
	Codec    *codec.Codec
	Metrics  metrics.BusinessMetrics
}

func NewServices(deps Dependencies, cfg *config.ClientConfig, logger *logger.Logger) *Services {
	m := deps.Metrics
	if m == nil {
		m = metrics.NewNoOp()
	}
	validator := validators.NewCredentialValidator(cfg.App.NameMaxLength)
	ledger := NewLedgerService(deps.Vault, deps.Registry, validator, logger)

	return &Services{
		SubmissionService: NewSubmissionServiceWithMetrics(
			NewSubmissionService(deps.Session, deps.Codec, validator, logger), m),
		DecryptionService: NewDecryptionServiceWithMetrics(
			NewDecryptionService(deps.Session, ledger, deps.Codec, logger,
				WithGrantDuration(cfg.Decryption.GrantDuration),
				WithDecryptionTimeout(cfg.Decryption.Timeout),
			), m),
		Ledger:        ledger,
		AccessService: NewAccessService(ledger, logger),
	}
}
