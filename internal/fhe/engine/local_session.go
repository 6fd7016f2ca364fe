package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/SaurabViena/heirloom/internal/fhe"
	"github.com/SaurabViena/heirloom/models"
)

// LocalSession serves fhe.Session and fhe.Registry from an in-process
// Gateway, without HTTP.
type LocalSession struct {
	gateway Gateway
}

// NewLocalSession wraps gateway. A nil gateway yields a session that is
// never ready.
func NewLocalSession(gateway Gateway) *LocalSession {
	return &LocalSession{gateway: gateway}
}

func (s *LocalSession) Ready(ctx context.Context) error {
	if s.gateway == nil {
		return fmt.Errorf("%w: no local gateway", fhe.ErrNotReady)
	}
	return ctx.Err()
}

func (s *LocalSession) CreateBatch(destination, submitter common.Address) fhe.BatchBuilder {
	return &localBatch{session: s, destination: destination, submitter: submitter}
}

func (s *LocalSession) GenerateKeypair() (models.Keypair, error) {
	return fhe.GenerateKeypair()
}

func (s *LocalSession) BuildGrant(publicKey []byte, destinations []common.Address, issuedAt time.Time, duration time.Duration) (models.UnsignedGrant, error) {
	return s.gateway.Domain().Build(publicKey, destinations, issuedAt, duration)
}

func (s *LocalSession) DecryptBatch(ctx context.Context, req fhe.DecryptRequest) (map[models.Handle]models.FieldElement, error) {
	sealed, err := s.gateway.UserDecrypt(ctx, UserDecryptRequest{
		Pairs:        req.Pairs,
		PublicKey:    req.Keypair.PublicKey,
		Signature:    req.Signature,
		Destinations: req.Destinations,
		Viewer:       req.Viewer,
		IssuedAt:     req.IssuedAt,
		Duration:     req.Duration,
	})
	if err != nil {
		if errors.Is(err, fhe.ErrGrantExpired) || errors.Is(err, fhe.ErrGrantRejected) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", fhe.ErrDecryptionFailed, err)
	}

	values, err := fhe.OpenResults(req.Keypair, sealed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fhe.ErrDecryptionFailed, err)
	}
	return values, nil
}

func (s *LocalSession) VerifyInput(ctx context.Context, destination, submitter common.Address, bundle models.CiphertextBundle) error {
	return s.gateway.VerifyInput(ctx, destination, submitter, bundle)
}

func (s *LocalSession) Allow(ctx context.Context, handles []models.Handle, account common.Address) error {
	return s.gateway.Allow(ctx, handles, account)
}

type localBatch struct {
	session     *LocalSession
	destination common.Address
	submitter   common.Address
	values      []models.FieldElement
}

func (b *localBatch) Append(value models.FieldElement) fhe.BatchBuilder {
	b.values = append(b.values, value)
	return b
}

func (b *localBatch) Seal(ctx context.Context) (models.CiphertextBundle, error) {
	boxes, err := fhe.SealInputs(b.session.gateway.NetworkKey(), b.destination, b.submitter, b.values)
	if err != nil {
		return models.CiphertextBundle{}, fmt.Errorf("%w: %w", fhe.ErrEncryptionFailed, err)
	}
	bundle, err := b.session.gateway.Ingest(ctx, b.destination, b.submitter, boxes)
	if err != nil {
		return models.CiphertextBundle{}, fmt.Errorf("%w: %w", fhe.ErrEncryptionFailed, err)
	}
	return bundle, nil
}
