// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/SaurabViena/heirloom/internal/fhe"
	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/internal/store"
	"github.com/SaurabViena/heirloom/internal/validators"
	"github.com/SaurabViena/heirloom/models"
)

type ledgerService struct {
	repo      store.VaultRepository
	registry  fhe.Registry
	validator validators.Validator
	now       func() time.Time
	logger    *logger.Logger
}

// NewLedgerService returns the development ledger backed by repo. Every
// ACL change is pushed to registry before the ledger records it.
func NewLedgerService(repo store.VaultRepository, registry fhe.Registry, validator validators.Validator, log *logger.Logger) Ledger {
	return &ledgerService{
		repo:      repo,
		registry:  registry,
		validator: validator,
		now:       time.Now,
		logger:    log,
	}
}

func (s *ledgerService) CreateCredential(ctx context.Context, req models.SubmissionRequest) (uint64, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return 0, mapValidationError(err, ErrInvalidSubmission)
	}

	bundle := models.CiphertextBundle{Handles: req.Handles, Proof: req.Proof}
	if err := s.registry.VerifyInput(ctx, req.Destination, req.Submitter, bundle); err != nil {
		return 0, mapSessionError(err, ErrInvalidProof)
	}

	// existing blanket grants cover new credentials as well; the gateway
	// learns about them before the ledger row exists
	given, err := s.repo.GivenAuthorizations(ctx, req.Submitter)
	if err != nil {
		return 0, fmt.Errorf("load grants: %w", err)
	}
	handles := nonEmpty(req.Handles)
	for _, rec := range given {
		if rec.Type != models.AuthAll {
			continue
		}
		if err = s.registry.Allow(ctx, handles, rec.Viewer); err != nil {
			log.Err(err).Str("func", "ledgerService.CreateCredential").
				Str("viewer", rec.Viewer.Hex()).
				Msg("failed to allow blanket viewer")
			return 0, mapSessionError(err, ErrAdapterNotReady)
		}
	}

	index, err := s.repo.CreateCredential(ctx, req, s.now())
	if err != nil {
		log.Err(err).Str("func", "ledgerService.CreateCredential").Msg("failed to store credential")
		return 0, fmt.Errorf("create credential: %w", err)
	}

	log.Info().Str("func", "ledgerService.CreateCredential").
		Str("owner", req.Submitter.Hex()).
		Uint64("index", index).
		Msg("credential created")

	return index, nil
}

func (s *ledgerService) CredentialCount(ctx context.Context, owner common.Address) (uint64, error) {
	return s.repo.CredentialCount(ctx, owner)
}

func (s *ledgerService) CredentialNames(ctx context.Context, owner common.Address) ([]string, error) {
	return s.repo.CredentialNames(ctx, owner)
}

func (s *ledgerService) CredentialMeta(ctx context.Context, owner common.Address, index uint64) (models.CredentialMeta, error) {
	meta, err := s.repo.CredentialMeta(ctx, owner, index)
	return meta, mapStoreError(err)
}

func (s *ledgerService) CredentialHandles(ctx context.Context, caller, owner common.Address, index uint64) ([]models.Handle, error) {
	if caller != owner {
		records, err := s.repo.ReceivedAuthorizations(ctx, caller)
		if err != nil {
			return nil, fmt.Errorf("load received grants: %w", err)
		}
		if !EffectiveAccess(records, owner, caller).Allows(index) {
			return nil, fmt.Errorf("%w: %s cannot read credential %d of %s", ErrAccessDenied, caller.Hex(), index, owner.Hex())
		}
	}

	handles, err := s.repo.CredentialHandles(ctx, owner, index)
	return handles, mapStoreError(err)
}

func (s *ledgerService) GrantSingle(ctx context.Context, owner, viewer common.Address, index uint64) error {
	rec := models.AuthorizationRecord{Owner: owner, Viewer: viewer, Type: models.AuthSingle, CredentialIndex: index}
	if err := s.validator.Validate(ctx, rec); err != nil {
		return mapValidationError(err, ErrInvalidAddress)
	}

	handles, err := s.repo.CredentialHandles(ctx, owner, index)
	if err != nil {
		return mapStoreError(err)
	}

	return s.grant(ctx, rec, nonEmpty(handles))
}

func (s *ledgerService) GrantAll(ctx context.Context, owner, viewer common.Address) error {
	rec := models.AuthorizationRecord{Owner: owner, Viewer: viewer, Type: models.AuthAll}
	if err := s.validator.Validate(ctx, rec); err != nil {
		return mapValidationError(err, ErrInvalidAddress)
	}

	count, err := s.repo.CredentialCount(ctx, owner)
	if err != nil {
		return fmt.Errorf("count credentials: %w", err)
	}

	var handles []models.Handle
	for i := range count {
		h, err := s.repo.CredentialHandles(ctx, owner, i)
		if err != nil {
			return mapStoreError(err)
		}
		handles = append(handles, nonEmpty(h)...)
	}

	return s.grant(ctx, rec, handles)
}

// grant extends the gateway ACL and then records rec. A record is only
// written once the viewer can actually decrypt.
func (s *ledgerService) grant(ctx context.Context, rec models.AuthorizationRecord, handles []models.Handle) error {
	log := logger.FromContext(ctx)

	if len(handles) > 0 {
		if err := s.registry.Allow(ctx, handles, rec.Viewer); err != nil {
			log.Err(err).Str("func", "ledgerService.grant").Msg("failed to extend access list")
			return mapSessionError(err, ErrAdapterNotReady)
		}
	}

	rec.CreatedAt = s.now()
	if err := s.repo.SaveAuthorization(ctx, rec); err != nil {
		return mapStoreError(err)
	}

	log.Info().Str("func", "ledgerService.grant").
		Str("owner", rec.Owner.Hex()).
		Str("viewer", rec.Viewer.Hex()).
		Stringer("type", rec.Type).
		Msg("authorization recorded")

	return nil
}

func (s *ledgerService) GivenAuthorizations(ctx context.Context, owner common.Address) ([]models.AuthorizationRecord, error) {
	return s.repo.GivenAuthorizations(ctx, owner)
}

func (s *ledgerService) ReceivedAuthorizations(ctx context.Context, viewer common.Address) ([]models.AuthorizationRecord, error) {
	return s.repo.ReceivedAuthorizations(ctx, viewer)
}

func nonEmpty(handles []models.Handle) []models.Handle {
	out := make([]models.Handle, 0, len(handles))
	for _, h := range handles {
		if !h.IsEmpty() {
			out = append(out, h)
		}
	}
	return out
}
