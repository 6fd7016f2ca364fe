package service

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/SaurabViena/heirloom/internal/codec"
	"github.com/SaurabViena/heirloom/internal/fhe"
	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/internal/validators"
	"github.com/SaurabViena/heirloom/models"
)

type submissionService struct {
	session   fhe.Session
	codec     *codec.Codec
	layout    models.CredentialLayout
	validator validators.Validator
	logger    *logger.Logger
}

// NewSubmissionService returns the credential submission pipeline.
func NewSubmissionService(session fhe.Session, c *codec.Codec, validator validators.Validator, log *logger.Logger) SubmissionService {
	return &submissionService{
		session:   session,
		codec:     c,
		layout:    models.DefaultLayout,
		validator: validator,
		logger:    log,
	}
}

func (s *submissionService) Submit(ctx context.Context, draft models.CredentialDraft, destination, submitter common.Address) (models.SubmissionRequest, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, draft); err != nil {
		return models.SubmissionRequest{}, mapValidationError(err, ErrInvalidDraft)
	}

	elements, err := s.encode(draft)
	if err != nil {
		log.Err(err).Str("func", "submissionService.Submit").Msg("layout cannot be encoded")
		return models.SubmissionRequest{}, err
	}

	if err = s.session.Ready(ctx); err != nil {
		return models.SubmissionRequest{}, mapSessionError(err, ErrAdapterNotReady)
	}

	batch := s.session.CreateBatch(destination, submitter)
	for _, e := range elements {
		batch = batch.Append(e)
	}

	// once sealing starts it runs to completion or failure
	bundle, err := batch.Seal(context.WithoutCancel(ctx))
	if err != nil {
		log.Err(err).Str("func", "submissionService.Submit").
			Str("destination", destination.Hex()).
			Msg("sealing batch failed")
		return models.SubmissionRequest{}, mapSealError(err)
	}
	if len(bundle.Handles) != len(elements) || len(bundle.Proof) == 0 {
		return models.SubmissionRequest{}, fmt.Errorf("%w: got %d handles for %d values", ErrEncryptionFailed, len(bundle.Handles), len(elements))
	}

	log.Debug().Str("func", "submissionService.Submit").
		Str("destination", destination.Hex()).
		Int("handles", len(bundle.Handles)).
		Msg("credential sealed")

	return models.SubmissionRequest{
		Name:        draft.Name,
		Handles:     bundle.Handles,
		Proof:       bundle.Proof,
		Destination: destination,
		Submitter:   submitter,
	}, nil
}

// encode flattens the draft into layout order.
func (s *submissionService) encode(draft models.CredentialDraft) ([]models.FieldElement, error) {
	elements := make([]models.FieldElement, 0, s.layout.ElementCount())
	for _, spec := range s.layout {
		encoded, err := s.codec.Encode(draft.Value(spec.ID), spec.MaxBytes, spec.Elements)
		if err != nil {
			return nil, mapCodecError(err)
		}
		elements = append(elements, encoded...)
	}
	return elements, nil
}
