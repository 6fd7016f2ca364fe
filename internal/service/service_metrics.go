package service

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/SaurabViena/heirloom/internal/metrics"
	"github.com/SaurabViena/heirloom/models"
)

const (
	submissionMetricsDomain = "submission"
	decryptionMetricsDomain = "decryption"
)

type submissionWithMetrics struct {
	next    SubmissionService
	metrics metrics.BusinessMetrics
}

// NewSubmissionServiceWithMetrics wraps next with operation metrics.
func NewSubmissionServiceWithMetrics(next SubmissionService, m metrics.BusinessMetrics) SubmissionService {
	return &submissionWithMetrics{next: next, metrics: m}
}

func (s *submissionWithMetrics) Submit(ctx context.Context, draft models.CredentialDraft, destination, submitter common.Address) (models.SubmissionRequest, error) {
	start := time.Now()
	req, err := s.next.Submit(ctx, draft, destination, submitter)
	metrics.Observe(ctx, s.metrics, submissionMetricsDomain, "submit", start, err)
	return req, err
}

type decryptionWithMetrics struct {
	next    DecryptionService
	metrics metrics.BusinessMetrics
}

// NewDecryptionServiceWithMetrics wraps next with operation metrics. A
// declined signature is not counted as an error.
func NewDecryptionServiceWithMetrics(next DecryptionService, m metrics.BusinessMetrics) DecryptionService {
	return &decryptionWithMetrics{next: next, metrics: m}
}

func (s *decryptionWithMetrics) Decrypt(ctx context.Context, req DecryptionRequest) (models.Revealed, error) {
	start := time.Now()
	revealed, err := s.next.Decrypt(ctx, req)
	metrics.Observe(ctx, s.metrics, decryptionMetricsDomain, "decrypt", start, countedError(err))
	return revealed, err
}

func (s *decryptionWithMetrics) Reveal(ctx context.Context, req RevealRequest) (models.Revealed, error) {
	start := time.Now()
	revealed, err := s.next.Reveal(ctx, req)
	metrics.Observe(ctx, s.metrics, decryptionMetricsDomain, "reveal", start, countedError(err))
	return revealed, err
}

func countedError(err error) error {
	if errors.Is(err, ErrUserCancelled) {
		return nil
	}
	return err
}
