package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/SaurabViena/heirloom/internal/codec"
	"github.com/SaurabViena/heirloom/internal/fhe"
	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/models"
)

// DecryptionRequest asks for the plaintext behind refs. Viewer defaults to
// the signer's address.
type DecryptionRequest struct {
	Refs        []models.HandleRef
	Viewer      common.Address
	Destination common.Address
	Signer      Signer
	Observer    Observer
}

// RevealRequest asks for credential Index of Owner.
type RevealRequest struct {
	Owner       common.Address
	Index       uint64
	Viewer      common.Address
	Destination common.Address
	Signer      Signer
	Observer    Observer
}

// DecryptionOption configures a decryption service.
type DecryptionOption func(*decryptionService)

// WithGrantDuration sets how long a minted grant stays valid. Non-positive
// values keep the default.
func WithGrantDuration(d time.Duration) DecryptionOption {
	return func(s *decryptionService) {
		if d > 0 {
			s.grantDuration = d
		}
	}
}

// WithDecryptionTimeout bounds the batch decryption call. Non-positive
// values keep the default.
func WithDecryptionTimeout(d time.Duration) DecryptionOption {
	return func(s *decryptionService) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) DecryptionOption {
	return func(s *decryptionService) { s.now = now }
}

const (
	DefaultGrantDuration     = 24 * time.Hour
	DefaultDecryptionTimeout = 60 * time.Second
)

type decryptionService struct {
	session       fhe.Session
	ledger        Ledger
	codec         *codec.Codec
	layout        models.CredentialLayout
	grantDuration time.Duration
	timeout       time.Duration
	now           func() time.Time
	logger        *logger.Logger
}

// NewDecryptionService returns the authorized decryption pipeline. ledger
// is only used by Reveal.
func NewDecryptionService(session fhe.Session, ledger Ledger, c *codec.Codec, log *logger.Logger, opts ...DecryptionOption) DecryptionService {
	s := &decryptionService{
		session:       session,
		ledger:        ledger,
		codec:         c,
		layout:        models.DefaultLayout,
		grantDuration: DefaultGrantDuration,
		timeout:       DefaultDecryptionTimeout,
		now:           time.Now,
		logger:        log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *decryptionService) Decrypt(ctx context.Context, req DecryptionRequest) (models.Revealed, error) {
	return s.run(ctx, req, func(context.Context) ([]models.HandleRef, error) {
		return req.Refs, nil
	})
}

func (s *decryptionService) Reveal(ctx context.Context, req RevealRequest) (models.Revealed, error) {
	dr := DecryptionRequest{
		Viewer:      req.Viewer,
		Destination: req.Destination,
		Signer:      req.Signer,
		Observer:    req.Observer,
	}
	return s.run(ctx, dr, func(ctx context.Context) ([]models.HandleRef, error) {
		viewer := dr.Viewer
		if viewer == (common.Address{}) && dr.Signer != nil {
			viewer = dr.Signer.Address()
		}
		handles, err := s.ledger.CredentialHandles(ctx, viewer, req.Owner, req.Index)
		if err != nil {
			return nil, err
		}
		return s.layout.Bind(handles), nil
	})
}

// run drives one attempt from Idle to exactly one terminal state.
func (s *decryptionService) run(ctx context.Context, req DecryptionRequest, fetch func(context.Context) ([]models.HandleRef, error)) (models.Revealed, error) {
	log := logger.FromContext(ctx)
	t := &transitions{observer: req.Observer, state: models.StateIdle}

	viewer := req.Viewer
	if viewer == (common.Address{}) && req.Signer != nil {
		viewer = req.Signer.Address()
	}

	t.to(models.StateFetchingHandles)
	refs, err := fetch(ctx)
	if err != nil {
		t.to(models.StateFailed)
		return nil, fmt.Errorf("fetch handles: %w", err)
	}

	pairs := make([]fhe.HandlePair, 0, len(refs))
	for _, ref := range refs {
		if !ref.Handle.IsEmpty() {
			pairs = append(pairs, fhe.HandlePair{Handle: ref.Handle, Destination: req.Destination})
		}
	}
	if len(pairs) == 0 {
		t.to(models.StateAllEmpty)
		t.to(models.StateDone)
		return s.reassemble(refs, nil), nil
	}

	if err = s.session.Ready(ctx); err != nil {
		t.to(models.StateFailed)
		return nil, mapSessionError(err, ErrAdapterNotReady)
	}

	t.to(models.StateRequestingSignature)
	if req.Signer == nil {
		t.to(models.StateCancelled)
		return nil, fmt.Errorf("%w: no signer", ErrUserCancelled)
	}
	keypair, err := s.session.GenerateKeypair()
	if err != nil {
		t.to(models.StateFailed)
		return nil, fmt.Errorf("%w: generate keypair: %v", ErrDecryptionFailed, err)
	}
	grant, err := s.session.BuildGrant(keypair.PublicKey, []common.Address{req.Destination}, s.now(), s.grantDuration)
	if err != nil {
		t.to(models.StateFailed)
		return nil, fmt.Errorf("%w: build grant: %v", ErrDecryptionFailed, err)
	}

	signature, err := req.Signer.SignTypedData(ctx, grant.TypedData)
	if err != nil {
		if refused(err) {
			t.to(models.StateCancelled)
			log.Info().Str("func", "decryptionService.run").Err(err).Msg("grant signature declined")
			return nil, fmt.Errorf("%w: %v", ErrUserCancelled, err)
		}
		t.to(models.StateFailed)
		log.Err(err).Str("func", "decryptionService.run").Msg("signer failed")
		return nil, fmt.Errorf("%w: sign grant: %v", ErrDecryptionFailed, err)
	}

	t.to(models.StateSigning)
	signer, err := fhe.RecoverGrantSigner(grant.TypedData, signature)
	if err != nil || signer != viewer {
		t.to(models.StateFailed)
		return nil, fmt.Errorf("%w: signature does not recover to %s", ErrGrantRejected, viewer.Hex())
	}

	t.to(models.StateDecrypting)
	values, err := s.decryptWithTimeout(ctx, fhe.DecryptRequest{
		Pairs:        pairs,
		Keypair:      keypair,
		Signature:    signature,
		Destinations: grant.Destinations,
		Viewer:       viewer,
		IssuedAt:     grant.IssuedAt,
		Duration:     grant.Duration,
	})
	if err != nil {
		if errors.Is(err, ErrDecryptionTimedOut) {
			t.to(models.StateTimedOut)
		} else {
			t.to(models.StateFailed)
		}
		log.Err(err).Str("func", "decryptionService.run").Int("handles", len(pairs)).Msg("batch decryption failed")
		return nil, err
	}

	t.to(models.StateReassembling)
	revealed := s.reassemble(refs, values)
	t.to(models.StateDone)

	return revealed, nil
}

// refused tells a declined signature request apart from a broken signer.
func refused(err error) bool {
	return errors.Is(err, ErrSignatureRefused) || errors.Is(err, context.Canceled)
}

// decryptWithTimeout races DecryptBatch against the decryption timeout. The
// call runs on its own goroutine so a session that ignores ctx cannot hold
// the pipeline past the deadline.
func (s *decryptionService) decryptWithTimeout(ctx context.Context, req fhe.DecryptRequest) (map[models.Handle]models.FieldElement, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type result struct {
		values map[models.Handle]models.FieldElement
		err    error
	}
	done := make(chan result, 1)
	go func() {
		values, err := s.session.DecryptBatch(ctx, req)
		done <- result{values: values, err: err}
	}()

	select {
	case r := <-done:
		if r.err == nil {
			return r.values, nil
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", ErrDecryptionTimedOut, s.timeout)
		}
		return nil, mapSessionError(r.err, ErrDecryptionFailed)
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", ErrDecryptionTimedOut, s.timeout)
		}
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, ctx.Err())
	}
}

// reassemble groups values per attribute in ref order and decodes them.
// Empty or missing handles contribute zero.
func (s *decryptionService) reassemble(refs []models.HandleRef, values map[models.Handle]models.FieldElement) models.Revealed {
	groups := make(map[models.AttributeID][]models.FieldElement, len(s.layout))
	for _, ref := range refs {
		var v models.FieldElement
		if !ref.Handle.IsEmpty() {
			v = values[ref.Handle]
		}
		groups[ref.Attribute] = append(groups[ref.Attribute], v)
	}

	out := make(models.Revealed, len(s.layout))
	for _, spec := range s.layout {
		out[spec.ID] = s.codec.Decode(groups[spec.ID])
	}
	return out
}

// transitions publishes state changes to an optional observer.
type transitions struct {
	observer Observer
	state    models.DecryptionState
}

func (t *transitions) to(next models.DecryptionState) {
	prev := t.state
	t.state = next
	if t.observer != nil {
		t.observer.OnTransition(prev, next)
	}
}
