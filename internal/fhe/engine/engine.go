// Package engine is a software stand-in for the homomorphic-encryption
// service used in development and tests. It keeps each value encrypted at
// rest, issues handles and input proofs, tracks per-handle access lists and
// serves signed user-decryption requests by re-sealing values to the
// requester's ephemeral key. It performs no homomorphic computation.
package engine

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/SaurabViena/heirloom/internal/codec"
	"github.com/SaurabViena/heirloom/internal/fhe"
	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/models"
)

const (
	// handleTypeUint256 tags handles of 256-bit encrypted integers.
	handleTypeUint256 = 0x08
	handleVersion     = 0x00

	proofDomain = "heirloom/input-proof/v1"
	macSize     = sha256.Size

	// maxBatchSize bounds one Ingest call; the proof header stores the count in one byte.
	maxBatchSize = 255

	defaultMaxClockSkew = 5 * time.Minute
)

// UserDecryptRequest is a signed request to re-encrypt handles to PublicKey.
type UserDecryptRequest struct {
	Pairs        []fhe.HandlePair
	PublicKey    []byte
	Signature    []byte
	Destinations []common.Address
	Viewer       common.Address
	IssuedAt     time.Time
	Duration     time.Duration
}

// Engine implements Gateway.
type Engine struct {
	keys   *keyring
	repo   CiphertextRepository
	domain fhe.GrantDomain
	width  int
	codec  *codec.Codec
	skew   time.Duration
	now    func() time.Time
	logger *logger.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source used for grant expiry.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithWidth sets the element width in bits accepted by Ingest.
func WithWidth(bits int) Option {
	return func(e *Engine) { e.width = bits }
}

// WithMaxClockSkew sets how far in the future a grant's start may lie.
func WithMaxClockSkew(d time.Duration) Option {
	return func(e *Engine) { e.skew = d }
}

// WithLogger sets the engine logger.
func WithLogger(l *logger.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New builds an Engine from a 32-byte master key.
func New(master []byte, repo CiphertextRepository, domain fhe.GrantDomain, opts ...Option) (*Engine, error) {
	keys, err := deriveKeyring(master)
	if err != nil {
		return nil, fmt.Errorf("derive engine keys: %w", err)
	}

	e := &Engine{
		keys:   keys,
		repo:   repo,
		domain: domain,
		width:  models.DefaultWidthBits,
		skew:   defaultMaxClockSkew,
		now:    time.Now,
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.codec, err = codec.New(e.width); err != nil {
		return nil, fmt.Errorf("%w: %w", fhe.ErrInvalidKey, err)
	}
	return e, nil
}

// NetworkKey returns the X25519 public key clients seal inputs to.
func (e *Engine) NetworkKey() []byte {
	return append([]byte(nil), e.keys.network.PublicKey...)
}

// Domain returns the EIP-712 domain grants must be signed under.
func (e *Engine) Domain() fhe.GrantDomain {
	return e.domain
}

// WidthBits returns the maximum bit length of an ingested value.
func (e *Engine) WidthBits() int {
	return e.width
}

// Ingest opens sealed inputs, stores them encrypted at rest and returns their
// handles with a proof bound to (destination, submitter). The submitter is
// put on the access list of every new handle.
func (e *Engine) Ingest(ctx context.Context, destination, submitter common.Address, inputs [][]byte) (models.CiphertextBundle, error) {
	log := logger.FromContext(ctx)

	if len(inputs) == 0 || len(inputs) > maxBatchSize {
		return models.CiphertextBundle{}, fmt.Errorf("%w: batch of %d inputs", fhe.ErrEncryptionFailed, len(inputs))
	}

	now := e.now().UTC()
	records := make([]models.CiphertextRecord, len(inputs))
	handles := make([]models.Handle, len(inputs))
	for i, box := range inputs {
		plain, err := fhe.Open(e.keys.network, box, fhe.InputAAD(destination, submitter, i))
		if err != nil {
			log.Err(err).Str("func", "*Engine.Ingest").Int("input", i).Msg("cannot open sealed input")
			return models.CiphertextBundle{}, fmt.Errorf("open input %d: %w", i, err)
		}
		if err := e.checkWidth(plain); err != nil {
			return models.CiphertextBundle{}, fmt.Errorf("input %d: %w", i, err)
		}

		handle := deriveHandle(destination, submitter, i, box)
		ciphertext, err := e.encryptAtRest(handle, plain)
		if err != nil {
			return models.CiphertextBundle{}, err
		}

		handles[i] = handle
		records[i] = models.CiphertextRecord{
			Handle:      handle,
			Destination: destination,
			Owner:       submitter,
			Ciphertext:  ciphertext,
			CreatedAt:   now,
		}
	}

	if err := e.repo.Save(ctx, records); err != nil {
		return models.CiphertextBundle{}, fmt.Errorf("save ciphertexts: %w", err)
	}
	if err := e.repo.Allow(ctx, handles, submitter); err != nil {
		return models.CiphertextBundle{}, fmt.Errorf("allow submitter: %w", err)
	}

	log.Debug().Str("func", "*Engine.Ingest").
		Str("destination", destination.Hex()).
		Int("handles", len(handles)).
		Msg("inputs ingested")

	return models.CiphertextBundle{Handles: handles, Proof: e.buildProof(destination, submitter, handles)}, nil
}

// VerifyInput checks that bundle was issued by Ingest for exactly this
// destination and submitter.
func (e *Engine) VerifyInput(ctx context.Context, destination, submitter common.Address, bundle models.CiphertextBundle) error {
	if len(bundle.Handles) == 0 || len(bundle.Handles) > maxBatchSize {
		return fmt.Errorf("%w: %d handles", fhe.ErrInvalidProof, len(bundle.Handles))
	}
	want := e.buildProof(destination, submitter, bundle.Handles)
	if !hmac.Equal(want, bundle.Proof) {
		return fmt.Errorf("%w: proof does not match destination, submitter and handles", fhe.ErrInvalidProof)
	}

	records, err := e.repo.Get(ctx, bundle.Handles)
	if err != nil {
		return fmt.Errorf("load ciphertexts: %w", err)
	}
	for _, h := range bundle.Handles {
		rec, ok := records[h]
		if !ok {
			return fmt.Errorf("%w: %s", fhe.ErrUnknownHandle, h)
		}
		if rec.Destination != destination || rec.Owner != submitter {
			return fmt.Errorf("%w: handle %s belongs to another scope", fhe.ErrInvalidProof, h)
		}
	}
	return nil
}

// Allow puts account on the access list of handles. Every handle must exist.
func (e *Engine) Allow(ctx context.Context, handles []models.Handle, account common.Address) error {
	if len(handles) == 0 {
		return nil
	}
	records, err := e.repo.Get(ctx, handles)
	if err != nil {
		return fmt.Errorf("load ciphertexts: %w", err)
	}
	for _, h := range handles {
		if _, ok := records[h]; !ok {
			return fmt.Errorf("%w: %s", fhe.ErrUnknownHandle, h)
		}
	}
	if err := e.repo.Allow(ctx, handles, account); err != nil {
		return fmt.Errorf("allow %s: %w", account.Hex(), err)
	}
	return nil
}

// UserDecrypt validates the grant carried by req and returns every requested
// value sealed to req.PublicKey, keyed by handle.
func (e *Engine) UserDecrypt(ctx context.Context, req UserDecryptRequest) (map[models.Handle][]byte, error) {
	log := logger.FromContext(ctx)

	grant, err := e.domain.Build(req.PublicKey, req.Destinations, req.IssuedAt, req.Duration)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fhe.ErrGrantRejected, err)
	}

	now := e.now()
	if grant.Expired(now) {
		return nil, fmt.Errorf("%w: expired at %s", fhe.ErrGrantExpired, grant.ExpiresAt().UTC().Format(time.RFC3339))
	}
	if grant.IssuedAt.After(now.Add(e.skew)) {
		return nil, fmt.Errorf("%w: grant starts in the future", fhe.ErrGrantRejected)
	}

	signer, err := fhe.RecoverGrantSigner(grant.TypedData, req.Signature)
	if err != nil {
		return nil, err
	}
	if signer != req.Viewer {
		log.Warn().Str("func", "*Engine.UserDecrypt").
			Str("viewer", req.Viewer.Hex()).
			Str("signer", signer.Hex()).
			Msg("grant signed by another account")
		return nil, fmt.Errorf("%w: signature does not belong to viewer", fhe.ErrGrantRejected)
	}

	handles := make([]models.Handle, len(req.Pairs))
	for i, p := range req.Pairs {
		handles[i] = p.Handle
	}
	records, err := e.repo.Get(ctx, handles)
	if err != nil {
		return nil, fmt.Errorf("load ciphertexts: %w", err)
	}

	out := make(map[models.Handle][]byte, len(req.Pairs))
	for _, p := range req.Pairs {
		rec, ok := records[p.Handle]
		if !ok {
			return nil, fmt.Errorf("%w: %s", fhe.ErrUnknownHandle, p.Handle)
		}
		if rec.Destination != p.Destination || !grant.Covers(p.Destination) {
			return nil, fmt.Errorf("%w: destination %s not covered", fhe.ErrGrantRejected, p.Destination.Hex())
		}
		allowed, err := e.repo.Allowed(ctx, p.Handle, req.Viewer)
		if err != nil {
			return nil, fmt.Errorf("check access list: %w", err)
		}
		if !allowed {
			return nil, fmt.Errorf("%w: %s may not read %s", fhe.ErrGrantRejected, req.Viewer.Hex(), p.Handle)
		}

		plain, err := e.decryptAtRest(rec)
		if err != nil {
			return nil, err
		}
		box, err := fhe.Seal(req.PublicKey, plain, p.Handle[:])
		if err != nil {
			return nil, fmt.Errorf("%w: seal result: %w", fhe.ErrDecryptionFailed, err)
		}
		out[p.Handle] = box
	}

	log.Debug().Str("func", "*Engine.UserDecrypt").
		Str("viewer", req.Viewer.Hex()).
		Int("handles", len(out)).
		Msg("user decryption served")
	return out, nil
}

func (e *Engine) checkWidth(plain []byte) error {
	if len(plain) != 32 {
		return fmt.Errorf("%w: input must be a 32-byte word", fhe.ErrValueTooWide)
	}
	var v models.FieldElement
	v.SetBytes(plain)
	if !e.codec.Fits(&v) {
		return fmt.Errorf("%w: %d bits > %d", fhe.ErrValueTooWide, v.BitLen(), e.width)
	}
	return nil
}

func (e *Engine) encryptAtRest(handle models.Handle, plain []byte) ([]byte, error) {
	nonce := make([]byte, e.keys.data.NonceSize(), e.keys.data.NonceSize()+len(plain)+e.keys.data.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("read nonce: %w", err)
	}
	return e.keys.data.Seal(nonce, nonce, plain, handle[:]), nil
}

func (e *Engine) decryptAtRest(rec models.CiphertextRecord) ([]byte, error) {
	ns := e.keys.data.NonceSize()
	if len(rec.Ciphertext) < ns {
		return nil, fmt.Errorf("%w: ciphertext of %s is truncated", fhe.ErrDecryptionFailed, rec.Handle)
	}
	plain, err := e.keys.data.Open(nil, rec.Ciphertext[:ns], rec.Ciphertext[ns:], rec.Handle[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fhe.ErrDecryptionFailed, err)
	}
	return plain, nil
}

// buildProof returns count || handles || HMAC(proofKey, domain, destination, submitter, count, handles).
func (e *Engine) buildProof(destination, submitter common.Address, handles []models.Handle) models.Proof {
	mac := hmac.New(sha256.New, e.keys.proof)
	mac.Write([]byte(proofDomain))
	mac.Write(destination.Bytes())
	mac.Write(submitter.Bytes())
	mac.Write(binary.BigEndian.AppendUint32(nil, uint32(len(handles))))
	for _, h := range handles {
		mac.Write(h[:])
	}

	proof := make([]byte, 0, 1+len(handles)*models.HandleLength+macSize)
	proof = append(proof, byte(len(handles)))
	for _, h := range handles {
		proof = append(proof, h[:]...)
	}
	return mac.Sum(proof)
}

func deriveHandle(destination, submitter common.Address, index int, box []byte) models.Handle {
	digest := crypto.Keccak256(
		destination.Bytes(),
		submitter.Bytes(),
		binary.BigEndian.AppendUint32(nil, uint32(index)),
		box,
	)
	var h models.Handle
	copy(h[:], digest)
	h[30] = handleTypeUint256
	h[31] = handleVersion
	return h
}
