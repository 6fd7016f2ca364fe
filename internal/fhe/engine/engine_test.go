package engine

import (
	"context"
	"crypto/ecdsa"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaurabViena/heirloom/internal/fhe"
	"github.com/SaurabViena/heirloom/models"
)

const testKeeperURI = "base64key://YWJjZGVmZ2hpamtsbW5vcHFyc3R1dnd4eXoxMjM0NTY="

var (
	testDestination = common.HexToAddress("0x00000000000000000000000000000000000000d1")
	otherContract   = common.HexToAddress("0x00000000000000000000000000000000000000d2")
	testDomain      = fhe.GrantDomain{ChainID: 31337, Verifier: common.HexToAddress("0x00000000000000000000000000000000000000f1")}
)

// memoryRepository is an in-memory CiphertextRepository for tests.
type memoryRepository struct {
	mu      sync.Mutex
	records map[models.Handle]models.CiphertextRecord
	acl     map[models.Handle]map[common.Address]bool
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		records: make(map[models.Handle]models.CiphertextRecord),
		acl:     make(map[models.Handle]map[common.Address]bool),
	}
}

func (m *memoryRepository) Save(_ context.Context, records []models.CiphertextRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range records {
		m.records[r.Handle] = r
	}
	return nil
}

func (m *memoryRepository) Get(_ context.Context, handles []models.Handle) (map[models.Handle]models.CiphertextRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[models.Handle]models.CiphertextRecord)
	for _, h := range handles {
		if r, ok := m.records[h]; ok {
			out[h] = r
		}
	}
	return out, nil
}

func (m *memoryRepository) Allow(_ context.Context, handles []models.Handle, account common.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, h := range handles {
		if m.acl[h] == nil {
			m.acl[h] = make(map[common.Address]bool)
		}
		m.acl[h][account] = true
	}
	return nil
}

func (m *memoryRepository) Allowed(_ context.Context, handle models.Handle, account common.Address) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.acl[handle][account], nil
}

type identity struct {
	key  *ecdsa.PrivateKey
	addr common.Address
}

func newIdentity(t *testing.T) identity {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return identity{key: key, addr: crypto.PubkeyToAddress(key.PublicKey)}
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	master, err := NewMasterKey()
	require.NoError(t, err)
	e, err := New(master, newMemoryRepository(), testDomain, opts...)
	require.NoError(t, err)
	return e
}

func sealValues(t *testing.T, e *Engine, submitter common.Address, values ...uint64) [][]byte {
	t.Helper()
	elems := make([]models.FieldElement, len(values))
	for i, v := range values {
		elems[i] = *uint256.NewInt(v)
	}
	boxes, err := fhe.SealInputs(e.NetworkKey(), testDestination, submitter, elems)
	require.NoError(t, err)
	return boxes
}

func signedRequest(t *testing.T, signer identity, viewer common.Address, kp models.Keypair, handles []models.Handle, issued time.Time, d time.Duration) UserDecryptRequest {
	t.Helper()
	grant, err := testDomain.Build(kp.PublicKey, []common.Address{testDestination}, issued, d)
	require.NoError(t, err)
	digest, err := fhe.GrantDigest(grant.TypedData)
	require.NoError(t, err)
	sig, err := crypto.Sign(digest, signer.key)
	require.NoError(t, err)

	pairs := make([]fhe.HandlePair, len(handles))
	for i, h := range handles {
		pairs[i] = fhe.HandlePair{Handle: h, Destination: testDestination}
	}
	return UserDecryptRequest{
		Pairs:        pairs,
		PublicKey:    kp.PublicKey,
		Signature:    sig,
		Destinations: []common.Address{testDestination},
		Viewer:       viewer,
		IssuedAt:     issued,
		Duration:     d,
	}
}

func TestNew_InvalidMasterKey(t *testing.T) {
	_, err := New([]byte("short"), newMemoryRepository(), testDomain)
	assert.ErrorIs(t, err, fhe.ErrInvalidKey)
}

func TestIngest_VerifyInput(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	owner := newIdentity(t)

	bundle, err := e.Ingest(ctx, testDestination, owner.addr, sealValues(t, e, owner.addr, 1, 2, 0))
	require.NoError(t, err)
	require.Len(t, bundle.Handles, 3)
	for _, h := range bundle.Handles {
		assert.False(t, h.IsEmpty())
		assert.Equal(t, byte(handleTypeUint256), h[30])
	}

	require.NoError(t, e.VerifyInput(ctx, testDestination, owner.addr, bundle))

	t.Run("other submitter", func(t *testing.T) {
		err := e.VerifyInput(ctx, testDestination, newIdentity(t).addr, bundle)
		assert.ErrorIs(t, err, fhe.ErrInvalidProof)
	})
	t.Run("other destination", func(t *testing.T) {
		err := e.VerifyInput(ctx, otherContract, owner.addr, bundle)
		assert.ErrorIs(t, err, fhe.ErrInvalidProof)
	})
	t.Run("reordered handles", func(t *testing.T) {
		swapped := models.CiphertextBundle{
			Handles: []models.Handle{bundle.Handles[1], bundle.Handles[0], bundle.Handles[2]},
			Proof:   bundle.Proof,
		}
		assert.ErrorIs(t, e.VerifyInput(ctx, testDestination, owner.addr, swapped), fhe.ErrInvalidProof)
	})
}

func TestIngest_RejectsMovedInput(t *testing.T) {
	e := newTestEngine(t)
	owner := newIdentity(t)

	boxes := sealValues(t, e, owner.addr, 5)
	_, err := e.Ingest(context.Background(), testDestination, newIdentity(t).addr, boxes)
	assert.ErrorIs(t, err, fhe.ErrSealedBox)
}

func TestIngest_ValueTooWide(t *testing.T) {
	e := newTestEngine(t, WithWidth(64))
	owner := newIdentity(t)

	wide := new(uint256.Int).Lsh(uint256.NewInt(1), 100)
	boxes, err := fhe.SealInputs(e.NetworkKey(), testDestination, owner.addr, []models.FieldElement{*wide})
	require.NoError(t, err)

	_, err = e.Ingest(context.Background(), testDestination, owner.addr, boxes)
	assert.ErrorIs(t, err, fhe.ErrValueTooWide)

	edge := new(uint256.Int).Lsh(uint256.NewInt(1), 63)
	boxes, err = fhe.SealInputs(e.NetworkKey(), testDestination, owner.addr, []models.FieldElement{*edge})
	require.NoError(t, err)
	bundle, err := e.Ingest(context.Background(), testDestination, owner.addr, boxes)
	require.NoError(t, err)
	assert.Len(t, bundle.Handles, 1)
}

func TestUserDecrypt(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1_750_000_000, 0)
	e := newTestEngine(t, WithClock(func() time.Time { return now }))
	owner := newIdentity(t)
	heir := newIdentity(t)

	bundle, err := e.Ingest(ctx, testDestination, owner.addr, sealValues(t, e, owner.addr, 42, 7))
	require.NoError(t, err)

	kp, err := fhe.GenerateKeypair()
	require.NoError(t, err)

	t.Run("owner reads", func(t *testing.T) {
		sealed, err := e.UserDecrypt(ctx, signedRequest(t, owner, owner.addr, kp, bundle.Handles, now, time.Hour))
		require.NoError(t, err)
		values, err := fhe.OpenResults(kp, sealed)
		require.NoError(t, err)
		v0 := values[bundle.Handles[0]]
		v1 := values[bundle.Handles[1]]
		assert.Equal(t, uint64(42), v0.Uint64())
		assert.Equal(t, uint64(7), v1.Uint64())
	})

	t.Run("heir without access", func(t *testing.T) {
		_, err := e.UserDecrypt(ctx, signedRequest(t, heir, heir.addr, kp, bundle.Handles, now, time.Hour))
		assert.ErrorIs(t, err, fhe.ErrGrantRejected)
	})

	t.Run("heir after allow", func(t *testing.T) {
		require.NoError(t, e.Allow(ctx, bundle.Handles[:1], heir.addr))
		_, err := e.UserDecrypt(ctx, signedRequest(t, heir, heir.addr, kp, bundle.Handles[:1], now, time.Hour))
		assert.NoError(t, err)
	})

	t.Run("expired grant", func(t *testing.T) {
		_, err := e.UserDecrypt(ctx, signedRequest(t, owner, owner.addr, kp, bundle.Handles, now.Add(-2*time.Hour), time.Hour))
		assert.ErrorIs(t, err, fhe.ErrGrantExpired)
	})

	t.Run("future grant", func(t *testing.T) {
		_, err := e.UserDecrypt(ctx, signedRequest(t, owner, owner.addr, kp, bundle.Handles, now.Add(time.Hour), time.Hour))
		assert.ErrorIs(t, err, fhe.ErrGrantRejected)
	})

	t.Run("signed by someone else", func(t *testing.T) {
		_, err := e.UserDecrypt(ctx, signedRequest(t, heir, owner.addr, kp, bundle.Handles, now, time.Hour))
		assert.ErrorIs(t, err, fhe.ErrGrantRejected)
	})

	t.Run("destination not covered", func(t *testing.T) {
		req := signedRequest(t, owner, owner.addr, kp, bundle.Handles, now, time.Hour)
		req.Pairs[0].Destination = otherContract
		_, err := e.UserDecrypt(ctx, req)
		assert.ErrorIs(t, err, fhe.ErrGrantRejected)
	})

	t.Run("unknown handle", func(t *testing.T) {
		var ghost models.Handle
		ghost[0] = 0xee
		_, err := e.UserDecrypt(ctx, signedRequest(t, owner, owner.addr, kp, []models.Handle{ghost}, now, time.Hour))
		assert.ErrorIs(t, err, fhe.ErrUnknownHandle)
	})
}

func TestAllow_UnknownHandle(t *testing.T) {
	e := newTestEngine(t)
	var ghost models.Handle
	ghost[1] = 1
	err := e.Allow(context.Background(), []models.Handle{ghost}, newIdentity(t).addr)
	assert.ErrorIs(t, err, fhe.ErrUnknownHandle)
	assert.NoError(t, e.Allow(context.Background(), nil, common.Address{}))
}

func TestLocalSession_RoundTrip(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	s := NewLocalSession(e)
	owner := newIdentity(t)

	require.NoError(t, s.Ready(ctx))

	bundle, err := s.CreateBatch(testDestination, owner.addr).
		Append(*uint256.NewInt(0x626f62)).
		Append(*uint256.NewInt(0)).
		Seal(ctx)
	require.NoError(t, err)
	require.NoError(t, s.VerifyInput(ctx, testDestination, owner.addr, bundle))

	kp, err := s.GenerateKeypair()
	require.NoError(t, err)
	issued := time.Now()
	grant, err := s.BuildGrant(kp.PublicKey, []common.Address{testDestination}, issued, time.Hour)
	require.NoError(t, err)
	digest, err := fhe.GrantDigest(grant.TypedData)
	require.NoError(t, err)
	sig, err := crypto.Sign(digest, owner.key)
	require.NoError(t, err)

	values, err := s.DecryptBatch(ctx, fhe.DecryptRequest{
		Pairs:        []fhe.HandlePair{{Handle: bundle.Handles[0], Destination: testDestination}},
		Keypair:      kp,
		Signature:    sig,
		Destinations: []common.Address{testDestination},
		Viewer:       owner.addr,
		IssuedAt:     grant.IssuedAt,
		Duration:     grant.Duration,
	})
	require.NoError(t, err)
	v := values[bundle.Handles[0]]
	assert.Equal(t, uint64(0x626f62), v.Uint64())
}

func TestLocalSession_NotReady(t *testing.T) {
	err := NewLocalSession(nil).Ready(context.Background())
	assert.ErrorIs(t, err, fhe.ErrNotReady)
}

func TestMasterKeyWrapping(t *testing.T) {
	ctx := context.Background()
	master, err := NewMasterKey()
	require.NoError(t, err)

	wrapped, err := WrapMasterKey(ctx, testKeeperURI, master)
	require.NoError(t, err)
	assert.NotEmpty(t, wrapped)

	unwrapped, err := UnwrapMasterKey(ctx, testKeeperURI, wrapped)
	require.NoError(t, err)
	assert.Equal(t, master, unwrapped)

	_, err = UnwrapMasterKey(ctx, testKeeperURI, "%%%")
	assert.Error(t, err)
}
