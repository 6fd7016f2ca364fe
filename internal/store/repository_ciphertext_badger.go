package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fxamacker/cbor/v2"

	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/models"
)

const (
	ciphertextPrefix = "ct/"
	aclPrefix        = "acl/"
)

// BadgerDB is an embedded key-value store for a single-node gateway.
type BadgerDB struct {
	*badger.DB
	logger *logger.Logger
}

// NewBadgerDB opens (or creates) a badger store in dir. An empty dir keeps
// everything in memory.
func NewBadgerDB(dir string, log *logger.Logger) (*BadgerDB, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		log.Err(err).Str("func", "NewBadgerDB").Str("dir", dir).Msg("failed to open badger store")
		return nil, fmt.Errorf("open badger store: %w", err)
	}
	log.Info().Str("func", "NewBadgerDB").Str("dir", dir).Msg("opened badger store")

	return &BadgerDB{DB: db, logger: log}, nil
}

// CollectGarbage rewrites value log files until badger reports nothing left
// to reclaim. In-memory stores have no value log and return immediately.
func (b *BadgerDB) CollectGarbage(discardRatio float64) (int, error) {
	if b.Opts().InMemory {
		return 0, nil
	}
	rewritten := 0
	for {
		err := b.RunValueLogGC(discardRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrRejected) {
			return rewritten, nil
		}
		if err != nil {
			return rewritten, err
		}
		rewritten++
	}
}

// badgerRecord is the CBOR value stored under ct/<handle>.
type badgerRecord struct {
	Destination []byte `cbor:"1,keyasint"`
	Owner       []byte `cbor:"2,keyasint"`
	Ciphertext  []byte `cbor:"3,keyasint"`
	CreatedAt   int64  `cbor:"4,keyasint"`
}

type badgerCiphertextRepository struct {
	db *BadgerDB
}

// NewBadgerCiphertextRepository returns a [CiphertextRepository] on db.
func NewBadgerCiphertextRepository(db *BadgerDB) CiphertextRepository {
	return &badgerCiphertextRepository{db: db}
}

func ciphertextKey(h models.Handle) []byte {
	return append([]byte(ciphertextPrefix), h[:]...)
}

func aclKey(h models.Handle, account common.Address) []byte {
	key := append([]byte(aclPrefix), h[:]...)
	return append(key, account.Bytes()...)
}

func (r *badgerCiphertextRepository) Save(ctx context.Context, records []models.CiphertextRecord) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		for _, rec := range records {
			key := ciphertextKey(rec.Handle)
			if _, err := txn.Get(key); err == nil {
				return ErrHandleExists
			} else if !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}

			value, err := cbor.Marshal(badgerRecord{
				Destination: rec.Destination.Bytes(),
				Owner:       rec.Owner.Bytes(),
				Ciphertext:  rec.Ciphertext,
				CreatedAt:   rec.CreatedAt.UnixNano(),
			})
			if err != nil {
				return fmt.Errorf("encode record: %w", err)
			}
			if err = txn.Set(key, value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrHandleExists) {
		logger.FromContext(ctx).Err(err).Str("func", "badgerCiphertextRepository.Save").Msg("failed to save ciphertexts")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return err
}

func (r *badgerCiphertextRepository) Get(ctx context.Context, handles []models.Handle) (map[models.Handle]models.CiphertextRecord, error) {
	result := make(map[models.Handle]models.CiphertextRecord, len(handles))
	err := r.db.View(func(txn *badger.Txn) error {
		for _, h := range handles {
			item, err := txn.Get(ciphertextKey(h))
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			if err != nil {
				return err
			}

			var stored badgerRecord
			if err = item.Value(func(val []byte) error {
				return cbor.Unmarshal(val, &stored)
			}); err != nil {
				return fmt.Errorf("decode record %s: %w", h, err)
			}

			result[h] = models.CiphertextRecord{
				Handle:      h,
				Destination: common.BytesToAddress(stored.Destination),
				Owner:       common.BytesToAddress(stored.Owner),
				Ciphertext:  stored.Ciphertext,
				CreatedAt:   time.Unix(0, stored.CreatedAt).UTC(),
			}
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "badgerCiphertextRepository.Get").Msg("failed to read ciphertexts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return result, nil
}

func (r *badgerCiphertextRepository) Allow(ctx context.Context, handles []models.Handle, account common.Address) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		for _, h := range handles {
			if _, err := txn.Get(ciphertextKey(h)); errors.Is(err, badger.ErrKeyNotFound) {
				return ErrCiphertextNotFound
			} else if err != nil {
				return err
			}
			if err := txn.Set(aclKey(h, account), nil); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrCiphertextNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "badgerCiphertextRepository.Allow").Msg("failed to update acl")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return err
}

func (r *badgerCiphertextRepository) Allowed(ctx context.Context, handle models.Handle, account common.Address) (bool, error) {
	allowed := false
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(aclKey(handle, account))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		allowed = true
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "badgerCiphertextRepository.Allowed").Msg("failed to read acl")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return allowed, nil
}
