package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgerrcode"

	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/models"
)

type ciphertextRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCiphertextRepository returns a PostgreSQL-backed ciphertext repository
// for the gateway engine.
func NewCiphertextRepository(db *DB, log *logger.Logger) CiphertextRepository {
	return &ciphertextRepository{db: db, logger: log}
}

func (c *ciphertextRepository) Save(ctx context.Context, records []models.CiphertextRecord) error {
	if len(records) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCiphertextsQuery(records)
	if err != nil {
		return err
	}

	_, err = c.db.ExecContext(ctx, query, args...)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return ErrHandleExists
		}
		log.Err(err).Str("func", "ciphertextRepository.Save").
			Int("records", len(records)).
			Bool("retryable", c.db.retryable(err)).
			Msg("failed to insert ciphertexts")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (c *ciphertextRepository) Get(ctx context.Context, handles []models.Handle) (map[models.Handle]models.CiphertextRecord, error) {
	result := make(map[models.Handle]models.CiphertextRecord, len(handles))
	if len(handles) == 0 {
		return result, nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCiphertextsQuery(handles)
	if err != nil {
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "ciphertextRepository.Get").
			Bool("retryable", c.db.retryable(err)).
			Msg("failed to select ciphertexts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rec                        models.CiphertextRecord
			handle, destination, owner string
			createdAt                  time.Time
		)
		if err = rows.Scan(&handle, &destination, &owner, &rec.Ciphertext, &createdAt); err != nil {
			log.Err(err).Str("func", "ciphertextRepository.Get").Msg("failed to scan ciphertext")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if rec.Handle, err = models.ParseHandle(handle); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		rec.Destination = common.HexToAddress(destination)
		rec.Owner = common.HexToAddress(owner)
		rec.CreatedAt = createdAt.UTC()
		result[rec.Handle] = rec
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (c *ciphertextRepository) Allow(ctx context.Context, handles []models.Handle, account common.Address) error {
	if len(handles) == 0 {
		return nil
	}

	query, args, err := buildInsertACLQuery(handles, account)
	if err != nil {
		return err
	}

	_, err = c.db.ExecContext(ctx, query, args...)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrCiphertextNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "ciphertextRepository.Allow").
			Str("account", account.Hex()).
			Bool("retryable", c.db.retryable(err)).
			Msg("failed to insert acl entries")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (c *ciphertextRepository) Allowed(ctx context.Context, handle models.Handle, account common.Address) (bool, error) {
	var allowed bool
	if err := c.db.QueryRowContext(ctx, selectAllowed, handle.Hex(), account.Hex()).Scan(&allowed); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "ciphertextRepository.Allowed").Msg("failed to query acl")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return allowed, nil
}
