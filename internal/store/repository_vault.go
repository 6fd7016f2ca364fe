package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/models"
)

type vaultRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewVaultRepository returns a [VaultRepository] backed by db.
func NewVaultRepository(db *DB, log *logger.Logger) VaultRepository {
	return &vaultRepository{db: db, logger: log}
}

func (v *vaultRepository) CreateCredential(ctx context.Context, req models.SubmissionRequest, createdAt time.Time) (uint64, error) {
	log := logger.FromContext(ctx)
	owner := req.Submitter.Hex()

	tx, err := v.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.CreateCredential").Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var index uint64
	if err = tx.QueryRowContext(ctx, nextCredentialIndex, owner).Scan(&index); err != nil {
		log.Err(err).Str("func", "vaultRepository.CreateCredential").Str("owner", owner).Msg("failed to read next credential index")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, err = tx.ExecContext(ctx, insertCredential, owner, index, req.Name, []byte(req.Proof), createdAt.Unix()); err != nil {
		log.Err(err).Str("func", "vaultRepository.CreateCredential").Str("owner", owner).Uint64("index", index).Msg("failed to insert credential")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for position, handle := range req.Handles {
		if _, err = tx.ExecContext(ctx, insertCredentialHandle, owner, index, position, handle.Hex()); err != nil {
			log.Err(err).Str("func", "vaultRepository.CreateCredential").Int("position", position).Msg("failed to insert credential handle")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "vaultRepository.CreateCredential").Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return index, nil
}

func (v *vaultRepository) CredentialCount(ctx context.Context, owner common.Address) (uint64, error) {
	var count uint64
	if err := v.db.QueryRowContext(ctx, countCredentials, owner.Hex()).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "vaultRepository.CredentialCount").Msg("failed to count credentials")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return count, nil
}

func (v *vaultRepository) CredentialNames(ctx context.Context, owner common.Address) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := v.db.QueryContext(ctx, selectCredentialNames, owner.Hex())
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.CredentialNames").Msg("failed to select credential names")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			log.Err(err).Str("func", "vaultRepository.CredentialNames").Msg("failed to scan credential name")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		names = append(names, name)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return names, nil
}

func (v *vaultRepository) CredentialMeta(ctx context.Context, owner common.Address, index uint64) (models.CredentialMeta, error) {
	var (
		meta      models.CredentialMeta
		ownerHex  string
		createdAt int64
	)

	err := v.db.QueryRowContext(ctx, selectCredentialMeta, owner.Hex(), index).
		Scan(&ownerHex, &meta.Index, &meta.Name, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CredentialMeta{}, ErrCredentialNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "vaultRepository.CredentialMeta").Uint64("index", index).Msg("failed to select credential")
		return models.CredentialMeta{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	meta.Owner = common.HexToAddress(ownerHex)
	meta.CreatedAt = time.Unix(createdAt, 0).UTC()
	return meta, nil
}

func (v *vaultRepository) CredentialHandles(ctx context.Context, owner common.Address, index uint64) ([]models.Handle, error) {
	log := logger.FromContext(ctx)

	rows, err := v.db.QueryContext(ctx, selectCredentialHandles, owner.Hex(), index)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.CredentialHandles").Msg("failed to select handles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	handles := make([]models.Handle, 0, models.DefaultLayout.ElementCount())
	for rows.Next() {
		var raw string
		if err = rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		h, err := models.ParseHandle(raw)
		if err != nil {
			log.Err(err).Str("func", "vaultRepository.CredentialHandles").Str("handle", raw).Msg("stored handle is malformed")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		handles = append(handles, h)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(handles) == 0 {
		return nil, ErrCredentialNotFound
	}
	return handles, nil
}

func (v *vaultRepository) SaveAuthorization(ctx context.Context, rec models.AuthorizationRecord) error {
	_, err := v.db.ExecContext(ctx, insertAuthorization,
		rec.Owner.Hex(), rec.Viewer.Hex(), uint8(rec.Type), rec.CredentialIndex, rec.CreatedAt.Unix())
	if isSQLiteConstraint(err) {
		return ErrAuthorizationExists
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "vaultRepository.SaveAuthorization").
			Str("owner", rec.Owner.Hex()).
			Str("viewer", rec.Viewer.Hex()).
			Msg("failed to insert authorization")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (v *vaultRepository) GivenAuthorizations(ctx context.Context, owner common.Address) ([]models.AuthorizationRecord, error) {
	return v.selectAuthorizations(ctx, selectGivenAuthorizations, owner)
}

func (v *vaultRepository) ReceivedAuthorizations(ctx context.Context, viewer common.Address) ([]models.AuthorizationRecord, error) {
	return v.selectAuthorizations(ctx, selectReceivedAuthorizations, viewer)
}

func (v *vaultRepository) selectAuthorizations(ctx context.Context, query string, account common.Address) ([]models.AuthorizationRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := v.db.QueryContext(ctx, query, account.Hex())
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.selectAuthorizations").Msg("failed to select authorizations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.AuthorizationRecord, 0)
	for rows.Next() {
		var (
			rec               models.AuthorizationRecord
			ownerHex, viewHex string
			authType          uint8
			createdAt         int64
		)
		if err = rows.Scan(&ownerHex, &viewHex, &authType, &rec.CredentialIndex, &createdAt); err != nil {
			log.Err(err).Str("func", "vaultRepository.selectAuthorizations").Msg("failed to scan authorization")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		rec.Owner = common.HexToAddress(ownerHex)
		rec.Viewer = common.HexToAddress(viewHex)
		rec.Type = models.AuthType(authType)
		rec.CreatedAt = time.Unix(createdAt, 0).UTC()
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
