package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/ethereum/go-ethereum/common"

	"github.com/SaurabViena/heirloom/models"
)

// vault (sqlite)
const (
	nextCredentialIndex = `SELECT COALESCE(MAX(idx) + 1, 0)
		FROM credentials
		WHERE owner = ?;`

	insertCredential = `INSERT INTO credentials (owner, idx, name, proof, created_at)
		VALUES (?, ?, ?, ?, ?);`

	insertCredentialHandle = `INSERT INTO credential_handles (owner, idx, position, handle)
		VALUES (?, ?, ?, ?);`

	countCredentials = `SELECT COUNT(*)
		FROM credentials
		WHERE owner = ?;`

	selectCredentialNames = `SELECT name
		FROM credentials
		WHERE owner = ?
		ORDER BY idx;`

	selectCredentialMeta = `SELECT owner, idx, name, created_at
		FROM credentials
		WHERE owner = ? AND idx = ?;`

	selectCredentialHandles = `SELECT handle
		FROM credential_handles
		WHERE owner = ? AND idx = ?
		ORDER BY position;`

	insertAuthorization = `INSERT INTO authorizations (owner, viewer, auth_type, credential_index, created_at)
		VALUES (?, ?, ?, ?, ?);`

	selectGivenAuthorizations = `SELECT owner, viewer, auth_type, credential_index, created_at
		FROM authorizations
		WHERE owner = ?
		ORDER BY created_at, rowid;`

	selectReceivedAuthorizations = `SELECT owner, viewer, auth_type, credential_index, created_at
		FROM authorizations
		WHERE viewer = ?
		ORDER BY created_at, rowid;`
)

// gateway (postgres)
const (
	selectAllowed = `SELECT EXISTS (
			SELECT 1 FROM ciphertext_acl WHERE handle = $1 AND account = $2
		);`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildInsertCiphertextsQuery renders one multi-row INSERT for records.
func buildInsertCiphertextsQuery(records []models.CiphertextRecord) (string, []any, error) {
	builder := psql.Insert("ciphertexts").
		Columns("handle", "destination", "owner", "ciphertext", "created_at")
	for _, r := range records {
		builder = builder.Values(r.Handle.Hex(), r.Destination.Hex(), r.Owner.Hex(), r.Ciphertext, r.CreatedAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectCiphertextsQuery renders a lookup of every handle in one round trip.
func buildSelectCiphertextsQuery(handles []models.Handle) (string, []any, error) {
	keys := make([]string, 0, len(handles))
	for _, h := range handles {
		keys = append(keys, h.Hex())
	}

	query, args, err := psql.
		Select("handle", "destination", "owner", "ciphertext", "created_at").
		From("ciphertexts").
		Where(sq.Eq{"handle": keys}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertACLQuery grants account on every handle; existing grants are kept.
func buildInsertACLQuery(handles []models.Handle, account common.Address) (string, []any, error) {
	builder := psql.Insert("ciphertext_acl").Columns("handle", "account")
	for _, h := range handles {
		builder = builder.Values(h.Hex(), account.Hex())
	}

	query, args, err := builder.
		Suffix("ON CONFLICT (handle, account) DO NOTHING").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
