package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/models"
)

func newTestCiphertextRepo(t *testing.T) (*ciphertextRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &ciphertextRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func testRecord(b byte) models.CiphertextRecord {
	return models.CiphertextRecord{
		Handle:      testHandle(b),
		Destination: testViewer,
		Owner:       testOwner,
		Ciphertext:  []byte{b, b, b},
		CreatedAt:   time.Unix(1_700_000_000, 0).UTC(),
	}
}

func TestCiphertextSave_MultiRowInsert(t *testing.T) {
	repo, mock, db := newTestCiphertextRepo(t)
	defer db.Close()

	r1, r2 := testRecord(1), testRecord(2)
	mock.ExpectExec("INSERT INTO ciphertexts").
		WithArgs(
			r1.Handle.Hex(), r1.Destination.Hex(), r1.Owner.Hex(), r1.Ciphertext, r1.CreatedAt,
			r2.Handle.Hex(), r2.Destination.Hex(), r2.Owner.Hex(), r2.Ciphertext, r2.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.Save(context.Background(), []models.CiphertextRecord{r1, r2}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCiphertextSave_Empty(t *testing.T) {
	repo, mock, db := newTestCiphertextRepo(t)
	defer db.Close()

	require.NoError(t, repo.Save(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCiphertextSave_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestCiphertextRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO ciphertexts").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.Save(context.Background(), []models.CiphertextRecord{testRecord(1)})
	assert.ErrorIs(t, err, ErrHandleExists)
}

func TestCiphertextSave_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestCiphertextRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO ciphertexts").
		WillReturnError(pgError(pgerrcode.SerializationFailure))

	err := repo.Save(context.Background(), []models.CiphertextRecord{testRecord(1)})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestCiphertextGet_ReturnsExistingOnly(t *testing.T) {
	repo, mock, db := newTestCiphertextRepo(t)
	defer db.Close()

	r1 := testRecord(1)
	rows := sqlmock.NewRows([]string{"handle", "destination", "owner", "ciphertext", "created_at"}).
		AddRow(r1.Handle.Hex(), r1.Destination.Hex(), r1.Owner.Hex(), r1.Ciphertext, r1.CreatedAt)
	mock.ExpectQuery("SELECT handle, destination, owner, ciphertext, created_at FROM ciphertexts WHERE handle IN").
		WithArgs(r1.Handle.Hex(), testHandle(9).Hex()).
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), []models.Handle{r1.Handle, testHandle(9)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, r1, got[r1.Handle])
}

func TestCiphertextGet_QueryError(t *testing.T) {
	repo, mock, db := newTestCiphertextRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM ciphertexts").WillReturnError(errors.New("conn reset"))

	_, err := repo.Get(context.Background(), []models.Handle{testHandle(1)})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCiphertextAllow(t *testing.T) {
	repo, mock, db := newTestCiphertextRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO ciphertext_acl .* ON CONFLICT \\(handle, account\\) DO NOTHING").
		WithArgs(testHandle(1).Hex(), testViewer.Hex(), testHandle(2).Hex(), testViewer.Hex()).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.Allow(context.Background(), []models.Handle{testHandle(1), testHandle(2)}, testViewer)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCiphertextAllow_UnknownHandle(t *testing.T) {
	repo, mock, db := newTestCiphertextRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO ciphertext_acl").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	err := repo.Allow(context.Background(), []models.Handle{testHandle(1)}, testViewer)
	assert.ErrorIs(t, err, ErrCiphertextNotFound)
}

func TestCiphertextAllowed(t *testing.T) {
	repo, mock, db := newTestCiphertextRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(testHandle(1).Hex(), testViewer.Hex()).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.Allowed(context.Background(), testHandle(1), testViewer)
	require.NoError(t, err)
	assert.True(t, ok)
}
