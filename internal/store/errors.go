package store

import "errors"

// Sentinel errors returned by repositories. Match with [errors.Is].
var (
	// ErrCredentialNotFound is returned when no credential exists at the
	// requested (owner, index).
	ErrCredentialNotFound = errors.New("credential was not found")

	// ErrAuthorizationExists is returned when the same authorization record
	// is written twice.
	ErrAuthorizationExists = errors.New("authorization already exists")

	// ErrHandleExists is returned when a ciphertext handle is saved twice.
	ErrHandleExists = errors.New("ciphertext handle already exists")

	// ErrCiphertextNotFound is returned when an access-list change targets a
	// handle that is not stored.
	ErrCiphertextNotFound = errors.New("ciphertext was not found")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when a transaction cannot start.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when a commit fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT/UPDATE/DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
