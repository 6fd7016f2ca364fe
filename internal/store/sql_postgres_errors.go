package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database operation may be
// retried.
type ErrorClassification int

const (
	// NonRetryable is the default for unknown errors, constraint violations
	// and syntax errors.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures such as lost connections and
	// serialization conflicts.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL
// errors surfaced by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError maps a PostgreSQL error code to an [ErrorClassification].
// Connection exceptions (class 08), transaction rollbacks (class 40) and
// "cannot connect now" (57P03) are retryable; everything else is not.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection:
		return Retryable

	case pgerrcode.TransactionRollback, // 40000
		pgerrcode.SerializationFailure, // 40001
		pgerrcode.DeadlockDetected:     // 40P01
		return Retryable

	case pgerrcode.CannotConnectNow: // 57P03
		return Retryable
	}

	return NonRetryable
}

// postgresError returns the SQLSTATE code of err or "" for non-driver errors.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
