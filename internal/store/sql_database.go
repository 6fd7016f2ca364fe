package store

import (
	"database/sql"

	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/migrations"
)

// DB wraps a *sql.DB with the logger and error classifier of its backend.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	schema             migrations.Schema
	logger             *logger.Logger
}

// Migrate applies the embedded schema matching the backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.schema)
}

// retryable reports whether err was classified as transient.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
