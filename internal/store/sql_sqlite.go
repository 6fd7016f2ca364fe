package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/migrations"
)

// NewConnectSQLite opens (creating if needed) the SQLite vault database.
func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(dsn); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	// one writer at a time
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		schema: migrations.Vault,
		logger: log,
	}, nil
}

// sqliteFilePath strips the "file:" scheme and query parameters from dsn.
func sqliteFilePath(dsn string) string {
	path, _, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	return path
}

func createLocalDBFileIfNotExists(dsn string) error {
	path := sqliteFilePath(dsn)
	if path == "" || path == ":memory:" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}
	return nil
}

// isSQLiteConstraint reports a UNIQUE/PRIMARY KEY/FOREIGN KEY violation.
func isSQLiteConstraint(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint
}
