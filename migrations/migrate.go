// Package migrations embeds the SQL schemas of the development ledger
// (SQLite) and the encryption gateway (PostgreSQL) and applies them with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed vault/*.sql gateway/*.sql
var embedMigrations embed.FS

// ErrNilDB is returned when Migrate is called without a connection.
var ErrNilDB = errors.New("db is nil")

// Schema selects one embedded migration set.
type Schema struct {
	dir     string
	dialect string
}

var (
	// Vault is the development ledger schema.
	Vault = Schema{dir: "vault", dialect: "sqlite3"}
	// Gateway is the ciphertext store schema.
	Gateway = Schema{dir: "gateway", dialect: "postgres"}
)

// Migrate applies every pending migration of schema to db.
func Migrate(db *sql.DB, schema Schema) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(schema.dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, schema.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
