package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/migrations"
)

// NewConnectPostgres opens the gateway ciphertext database through the pgx
// stdlib driver.
func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		errorClassificator: NewPostgresErrorClassifier(),
		schema:             migrations.Gateway,
		logger:             log,
	}, nil
}
