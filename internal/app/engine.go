// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/SaurabViena/heirloom/internal/config"
	"github.com/SaurabViena/heirloom/internal/fhe"
	"github.com/SaurabViena/heirloom/internal/fhe/engine"
	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/internal/store"
	"github.com/SaurabViena/heirloom/internal/validators"
	"github.com/SaurabViena/heirloom/internal/workers"
)

// Engine is an assembled gateway engine together with the store it owns.
type Engine struct {
	Gateway engine.Gateway

	// GC is set when the ciphertext store needs periodic value log GC.
	GC workers.GarbageCollector

	closers []func() error
}

// EngineConfig groups the configuration NewEngine reads.
type EngineConfig struct {
	App        config.App
	Engine     config.Engine
	Ciphertext config.Ciphertext
}

// NewEngine unwraps the master key, opens the configured ciphertext store
// and builds the engine on top of it.
func NewEngine(ctx context.Context, cfg EngineConfig, log *logger.Logger) (*Engine, error) {
	domain, err := grantDomain(cfg.App)
	if err != nil {
		return nil, err
	}

	master, err := engine.UnwrapMasterKey(ctx, cfg.Engine.KMSKeyURI, cfg.Engine.WrappedMasterKey)
	if err != nil {
		log.Err(err).Str("func", "NewEngine").Msg("cannot unwrap master key")
		return nil, err
	}

	e := &Engine{}
	repo, err := e.openCiphertextStore(ctx, cfg.Ciphertext, log)
	if err != nil {
		return nil, err
	}

	eng, err := engine.New(master, repo, domain,
		engine.WithWidth(cfg.Engine.WidthBits),
		engine.WithLogger(log),
	)
	if err != nil {
		_ = e.Close()
		return nil, fmt.Errorf("create engine: %w", err)
	}
	e.Gateway = eng
	return e, nil
}

func (e *Engine) openCiphertextStore(ctx context.Context, cfg config.Ciphertext, log *logger.Logger) (store.CiphertextRepository, error) {
	switch cfg.Driver {
	case config.CiphertextDriverPostgres:
		db, err := store.NewConnectPostgres(ctx, cfg.DSN, log)
		if err != nil {
			return nil, err
		}
		e.closers = append(e.closers, db.Close)
		if err = db.Migrate(); err != nil {
			_ = e.Close()
			return nil, fmt.Errorf("migrate ciphertext store: %w", err)
		}
		return store.NewCiphertextRepository(db, log), nil

	case config.CiphertextDriverBadger, "":
		db, err := store.NewBadgerDB(cfg.Dir, log)
		if err != nil {
			return nil, err
		}
		e.closers = append(e.closers, db.Close)
		e.GC = db
		return store.NewBadgerCiphertextRepository(db), nil

	default:
		return nil, fmt.Errorf("%w: unknown ciphertext driver %q", config.ErrInvalidStorageConfigs, cfg.Driver)
	}
}

// Close releases the ciphertext store.
func (e *Engine) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		errs = append(errs, e.closers[i]())
	}
	e.closers = nil
	return errors.Join(errs...)
}

func grantDomain(app config.App) (fhe.GrantDomain, error) {
	domain := fhe.GrantDomain{ChainID: app.ChainID}
	if app.Verifier == "" {
		return domain, nil
	}
	verifier, err := validators.ParseAddress(app.Verifier)
	if err != nil {
		return fhe.GrantDomain{}, fmt.Errorf("verifier: %w", err)
	}
	domain.Verifier = verifier
	return domain, nil
}
