package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/SaurabViena/heirloom/internal/adapter"
	"github.com/SaurabViena/heirloom/internal/app"
	"github.com/SaurabViena/heirloom/internal/codec"
	"github.com/SaurabViena/heirloom/internal/config"
	"github.com/SaurabViena/heirloom/internal/fhe/engine"
	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/internal/service"
	"github.com/SaurabViena/heirloom/internal/signer"
	"github.com/SaurabViena/heirloom/internal/store"
	"github.com/SaurabViena/heirloom/internal/validators"
)

// App is everything one CLI invocation needs.
type App struct {
	Services    *service.Services
	Signer      service.Signer
	Destination common.Address

	closers []func() error
	logger  *logger.Logger
}

// NewApp opens the vault and connects the encryption adapter selected by
// cfg.Adapter.Mode. approve is consulted before every grant signature.
func NewApp(ctx context.Context, cfg *config.ClientConfig, approve signer.Approval, log *logger.Logger) (*App, error) {
	destination, err := validators.ParseAddress(cfg.App.Destination)
	if err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}

	keySigner, err := signer.New(cfg.App, approve, log)
	if err != nil {
		return nil, err
	}

	a := &App{Signer: keySigner, Destination: destination, logger: log}

	vaultDB, err := store.NewConnectSQLite(ctx, cfg.Vault.DSN, log)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, vaultDB.Close)
	if err = vaultDB.Migrate(); err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("migrate vault: %w", err)
	}

	gateway, width, err := a.connectGateway(ctx, cfg, log)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	c, err := codec.New(width)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("%w: %w", service.ErrInvalidCapacity, err)
	}

	a.Services = service.NewServices(service.Dependencies{
		Session:  gateway,
		Registry: gateway,
		Vault:    store.NewVaultRepository(vaultDB, log),
		Codec:    c,
	}, cfg, log)

	log.Debug().
		Str("func", "NewApp").
		Str("mode", cfg.Adapter.Mode).
		Str("account", keySigner.Address().Hex()).
		Msg("client app ready")
	return a, nil
}

func (a *App) connectGateway(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (adapter.GatewayClient, int, error) {
	switch cfg.Adapter.Mode {
	case config.AdapterModeEmbedded:
		eng, err := app.NewEngine(ctx, app.EngineConfig{
			App:        cfg.App,
			Engine:     cfg.Engine,
			Ciphertext: cfg.Ciphertext,
		}, log)
		if err != nil {
			return nil, 0, err
		}
		a.closers = append(a.closers, eng.Close)
		return engine.NewLocalSession(eng.Gateway), eng.Gateway.WidthBits(), nil

	case config.AdapterModeHTTP, "":
		session, err := adapter.NewHTTPSession(cfg.Adapter, log)
		if err != nil {
			return nil, 0, err
		}
		width, err := session.WidthBits(ctx)
		if err != nil {
			// list/access/given work without the gateway; submit and reveal
			// fail their own readiness check later
			log.Warn().Err(err).Str("func", "connectGateway").Msg("gateway unreachable, assuming default element width")
			width = codec.Default.WidthBits()
		}
		return session, width, nil

	default:
		return nil, 0, fmt.Errorf("%w: unknown adapter mode %q", config.ErrInvalidAdapterConfigs, cfg.Adapter.Mode)
	}
}

// Account is the address of the configured signer.
func (a *App) Account() common.Address {
	return a.Signer.Address()
}

// Close releases the vault and, in embedded mode, the local ciphertext store.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
