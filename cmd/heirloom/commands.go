package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/SaurabViena/heirloom/internal/client"
	"github.com/SaurabViena/heirloom/internal/config"
	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/internal/signer"
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Usage: "path to a JSON config file"},
		&cli.StringFlag{Name: "gateway", Usage: "encryption gateway address"},
		&cli.StringFlag{Name: "mode", Usage: "adapter mode: http or embedded"},
		&cli.StringFlag{Name: "destination", Usage: "credential contract address"},
		&cli.StringFlag{Name: "vault", Usage: "ledger SQLite DSN"},
		&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		&cli.StringFlag{Name: "log-dir", Usage: "directory for heirloom.log"},
	}
}

// overridesFromFlags maps the global flags onto config overrides; unset
// flags stay empty and do not override anything.
func overridesFromFlags(cmd *cli.Command) *config.StructuredConfig {
	return &config.StructuredConfig{
		JSONFilePath: cmd.String("config"),
		App: config.App{
			Destination: cmd.String("destination"),
			LogLevel:    cmd.String("log-level"),
			LogDir:      cmd.String("log-dir"),
		},
		Adapter: config.Adapter{
			Mode:        cmd.String("mode"),
			HTTPAddress: cmd.String("gateway"),
		},
		Storage: config.Storage{
			Vault: config.Vault{DSN: cmd.String("vault")},
		},
	}
}

// withApp loads configuration, builds the client runtime and runs fn.
func withApp(ctx context.Context, cmd *cli.Command, approve signer.Approval, fn func(ctx context.Context, a *client.App) error) error {
	cfg, err := config.GetClientConfig(overridesFromFlags(cmd))
	if err != nil {
		return err
	}

	log := logger.NewClientLogger("heirloom", cfg.App.LogDir)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Msg("invalid log level, keeping default")
	}
	ctx = log.WithContext(ctx)

	a, err := client.NewApp(ctx, cfg, approve, log)
	if err != nil {
		log.Err(err).Str("func", "withApp").Msg("cannot start client")
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			log.Err(cerr).Str("func", "withApp").Msg("error closing client")
		}
	}()

	return fn(ctx, a)
}
