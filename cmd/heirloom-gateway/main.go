// Command heirloom-gateway runs the development encryption gateway and its
// key and token tooling.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/SaurabViena/heirloom/internal/app"
	"github.com/SaurabViena/heirloom/internal/config"
	"github.com/SaurabViena/heirloom/internal/fhe/engine"
	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/internal/utils"
	"github.com/SaurabViena/heirloom/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errNoTokenSignKey = errors.New("AUTH_TOKEN_SIGN_KEY is not configured")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log := logger.NewLogger("gateway")

	cmd := &cli.Command{
		Name:    "heirloom-gateway",
		Usage:   "Development encryption gateway",
		Version: buildInfo.BuildVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a JSON config file"},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the gateway HTTP server",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "address", Usage: "listen address"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Println(buildInfo.String())
					return runServe(ctx, cmd, log)
				},
			},
			{
				Name:  "create-master-key",
				Usage: "Generate a master key wrapped by a KMS keeper",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "kms-key-uri", Required: true, Usage: "gocloud.dev/secrets keeper URL"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					master, err := engine.NewMasterKey()
					if err != nil {
						return err
					}
					wrapped, err := engine.WrapMasterKey(ctx, cmd.String("kms-key-uri"), master)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintf(cmd.Root().Writer, "ENGINE_WRAPPED_MASTER_KEY=%s\n", wrapped)
					return err
				},
			},
			{
				Name:  "issue-token",
				Usage: "Issue a bearer token for the ACL endpoint",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "subject", Required: true, Usage: "token subject, usually the ledger name"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := config.GetStructuredConfig(&config.StructuredConfig{JSONFilePath: cmd.String("config")})
					if err != nil {
						return err
					}
					if cfg.Auth.TokenSignKey == "" {
						return errNoTokenSignKey
					}
					token, err := utils.GenerateJWTToken(cfg.Auth.TokenIssuer, cmd.String("subject"), cfg.Auth.TokenDuration, cfg.Auth.TokenSignKey)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(cmd.Root().Writer, token)
					return err
				},
			},
			{
				Name:  "version",
				Usage: "Print build information",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprintln(cmd.Root().Writer, buildInfo.String())
					return err
				},
			},
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("gateway stopped")
	}
}

func runServe(ctx context.Context, cmd *cli.Command, log *logger.Logger) error {
	overrides := &config.StructuredConfig{
		JSONFilePath: cmd.String("config"),
		Server:       config.Server{HTTPAddress: cmd.String("address")},
	}
	cfg, err := config.GetGatewayConfig(overrides)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Msg("invalid log level, keeping default")
	}

	gateway, err := app.NewGateway(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating gateway: %w", err)
	}

	log.Info().Str("address", cfg.Server.HTTPAddress).Msg("gateway started")
	return gateway.Run(ctx)
}
