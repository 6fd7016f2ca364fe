// Command heirloom stores credentials as encrypted field elements on a
// ledger and reveals them to their owner or to authorized heirs.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/SaurabViena/heirloom/internal/client"
	"github.com/SaurabViena/heirloom/internal/tui"
	"github.com/SaurabViena/heirloom/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cmd := &cli.Command{
		Name:    "heirloom",
		Usage:   "Confidential credential vault with authorized inheritance",
		Version: buildInfo.BuildVersion(),
		Flags:   globalFlags(),
		Commands: append(getCredentialCommands(),
			append(getAccessCommands(), versionCommand(buildInfo))...),
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		tui.RenderError(os.Stderr, client.Message(err))
		os.Exit(1)
	}
}

func versionCommand(info models.AppBuildInfo) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print build information",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintln(cmd.Root().Writer, info.String())
			return err
		},
	}
}
