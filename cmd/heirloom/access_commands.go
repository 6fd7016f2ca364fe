package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/SaurabViena/heirloom/internal/client"
	"github.com/SaurabViena/heirloom/internal/tui"
	"github.com/SaurabViena/heirloom/internal/validators"
)

var errGrantTarget = errors.New("exactly one of --index or --all is required")

func getAccessCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "grant",
			Usage: "Authorize a viewer to read one credential or all of them",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "viewer", Required: true, Usage: "heir address"},
				&cli.Int64Flag{Name: "index", Value: -1, Usage: "credential index"},
				&cli.BoolFlag{Name: "all", Usage: "grant every current and future credential"},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				index, all := cmd.Int64("index"), cmd.Bool("all")
				if (index >= 0) == all {
					return errGrantTarget
				}
				viewer, err := validators.ParseAddress(cmd.String("viewer"))
				if err != nil {
					return err
				}
				return withApp(ctx, cmd, nil, func(ctx context.Context, a *client.App) error {
					out := cmd.Root().Writer
					if all {
						if err := a.Services.Ledger.GrantAll(ctx, a.Account(), viewer); err != nil {
							return err
						}
						_, err := fmt.Fprintf(out, "granted all credentials to %s\n", viewer.Hex())
						return err
					}
					if err := a.Services.Ledger.GrantSingle(ctx, a.Account(), viewer, uint64(index)); err != nil {
						return err
					}
					_, err := fmt.Fprintf(out, "granted credential %d to %s\n", index, viewer.Hex())
					return err
				})
			},
		},
		{
			Name:  "access",
			Usage: "List credentials other owners have authorized you to read",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withApp(ctx, cmd, nil, func(ctx context.Context, a *client.App) error {
					groups, err := a.Services.AccessService.Received(ctx, a.Account())
					if err != nil {
						return err
					}
					tui.RenderInherited(cmd.Root().Writer, groups)
					return nil
				})
			},
		},
		{
			Name:  "given",
			Usage: "List the authorizations you have issued",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withApp(ctx, cmd, nil, func(ctx context.Context, a *client.App) error {
					records, err := a.Services.AccessService.Given(ctx, a.Account())
					if err != nil {
						return err
					}
					tui.RenderGiven(cmd.Root().Writer, records)
					return nil
				})
			},
		},
	}
}
