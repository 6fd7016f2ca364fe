package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v3"

	"github.com/SaurabViena/heirloom/internal/client"
	"github.com/SaurabViena/heirloom/internal/service"
	"github.com/SaurabViena/heirloom/internal/signer"
	"github.com/SaurabViena/heirloom/internal/tui"
	"github.com/SaurabViena/heirloom/internal/validators"
	"github.com/SaurabViena/heirloom/models"
)

func getCredentialCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "submit",
			Usage: "Encrypt a credential and store it on the ledger",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "name", Required: true, Usage: "public label"},
				&cli.StringFlag{Name: "account", Usage: "account or username"},
				&cli.StringFlag{Name: "password", Usage: "password"},
				&cli.StringFlag{Name: "extra", Usage: "free-form notes"},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				draft := models.CredentialDraft{
					Name:     cmd.String("name"),
					Account:  cmd.String("account"),
					Password: cmd.String("password"),
					Extra:    cmd.String("extra"),
				}
				return withApp(ctx, cmd, nil, func(ctx context.Context, a *client.App) error {
					return runSubmit(ctx, cmd, a, draft)
				})
			},
		},
		{
			Name:  "list",
			Usage: "List credential names of an owner",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "owner", Usage: "owner address (default: your account)"},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withApp(ctx, cmd, nil, func(ctx context.Context, a *client.App) error {
					owner, err := addressOr(cmd.String("owner"), a)
					if err != nil {
						return err
					}
					names, err := a.Services.Ledger.CredentialNames(ctx, owner)
					if err != nil {
						return err
					}
					tui.RenderCredentials(cmd.Root().Writer, owner, names)
					return nil
				})
			},
		},
		{
			Name:  "reveal",
			Usage: "Decrypt a credential through a signed grant",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "owner", Usage: "owner address (default: your account)"},
				&cli.Uint64Flag{Name: "index", Required: true, Usage: "credential index"},
				&cli.BoolFlag{Name: "copy", Usage: "copy the password to the clipboard instead of printing it"},
				&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "sign the grant without asking"},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				prog := tui.NewRevealProgram(ctx, cmd.Root().Reader, cmd.Root().Writer)
				approve := signer.AutoApprove
				if !cmd.Bool("yes") {
					approve = prog.ApproveGrant
				}
				return withApp(ctx, cmd, approve, func(_ context.Context, a *client.App) error {
					return runReveal(cmd, a, prog)
				})
			},
		},
	}
}

func runSubmit(ctx context.Context, cmd *cli.Command, a *client.App, draft models.CredentialDraft) error {
	req, err := a.Services.SubmissionService.Submit(ctx, draft, a.Destination, a.Account())
	if err != nil {
		return err
	}
	index, err := a.Services.Ledger.CreateCredential(ctx, req)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.Root().Writer, "stored %q at index %d\n", draft.Name, index)
	return err
}

func runReveal(cmd *cli.Command, a *client.App, prog *tui.RevealProgram) error {
	out := cmd.Root().Writer
	owner, err := addressOr(cmd.String("owner"), a)
	if err != nil {
		return err
	}

	revealed, err := prog.Run(func(ctx context.Context) (models.Revealed, error) {
		return a.Services.DecryptionService.Reveal(ctx, service.RevealRequest{
			Owner:       owner,
			Index:       cmd.Uint64("index"),
			Viewer:      a.Account(),
			Destination: a.Destination,
			Signer:      a.Signer,
			Observer:    prog,
		})
	})
	if errors.Is(err, service.ErrUserCancelled) {
		_, _ = fmt.Fprintln(out, client.Message(err))
		return nil
	}
	if err != nil {
		return err
	}

	if cmd.Bool("copy") {
		if err := clipboard.WriteAll(revealed[models.AttributePassword]); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		revealed[models.AttributePassword] = "(copied to clipboard)"
	}
	tui.RenderRevealed(out, models.DefaultLayout, revealed)
	return nil
}

func addressOr(raw string, a *client.App) (common.Address, error) {
	if raw == "" {
		return a.Account(), nil
	}
	return validators.ParseAddress(raw)
}
