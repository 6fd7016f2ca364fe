package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/SaurabViena/heirloom/internal/config"
	"github.com/SaurabViena/heirloom/models"
)

func testRoot(out *bytes.Buffer, capture func(*config.StructuredConfig)) *cli.Command {
	captureCmd := &cli.Command{
		Name: "capture",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			capture(overridesFromFlags(cmd))
			return nil
		},
	}
	return &cli.Command{
		Name:     "heirloom",
		Writer:   out,
		Flags:    globalFlags(),
		Commands: append(getAccessCommands(), captureCmd, versionCommand(models.NewAppBuildInfo("1.2.3", "", ""))),
	}
}

func TestOverridesFromFlags(t *testing.T) {
	var got *config.StructuredConfig
	root := testRoot(&bytes.Buffer{}, func(c *config.StructuredConfig) { got = c })

	err := root.Run(context.Background(), []string{"heirloom",
		"--gateway", "http://gw:8080", "--mode", "embedded", "--vault", "file:v.db",
		"--destination", "0x00000000000000000000000000000000000000aa", "--log-level", "warn",
		"capture"})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "http://gw:8080", got.Adapter.HTTPAddress)
	assert.Equal(t, config.AdapterModeEmbedded, got.Adapter.Mode)
	assert.Equal(t, "file:v.db", got.Storage.Vault.DSN)
	assert.Equal(t, "warn", got.App.LogLevel)
	assert.Empty(t, got.JSONFilePath)
}

func TestGrant_RequiresExactlyOneTarget(t *testing.T) {
	viewer := "0x00000000000000000000000000000000000000bb"
	tests := []struct {
		name string
		args []string
	}{
		{"neither", []string{"heirloom", "grant", "--viewer", viewer}},
		{"both", []string{"heirloom", "grant", "--viewer", viewer, "--index", "0", "--all"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := testRoot(&bytes.Buffer{}, func(*config.StructuredConfig) {})
			assert.ErrorIs(t, root.Run(context.Background(), tt.args), errGrantTarget)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	root := testRoot(&out, func(*config.StructuredConfig) {})

	require.NoError(t, root.Run(context.Background(), []string{"heirloom", "version"}))
	assert.Contains(t, out.String(), "Build version: 1.2.3")
	assert.Contains(t, out.String(), "Build commit: N/A")
}
