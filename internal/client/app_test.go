package client

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaurabViena/heirloom/internal/config"
	"github.com/SaurabViena/heirloom/internal/fhe/engine"
	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/internal/service"
	"github.com/SaurabViena/heirloom/models"
)

const (
	testKeeperURI = "base64key://smGbjm71Nxd1Ig5FS0wj9SlbzAIrnolCz9bQQ6uAhl4="
	ownerKey      = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
)

func embeddedConfig(t *testing.T) *config.ClientConfig {
	t.Helper()
	master, err := engine.NewMasterKey()
	require.NoError(t, err)
	wrapped, err := engine.WrapMasterKey(context.Background(), testKeeperURI, master)
	require.NoError(t, err)

	return &config.ClientConfig{
		App: config.App{
			SignerKey:     ownerKey,
			Destination:   "0x00000000000000000000000000000000000000c3",
			ChainID:       31337,
			Verifier:      "0x00000000000000000000000000000000000000f0",
			NameMaxLength: 64,
		},
		Decryption: config.Decryption{GrantDuration: time.Hour, Timeout: 10 * time.Second},
		Adapter:    config.Adapter{Mode: config.AdapterModeEmbedded},
		Vault:      config.Vault{DSN: filepath.Join(t.TempDir(), "vault.db") + "?_foreign_keys=on"},
		Ciphertext: config.Ciphertext{Driver: config.CiphertextDriverBadger},
		Engine:     config.Engine{KMSKeyURI: testKeeperURI, WrappedMasterKey: wrapped, WidthBits: 256},
	}
}

func TestApp_EmbeddedSubmitAndReveal(t *testing.T) {
	ctx := context.Background()
	a, err := NewApp(ctx, embeddedConfig(t), nil, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, a.Close()) })

	draft := models.CredentialDraft{
		Name:     "mail",
		Account:  "alice@example.com",
		Password: "hunter2",
		Extra:    "recovery: 1234",
	}
	req, err := a.Services.SubmissionService.Submit(ctx, draft, a.Destination, a.Account())
	require.NoError(t, err)
	index, err := a.Services.Ledger.CreateCredential(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), index)

	revealed, err := a.Services.DecryptionService.Reveal(ctx, service.RevealRequest{
		Owner:       a.Account(),
		Index:       index,
		Viewer:      a.Account(),
		Destination: a.Destination,
		Signer:      a.Signer,
	})
	require.NoError(t, err)
	assert.Equal(t, draft.Account, revealed[models.AttributeAccount])
	assert.Equal(t, draft.Password, revealed[models.AttributePassword])
	assert.Equal(t, draft.Extra, revealed[models.AttributeExtra])
}

func TestNewApp_Errors(t *testing.T) {
	t.Run("bad destination", func(t *testing.T) {
		cfg := embeddedConfig(t)
		cfg.App.Destination = "nope"
		_, err := NewApp(context.Background(), cfg, nil, logger.Nop())
		assert.Error(t, err)
	})

	t.Run("unknown adapter mode", func(t *testing.T) {
		cfg := embeddedConfig(t)
		cfg.Adapter.Mode = "carrier-pigeon"
		_, err := NewApp(context.Background(), cfg, nil, logger.Nop())
		assert.ErrorIs(t, err, config.ErrInvalidAdapterConfigs)
	})
}
