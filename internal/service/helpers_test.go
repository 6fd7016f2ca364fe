package service

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/SaurabViena/heirloom/internal/codec"
	"github.com/SaurabViena/heirloom/models"
)

var (
	testOwner       = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	testViewer      = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	testDestination = common.HexToAddress("0x00000000000000000000000000000000000000d5")
	testVerifier    = common.HexToAddress("0x00000000000000000000000000000000000000f0")
)

func testHandle(b byte) models.Handle {
	var h models.Handle
	h[0] = b
	h[30] = 0x08
	return h
}

func encode(t *testing.T, text string, maxBytes, elements int) []models.FieldElement {
	t.Helper()
	out, err := codec.Default.Encode(text, maxBytes, elements)
	require.NoError(t, err)
	return out
}

// recorder collects the target state of every transition.
type recorder struct {
	from   []models.DecryptionState
	states []models.DecryptionState
}

func (r *recorder) OnTransition(from, to models.DecryptionState) {
	r.from = append(r.from, from)
	r.states = append(r.states, to)
}
