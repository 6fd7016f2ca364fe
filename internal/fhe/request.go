package fhe

import (
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/SaurabViena/heirloom/models"
)

// HandlePair ties a handle to the contract that holds it.
type HandlePair struct {
	Handle      models.Handle
	Destination common.Address
}

// DecryptRequest carries one signed user-decryption call.
type DecryptRequest struct {
	Pairs        []HandlePair
	Keypair      models.Keypair
	Signature    []byte
	Destinations []common.Address
	Viewer       common.Address
	IssuedAt     time.Time
	Duration     time.Duration
}

// Handles returns the handles of all pairs in order.
func (r DecryptRequest) Handles() []models.Handle {
	out := make([]models.Handle, len(r.Pairs))
	for i, p := range r.Pairs {
		out[i] = p.Handle
	}
	return out
}
