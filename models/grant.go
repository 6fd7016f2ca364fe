package models

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// Keypair is an ephemeral X25519 keypair. Decryption results are sealed to
// the public half; the private half never leaves the process.
type Keypair struct {
	PublicKey  []byte
	PrivateKey []byte
}

// UnsignedGrant is a decryption authorization waiting for the viewer's
// signature. TypedData is the canonical EIP-712 payload the signer signs.
type UnsignedGrant struct {
	PublicKey    []byte
	Destinations []common.Address
	IssuedAt     time.Time
	Duration     time.Duration
	TypedData    apitypes.TypedData
}

// ExpiresAt returns the instant after which the grant is no longer usable.
func (g UnsignedGrant) ExpiresAt() time.Time {
	return g.IssuedAt.Add(g.Duration)
}

// Expired reports whether the grant can no longer be used at now.
func (g UnsignedGrant) Expired(now time.Time) bool {
	return !now.Before(g.ExpiresAt())
}

// Covers reports whether destination is one of the grant's destinations.
func (g UnsignedGrant) Covers(destination common.Address) bool {
	for _, d := range g.Destinations {
		if d == destination {
			return true
		}
	}
	return false
}

// AuthorizationGrant is a signed, single-use decryption capability.
type AuthorizationGrant struct {
	UnsignedGrant
	Keypair   Keypair
	Signature []byte
	Viewer    common.Address
}
