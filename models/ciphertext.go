package models

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// CiphertextRecord is one value held by the encryption gateway. Ciphertext
// is nonce||sealed bytes under the gateway's data key.
type CiphertextRecord struct {
	Handle      Handle
	Destination common.Address
	Owner       common.Address
	Ciphertext  []byte
	CreatedAt   time.Time
}
