package models

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// HandleLength is the size of a ciphertext handle in bytes.
const HandleLength = 32

// ErrInvalidHandle is returned when a textual handle is not a 0x-prefixed
// 32-byte hex string.
var ErrInvalidHandle = errors.New("invalid ciphertext handle")

// Handle is an opaque reference to one ciphertext held by the ledger.
// The all-zero value is the sentinel for an attribute that was never set.
type Handle [HandleLength]byte

// EmptyHandle is the canonical "never set" sentinel.
var EmptyHandle Handle

// IsEmpty reports whether h is the all-zero sentinel.
func (h Handle) IsEmpty() bool {
	return h == EmptyHandle
}

// Hex returns the 0x-prefixed lowercase hex form of h.
func (h Handle) Hex() string {
	return hexutil.Encode(h[:])
}

func (h Handle) String() string {
	return h.Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (h Handle) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Handle) UnmarshalText(text []byte) error {
	parsed, err := ParseHandle(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// ParseHandle decodes a 0x-prefixed hex handle.
func ParseHandle(s string) (Handle, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return Handle{}, fmt.Errorf("%w: %w", ErrInvalidHandle, err)
	}
	if len(b) != HandleLength {
		return Handle{}, fmt.Errorf("%w: got %d bytes", ErrInvalidHandle, len(b))
	}
	var h Handle
	copy(h[:], b)
	return h, nil
}

// HandleFromBytes copies b into a Handle. b must be exactly HandleLength long.
func HandleFromBytes(b []byte) (Handle, error) {
	if len(b) != HandleLength {
		return Handle{}, fmt.Errorf("%w: got %d bytes", ErrInvalidHandle, len(b))
	}
	var h Handle
	copy(h[:], b)
	return h, nil
}

// Proof is the validity certificate binding a batch of handles to a
// (destination, submitter) pair.
type Proof []byte

func (p Proof) MarshalText() ([]byte, error) {
	return []byte(hexutil.Encode(p)), nil
}

func (p *Proof) UnmarshalText(text []byte) error {
	b, err := hexutil.Decode(string(text))
	if err != nil {
		return fmt.Errorf("decode proof: %w", err)
	}
	*p = b
	return nil
}

// CiphertextBundle is the output of sealing one encryption batch.
type CiphertextBundle struct {
	Handles []Handle `json:"handles"`
	Proof   Proof    `json:"proof"`
}
