package fhe

import (
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/SaurabViena/heirloom/models"
)

const inputDomain = "heirloom/input/v1"

// InputAAD binds a sealed input to its batch position and scope, so a box
// cannot be moved to another batch, submitter or destination.
func InputAAD(destination, submitter common.Address, index int) []byte {
	aad := make([]byte, 0, len(inputDomain)+2*common.AddressLength+4)
	aad = append(aad, inputDomain...)
	aad = append(aad, destination.Bytes()...)
	aad = append(aad, submitter.Bytes()...)
	return binary.BigEndian.AppendUint32(aad, uint32(index))
}

// SealInputs encrypts each value to the gateway's network key as a 32-byte
// big-endian word.
func SealInputs(networkKey []byte, destination, submitter common.Address, values []models.FieldElement) ([][]byte, error) {
	boxes := make([][]byte, len(values))
	for i := range values {
		word := values[i].Bytes32()
		box, err := Seal(networkKey, word[:], InputAAD(destination, submitter, i))
		if err != nil {
			return nil, fmt.Errorf("seal input %d: %w", i, err)
		}
		boxes[i] = box
	}
	return boxes, nil
}

// OpenResults opens the per-handle boxes returned by a user decryption.
// Handles absent from sealed are absent from the result.
func OpenResults(kp models.Keypair, sealed map[models.Handle][]byte) (map[models.Handle]models.FieldElement, error) {
	out := make(map[models.Handle]models.FieldElement, len(sealed))
	for h, box := range sealed {
		plain, err := Open(kp, box, h[:])
		if err != nil {
			return nil, fmt.Errorf("open result for %s: %w", h, err)
		}
		var v models.FieldElement
		v.SetBytes(plain)
		out[h] = v
	}
	return out, nil
}
