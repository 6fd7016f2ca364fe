package models

import "github.com/holiman/uint256"

// FieldElement is the atomic plaintext unit the encryption capability
// operates on: an unsigned integer no wider than the configured bit width
// (256 bits by default).
type FieldElement = uint256.Int

// DefaultWidthBits is the bit width of the encrypted integer type used for
// credential fields.
const DefaultWidthBits = 256
