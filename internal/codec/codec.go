// Package codec packs UTF-8 text into fixed-width field elements and back.
//
// A text attribute with capacity maxBytes spread over k elements is cut to
// its first maxBytes bytes and split into k chunks of ceil(maxBytes/k) bytes.
// Each chunk becomes one big-endian integer; an empty chunk is zero. Decoding
// concatenates the minimal big-endian bytes of every element, so zero
// elements contribute nothing.
package codec

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/holiman/uint256"

	"github.com/SaurabViena/heirloom/models"
)

// ErrInvalidCapacity reports a capacity configuration that cannot be encoded
// with the codec's element width.
var ErrInvalidCapacity = errors.New("invalid attribute capacity")

// Codec encodes text for one element bit width.
type Codec struct {
	widthBytes int
}

// New returns a Codec for elements of widthBits bits. The width must be a
// whole number of bytes between 8 and 256 bits.
func New(widthBits int) (*Codec, error) {
	if widthBits < 8 || widthBits > 256 || widthBits%8 != 0 {
		return nil, fmt.Errorf("%w: element width %d bits", ErrInvalidCapacity, widthBits)
	}
	return &Codec{widthBytes: widthBits / 8}, nil
}

// Default is the codec for 256-bit elements.
var Default = &Codec{widthBytes: models.DefaultWidthBits / 8}

// WidthBits returns the element width.
func (c *Codec) WidthBits() int {
	return c.widthBytes * 8
}

// ChunkSize returns the number of bytes carried by each element of an
// attribute with the given capacity.
func (c *Codec) ChunkSize(maxBytes, elements int) (int, error) {
	if maxBytes <= 0 || elements <= 0 {
		return 0, fmt.Errorf("%w: maxBytes=%d elements=%d", ErrInvalidCapacity, maxBytes, elements)
	}
	chunk := (maxBytes + elements - 1) / elements
	if chunk > c.widthBytes {
		return 0, fmt.Errorf("%w: %d-byte chunk exceeds %d-bit element", ErrInvalidCapacity, chunk, c.WidthBits())
	}
	return chunk, nil
}

// Encode truncates text to maxBytes bytes and packs it into exactly
// elements field elements.
func (c *Codec) Encode(text string, maxBytes, elements int) ([]models.FieldElement, error) {
	chunk, err := c.ChunkSize(maxBytes, elements)
	if err != nil {
		return nil, err
	}

	raw := []byte(text)
	if len(raw) > maxBytes {
		raw = raw[:maxBytes]
	}

	out := make([]models.FieldElement, elements)
	for i := range out {
		start := i * chunk
		if start >= len(raw) {
			continue
		}
		end := min(start+chunk, len(raw))
		out[i].SetBytes(raw[start:end])
	}
	return out, nil
}

// Decode reverses Encode. Output that is not valid UTF-8, including a
// code point cut by truncation, decodes to the empty string.
func (c *Codec) Decode(elements []models.FieldElement) string {
	buf := make([]byte, 0, len(elements)*c.widthBytes)
	for i := range elements {
		if elements[i].IsZero() {
			continue
		}
		buf = append(buf, elements[i].Bytes()...)
	}
	if !utf8.Valid(buf) {
		return ""
	}
	return string(buf)
}

// Fits reports whether v can be represented in the codec's width.
func (c *Codec) Fits(v *uint256.Int) bool {
	return v.BitLen() <= c.WidthBits()
}
