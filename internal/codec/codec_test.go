package codec

import (
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaurabViena/heirloom/models"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		wantErr bool
	}{
		{name: "256 bits", width: 256},
		{name: "64 bits", width: 64},
		{name: "zero", width: 0, wantErr: true},
		{name: "not byte aligned", width: 60, wantErr: true},
		{name: "too wide", width: 512, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.width)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCapacity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.width, c.WidthBits())
		})
	}
}

func TestChunkSize(t *testing.T) {
	chunk, err := Default.ChunkSize(64, 2)
	require.NoError(t, err)
	assert.Equal(t, 32, chunk)

	chunk, err = Default.ChunkSize(31, 1)
	require.NoError(t, err)
	assert.Equal(t, 31, chunk)

	chunk, err = Default.ChunkSize(65, 3)
	require.NoError(t, err)
	assert.Equal(t, 22, chunk)

	_, err = Default.ChunkSize(33, 1)
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = Default.ChunkSize(0, 1)
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = Default.ChunkSize(10, 0)
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestEncode_BigEndianPacking(t *testing.T) {
	got, err := Default.Encode("bob", 31, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint64(0x626f62), got[0].Uint64())
}

func TestEncode_EmptyTextIsZeroElements(t *testing.T) {
	got, err := Default.Encode("", 64, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].IsZero())
	assert.True(t, got[1].IsZero())
	assert.Equal(t, "", Default.Decode(got))
}

func TestEncode_SecondChunk(t *testing.T) {
	text := strings.Repeat("a", 32) + "tail"
	got, err := Default.Encode(text, 64, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, uint64(0x7461696c), got[1].Uint64())
	assert.Equal(t, text, Default.Decode(got))
}

func TestRoundTrip(t *testing.T) {
	texts := []string{
		"",
		"x",
		"hunter2",
		"correct horse battery staple",
		strings.Repeat("z", 31),
		"пароль",
		"日本語のメモ",
		"emoji 🔐 ok",
	}
	capacities := []struct{ maxBytes, elements int }{{31, 1}, {64, 2}, {96, 3}}

	for _, c := range capacities {
		for _, text := range texts {
			if len(text) > c.maxBytes {
				continue
			}
			enc, err := Default.Encode(text, c.maxBytes, c.elements)
			require.NoError(t, err)
			assert.Len(t, enc, c.elements)
			assert.Equal(t, text, Default.Decode(enc), "capacity %d/%d", c.maxBytes, c.elements)

			again, err := Default.Encode(Default.Decode(enc), c.maxBytes, c.elements)
			require.NoError(t, err)
			assert.Equal(t, enc, again)
		}
	}
}

func TestEncode_TruncationDeterminism(t *testing.T) {
	base := strings.Repeat("k", 31)
	want, err := Default.Encode(base, 31, 1)
	require.NoError(t, err)

	for _, suffix := range []string{"1", "long suffix that is ignored", "Ω"} {
		got, err := Default.Encode(base+suffix, 31, 1)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, base, Default.Decode(want))
}

func TestDecode_SplitCodePointIsEmpty(t *testing.T) {
	// 30 ASCII bytes + a 2-byte rune: the cut at 31 bytes leaves half a rune.
	text := strings.Repeat("a", 30) + "é"
	enc, err := Default.Encode(text, 31, 1)
	require.NoError(t, err)
	assert.Equal(t, "", Default.Decode(enc))
}

func TestDecode_ZeroElementsAreEmpty(t *testing.T) {
	zero := []models.FieldElement{{}, {}}
	assert.Equal(t, "", Default.Decode(zero))
	assert.Equal(t, "", Default.Decode(nil))
}

func TestDecode_GarbageDoesNotPanic(t *testing.T) {
	garbage := []models.FieldElement{*uint256.NewInt(0xfffe)}
	assert.Equal(t, "", Default.Decode(garbage))
}

func TestNarrowCodec(t *testing.T) {
	c, err := New(64)
	require.NoError(t, err)

	_, err = c.Encode("x", 31, 1)
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	enc, err := c.Encode("abcdefgh12345678", 16, 2)
	require.NoError(t, err)
	assert.Equal(t, "abcdefgh12345678", c.Decode(enc))

	assert.True(t, c.Fits(uint256.NewInt(1<<63)))
	assert.False(t, c.Fits(new(uint256.Int).Lsh(uint256.NewInt(1), 64)))
}

func TestDecode_RuneAcrossChunks(t *testing.T) {
	// extra: 64 bytes over 2 elements, so the chunk boundary is at byte 32.
	text := strings.Repeat("b", 31) + "é"
	enc, err := Default.Encode(text, 64, 2)
	require.NoError(t, err)
	assert.Equal(t, text, Default.Decode(enc))
}

func TestDecode_LeadingNULIsDropped(t *testing.T) {
	enc, err := Default.Encode("\x00\x00hi", 31, 1)
	require.NoError(t, err)
	assert.Equal(t, "hi", Default.Decode(enc))
}
