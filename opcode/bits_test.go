package opcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHex(t *testing.T) {
	tests := []struct {
		chunk string
		value uint64
		width int
	}{
		{"0000", 0, 8},
		{"0001", 1, 8},
		{"00FF", 0xFF, 8},
		{"0100", 0x100, 9},
		{"5001", 0x5001, 15},
		{"E0E0", 0xE0E0, 16},
		{"940C0034", 0x940C0034, 32},
	}
	for _, tt := range tests {
		t.Run(tt.chunk, func(t *testing.T) {
			b, err := FromHex(tt.chunk)
			require.NoError(t, err)
			assert.Equal(t, tt.value, b.Value)
			assert.Equal(t, tt.width, b.Width)
		})
	}

	_, err := FromHex("ZZ")
	assert.Error(t, err)
}

func TestBitsString(t *testing.T) {
	assert.Equal(t, "00000001", Bits{Value: 1, Width: 8}.String())
	assert.Equal(t, "1110000011100000", Bits{Value: 0xE0E0, Width: 16}.String())
	assert.Equal(t, "", Bits{}.String())
}

func TestBit(t *testing.T) {
	b := Bits{Value: 0b100, Width: 3}
	bit, ok := b.Bit(0)
	assert.True(t, ok)
	assert.Equal(t, uint64(1), bit)

	bit, ok = b.Bit(2)
	assert.True(t, ok)
	assert.Equal(t, uint64(0), bit)

	_, ok = b.Bit(3)
	assert.False(t, ok)
}

func TestPreprocess(t *testing.T) {
	word := Bits{Value: 0b10100011, Width: 8}

	padded := Preprocess(word, Ldi)
	assert.Equal(t, "0000000010100011", padded.String())

	widened := Preprocess(word, Subi)
	assert.Equal(t, "101000011", widened.String())

	// the input word is untouched
	assert.Equal(t, "10100011", word.String())

	wide := Bits{Value: 0x940C0034, Width: 32}
	assert.Equal(t, wide, Preprocess(wide, Jmp))
	assert.Equal(t, 33, Preprocess(wide, Subi).Width)
}
