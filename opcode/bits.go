package opcode

import (
	"fmt"
	"math/bits"
	"strconv"
)

// minChunkWidth is the narrowest width a decoded chunk is rendered with.
const minChunkWidth = 8

// Bits is an instruction word held as an unsigned value with an explicit width.
// Positions are counted from the most significant bit, so position 0 is the
// leftmost bit of a Width-bit vector.
type Bits struct {
	Value uint64
	Width int
}

// FromHex converts a hex chunk into a bit vector as wide as its binary
// representation, but never narrower than 8 bits.
func FromHex(chunk string) (Bits, error) {
	v, err := strconv.ParseUint(chunk, 16, 64)
	if err != nil {
		return Bits{}, fmt.Errorf("invalid hex chunk %q: %w", chunk, err)
	}
	return Bits{Value: v, Width: max(bits.Len64(v), minChunkWidth)}, nil
}

// Bit returns the bit at position i and whether the position exists.
func (b Bits) Bit(i int) (uint64, bool) {
	if i < 0 || i >= b.Width {
		return 0, false
	}
	return (b.Value >> uint(b.Width-1-i)) & 1, true
}

// PadLeft widens b to at least width bits with leading zeros.
func (b Bits) PadLeft(width int) Bits {
	if b.Width >= width {
		return b
	}
	return Bits{Value: b.Value, Width: width}
}

// String renders the vector as a zero padded binary string.
func (b Bits) String() string {
	if b.Width == 0 {
		return ""
	}
	return fmt.Sprintf("%0*b", b.Width, b.Value)
}

// Preprocess aligns a word for matching against the candidate mnemonic.
// subi gets a zero bit inserted ahead of its two lowest bits, every other
// candidate sees the word left padded to 16 bits. The input is not modified.
func Preprocess(word Bits, mnemonic string) Bits {
	if mnemonic == Subi {
		low := word.Value & 0b11
		return Bits{Value: (word.Value>>2)<<3 | low, Width: word.Width + 1}
	}
	return word.PadLeft(16)
}
