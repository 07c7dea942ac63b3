package avr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitChunks(t *testing.T) {
	assert.Equal(t, []string{"E0E0", "F894", "FFCF"}, SplitChunks("E0E0F894FFCF", 4))
	assert.Equal(t, []string{"E0E0", "F8"}, SplitChunks("E0E0F8", 4))
	assert.Nil(t, SplitChunks("", 4))
}

func TestSwapBytes(t *testing.T) {
	tests := map[string]string{
		"E0E0": "E0E0",
		"F894": "94F8",
		"FFCF": "CFFF",
		"0C94": "940C",
		"ABC":  "CAB",
		"AB":   "AB",
		"A":    "A",
	}
	for in, out := range tests {
		assert.Equal(t, out, SwapBytes(in), in)
	}
}

func TestSwapBytesSelfInverse(t *testing.T) {
	for _, chunk := range []string{"0000", "F894", "1234", "ABCD", "940C"} {
		assert.Equal(t, chunk, SwapBytes(SwapBytes(chunk)))
	}
}

func TestMergeTwoWordOpcodes(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
		merged []string
	}{
		{"jmp", []string{"940C", "0034", "E0E0"}, []string{"940C0034", "E0E0"}},
		{"cli is single", []string{"94F8", "E0E0"}, []string{"94F8", "E0E0"}},
		{"lowercase cli is single", []string{"94f8", "E0E0"}, []string{"94f8", "E0E0"}},
		{"no follower", []string{"E0E0", "940C"}, []string{"E0E0", "940C"}},
		{"back to back", []string{"940C", "0000", "940E", "0001"}, []string{"940C0000", "940E0001"}},
		{"prefix only at start", []string{"1294", "0000"}, []string{"1294", "0000"}},
		{"empty", nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.merged, MergeTwoWordOpcodes(tt.chunks))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t,
		[]string{"E0E0", "94F8", "CFFF", "940C0034"},
		Normalize("E0E0F894FFCF0C943400"))
}
