package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeWords(t *testing.T) {
	data, err := encodeWords([]string{"E0E0", "0x94F8", "940C0034"})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xE0, 0xE0, 0xF8, 0x94, 0x0C, 0x94, 0x34, 0x00}, data)

	_, err = encodeWords([]string{"E0E"})
	assert.Error(t, err)

	_, err = encodeWords([]string{"ZZZZ"})
	assert.Error(t, err)
}
