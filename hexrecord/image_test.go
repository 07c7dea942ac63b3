package hexrecord

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleImage = `:04000000E0E0F894B0
:02010000FFCF2F
:00000001FF
`

func TestLoadImage(t *testing.T) {
	segments, err := LoadImage(strings.NewReader(sampleImage))
	require.NoError(t, err)
	require.Len(t, segments, 2)

	assert.Equal(t, Segment{Address: 0x0000, Code: "E0E0F894"}, segments[0])
	assert.Equal(t, Segment{Address: 0x0100, Code: "FFCF"}, segments[1])
}

func TestLoadImageBadChecksum(t *testing.T) {
	_, err := LoadImage(strings.NewReader(":04000000E0E0F89400\n:00000001FF\n"))
	assert.Error(t, err)
}

func TestLoadImageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "firmware.hex")
	require.NoError(t, os.WriteFile(path, []byte(sampleImage), 0600))

	segments, err := LoadImageFile(path)
	require.NoError(t, err)
	assert.Len(t, segments, 2)

	_, err = LoadImageFile(filepath.Join(t.TempDir(), "missing.hex"))
	assert.Error(t, err)
}
