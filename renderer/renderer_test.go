package renderer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ChainSafe/hexdis/disassembler"
	"github.com/ChainSafe/hexdis/profile"
)

var sample = []*disassembler.Instruction{
	{Address: 0x0, Word: "E0E0", Mnemonic: "ldi", Params: "r30, 0x0", Size: 2, Fields: map[string]uint64{"d": 30, "k": 0}},
	{Address: 0x2, Word: "94F8", Mnemonic: "cli", Size: 2},
	{Address: 0x4, Word: "FFFF", Mnemonic: disassembler.Unknown, Size: 2},
}

func TestTextRenderer(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewTextRenderer().Render(sample, &out))
	assert.Equal(t, "0x0: ldi r30, 0x0\n0x2: cli\n0x4: unknown\n", out.String())

	out.Reset()
	require.NoError(t, NewTextRenderer().Render(nil, &out))
	assert.Empty(t, out.String())
}

func TestJSONRenderer(t *testing.T) {
	var out bytes.Buffer
	prof := &profile.Profile{Device: "atmega328p"}
	require.NoError(t, NewJSONRenderer(prof).Render(sample, &out))

	var report Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, "atmega328p", report.Device)
	assert.Equal(t, sample, report.Instructions)
}

func TestJSONRendererEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewJSONRenderer(nil).Render(nil, &out))
	assert.JSONEq(t, `{"instructions": []}`, out.String())
}

func TestYAMLRenderer(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewYAMLRenderer(profile.Default()).Render(sample, &out))

	var report Report
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &report))
	assert.Empty(t, report.Device)
	assert.Equal(t, sample, report.Instructions)
	assert.Contains(t, out.String(), "mnemonic: cli")
}

func TestNew(t *testing.T) {
	for _, format := range []string{"text", "json", "yaml"} {
		r, err := New(format, nil)
		require.NoError(t, err)
		assert.Equal(t, format, r.Format())
	}

	_, err := New("html", nil)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
