package renderer

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ChainSafe/hexdis/disassembler"
	"github.com/ChainSafe/hexdis/profile"
)

// YAMLRenderer renders instructions in YAML format.
type YAMLRenderer struct {
	profile *profile.Profile
}

func NewYAMLRenderer(prof *profile.Profile) Renderer {
	return &YAMLRenderer{profile: prof}
}

func (r *YAMLRenderer) Render(instructions []*disassembler.Instruction, output io.Writer) error {
	enc := yaml.NewEncoder(output)
	enc.SetIndent(2)
	if err := enc.Encode(newReport(r.profile, instructions)); err != nil {
		return err
	}
	return enc.Close()
}

func (r *YAMLRenderer) Format() string {
	return "yaml"
}
