package renderer

import (
	"encoding/json"
	"io"

	"github.com/ChainSafe/hexdis/disassembler"
	"github.com/ChainSafe/hexdis/profile"
)

// JSONRenderer renders instructions in JSON format.
type JSONRenderer struct {
	profile *profile.Profile
}

func NewJSONRenderer(prof *profile.Profile) Renderer {
	return &JSONRenderer{profile: prof}
}

func (r *JSONRenderer) Render(instructions []*disassembler.Instruction, output io.Writer) error {
	return json.NewEncoder(output).Encode(newReport(r.profile, instructions))
}

func (r *JSONRenderer) Format() string {
	return "json"
}
