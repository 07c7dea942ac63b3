package renderer

import (
	"errors"
	"fmt"
	"io"

	"github.com/ChainSafe/hexdis/disassembler"
	"github.com/ChainSafe/hexdis/profile"
)

// ErrInvalidFormat is returned by New for an unknown output format.
var ErrInvalidFormat = errors.New("invalid format")

// Renderer defines the interface for rendering disassembly in different formats.
type Renderer interface {
	// Render writes the instructions in the desired format to the provided writer.
	Render(instructions []*disassembler.Instruction, output io.Writer) error

	// Format returns the name of the output format (e.g., "json", "text", "yaml").
	Format() string
}

// Report is the document written by the structured renderers.
type Report struct {
	Device       string                      `json:"device,omitempty" yaml:"device,omitempty"`
	Instructions []*disassembler.Instruction `json:"instructions" yaml:"instructions"`
}

func newReport(prof *profile.Profile, instructions []*disassembler.Instruction) *Report {
	report := &Report{Instructions: instructions}
	if prof != nil {
		report.Device = prof.Device
	}
	if report.Instructions == nil {
		report.Instructions = make([]*disassembler.Instruction, 0)
	}
	return report
}

// New returns the renderer for format.
func New(format string, prof *profile.Profile) (Renderer, error) {
	switch format {
	case "text":
		return NewTextRenderer(), nil
	case "json":
		return NewJSONRenderer(prof), nil
	case "yaml":
		return NewYAMLRenderer(prof), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, format)
	}
}
