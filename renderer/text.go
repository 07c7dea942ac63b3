// Package renderer provides a way to render disassembly in different formats.
package renderer

import (
	"io"
	"strings"

	"github.com/ChainSafe/hexdis/disassembler"
)

// TextRenderer writes one disassembly line per instruction.
type TextRenderer struct{}

// NewTextRenderer creates a new instance of TextRenderer.
func NewTextRenderer() Renderer {
	return &TextRenderer{}
}

// Render writes the listing in address order, exactly as decoded.
func (r *TextRenderer) Render(instructions []*disassembler.Instruction, output io.Writer) error {
	var listing strings.Builder
	for _, ins := range instructions {
		listing.WriteString(ins.String())
		listing.WriteString("\n")
	}

	// Print the complete listing at once
	_, err := io.WriteString(output, listing.String())
	return err
}

// Format returns the format type.
func (r *TextRenderer) Format() string {
	return "text"
}
