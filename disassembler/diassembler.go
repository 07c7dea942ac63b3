// Package disassembler defines the decoded instruction model and the
// interface every disassembler backend implements.
package disassembler

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned for an unknown disassembler type or source.
var ErrUnsupported = errors.New("disassembler not supported")

// Source tells a disassembler how to interpret its target.
type Source int64

const (
	SourceRecord Source = iota + 1 // target is a single hex record
	SourceFile                     // target is the path of a hex image
)

// Unknown is the mnemonic reported for words matching no opcode.
const Unknown = "unknown"

type Disassembler interface {
	Disassemble(mode Source, target string) ([]*Instruction, error)
}

type Type int64

const (
	TypeAVR Type = iota + 1
)

// Instruction is one decoded (or unrecognised) instruction.
type Instruction struct {
	Address  uint32            `json:"address" yaml:"address"`
	Word     string            `json:"word" yaml:"word"` // hex digits as decoded, after byte swapping
	Mnemonic string            `json:"mnemonic" yaml:"mnemonic"`
	Params   string            `json:"params,omitempty" yaml:"params,omitempty"`
	Size     int               `json:"size" yaml:"size"`
	Fields   map[string]uint64 `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// String renders the instruction as a single disassembly line.
func (i *Instruction) String() string {
	if i.Params == "" {
		return fmt.Sprintf("0x%x: %s", i.Address, i.Mnemonic)
	}
	return fmt.Sprintf("0x%x: %s %s", i.Address, i.Mnemonic, i.Params)
}

// IsUnknown reports whether no opcode matched the instruction word.
func (i *Instruction) IsUnknown() bool {
	return i.Mnemonic == Unknown
}
