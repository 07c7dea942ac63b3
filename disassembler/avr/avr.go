// Package avr implements disassembler.Disassembler for the supported AVR
// instruction subset.
package avr

import (
	"fmt"

	"github.com/ChainSafe/hexdis/disassembler"
	"github.com/ChainSafe/hexdis/hexrecord"
	"github.com/ChainSafe/hexdis/opcode"
)

// defaultStep is how far the address moves past a word nothing matched.
const defaultStep = 2

type Decoder struct{}

func New() *Decoder {
	return &Decoder{}
}

func (d *Decoder) Disassemble(mode disassembler.Source, target string) ([]*disassembler.Instruction, error) {
	switch mode {
	case disassembler.SourceRecord:
		return d.DecodeRecord(target), nil
	case disassembler.SourceFile:
		segments, err := hexrecord.LoadImageFile(target)
		if err != nil {
			return nil, err
		}
		instructions := make([]*disassembler.Instruction, 0)
		for _, seg := range segments {
			instructions = append(instructions, d.DecodeCode(seg.Code, seg.Address)...)
		}
		return instructions, nil
	default:
		return nil, fmt.Errorf("source %d: %w", mode, disassembler.ErrUnsupported)
	}
}

// DecodeRecord disassembles the payload of a single hex record, starting at
// the record's address. A malformed record decodes to nothing.
func (d *Decoder) DecodeRecord(line string) []*disassembler.Instruction {
	rec, ok := hexrecord.Parse(line)
	if !ok {
		return nil
	}
	return d.DecodeCode(rec.Code, uint32(rec.Address))
}

// DecodeCode disassembles a little endian code payload given as hex digits,
// with the first word at base.
func (d *Decoder) DecodeCode(code string, base uint32) []*disassembler.Instruction {
	words := Normalize(code)
	instructions := make([]*disassembler.Instruction, 0, len(words))
	address := base
	for _, word := range words {
		ins := decodeWord(word, address)
		instructions = append(instructions, ins)
		address += uint32(ins.Size)
	}
	return instructions
}

func decodeWord(word string, address uint32) *disassembler.Instruction {
	unknown := &disassembler.Instruction{
		Address:  address,
		Word:     word,
		Mnemonic: disassembler.Unknown,
		Size:     defaultStep,
	}

	raw, err := opcode.FromHex(word)
	if err != nil {
		return unknown
	}
	spec, fields, ok := opcode.Lookup(raw)
	if !ok {
		return unknown
	}

	return &disassembler.Instruction{
		Address:  address,
		Word:     word,
		Mnemonic: spec.Mnemonic,
		Params:   formatParams(spec, fields, raw, address),
		Size:     spec.Size,
		Fields:   fieldNames(fields),
	}
}

func fieldNames(fields opcode.Fields) map[string]uint64 {
	if len(fields) == 0 {
		return nil
	}
	named := make(map[string]uint64, len(fields))
	for f, v := range fields {
		named[string(rune(f))] = v
	}
	return named
}
