package avr

import (
	"fmt"

	"github.com/ChainSafe/hexdis/opcode"
)

// formatParams renders the operand text of a matched instruction. raw is the
// word before preprocessing; branch offsets are read from it.
func formatParams(spec *opcode.Spec, fields opcode.Fields, raw opcode.Bits, address uint32) string {
	switch spec.Mnemonic {
	case opcode.Jmp, opcode.Call:
		return fmt.Sprintf("0x%x", fields[opcode.FieldK])
	case opcode.Rjmp, opcode.Breq, opcode.Brne:
		// only words starting with 11 reach here, so raw is 16 bits wide
		k, _ := spec.Extract(raw, opcode.FieldK)
		offset := opcode.DecodeBranchOffset(k)
		// a target below zero prints as 0x-N
		target := int64(address) + int64(spec.Size) + offset
		return fmt.Sprintf(".%d ; 0x%x", offset, target)
	case opcode.Sbi, opcode.Cbi:
		return fmt.Sprintf("0x%x, %d", fields[opcode.FieldP], fields[opcode.FieldB])
	case opcode.Out:
		return fmt.Sprintf("0x%x, r%d", fields[opcode.FieldP], fields[opcode.FieldR])
	case opcode.Ldi, opcode.Subi, opcode.Sbci:
		return fmt.Sprintf("r%d, 0x%x", fields[opcode.FieldD], fields[opcode.FieldK])
	case opcode.Eor:
		return fmt.Sprintf("r%d, r%d", fields[opcode.FieldD], fields[opcode.FieldR])
	default:
		return ""
	}
}
