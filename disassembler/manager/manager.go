package manager

import (
	"fmt"

	"github.com/ChainSafe/hexdis/disassembler"
	"github.com/ChainSafe/hexdis/disassembler/avr"
)

func NewDisassembler(typ disassembler.Type) (disassembler.Disassembler, error) {
	switch typ {
	case disassembler.TypeAVR:
		return avr.New(), nil
	default:
		return nil, fmt.Errorf("type %d: %w", typ, disassembler.ErrUnsupported)
	}
}
