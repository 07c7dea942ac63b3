// Package opcode holds the AVR opcode table and the mask matching used to
// recognise instruction words.
package opcode

import "strings"

// Mnemonics recognised by the decoder.
const (
	Jmp  = "jmp"
	Call = "call"
	Eor  = "eor"
	Sbi  = "sbi"
	Cbi  = "cbi"
	Ldi  = "ldi"
	Rjmp = "rjmp"
	Breq = "breq"
	Brne = "brne"
	Out  = "out"
	Subi = "subi"
	Cli  = "cli"
	Sbci = "sbci"
)

// Field is a placeholder letter inside a mask template.
type Field byte

const (
	FieldK Field = 'k' // immediate or address
	FieldP Field = 'P' // I/O port
	FieldB Field = 'b' // bit index
	FieldD Field = 'd' // destination register
	FieldR Field = 'r' // source register
)

// fieldOrder is the order fields are reported in.
var fieldOrder = []Field{FieldK, FieldP, FieldB, FieldD, FieldR}

func isField(c byte) bool {
	switch Field(c) {
	case FieldK, FieldP, FieldB, FieldD, FieldR:
		return true
	}
	return false
}

// Fields maps the letters of a matched mask to their decoded values.
type Fields map[Field]uint64

// Spec is one immutable opcode table entry.
type Spec struct {
	Mnemonic string
	Mask     string // fixed bits and field letters, MSB first
	Size     int    // encoded size in bytes

	fixedMask uint64 // 1 where the mask holds a literal bit
	fixedBits uint64 // the literal bits themselves
}

func newSpec(mnemonic, mask string, size int) Spec {
	s := Spec{
		Mnemonic: mnemonic,
		Mask:     strings.ReplaceAll(mask, " ", ""),
		Size:     size,
	}
	for _, c := range []byte(s.Mask) {
		s.fixedMask <<= 1
		s.fixedBits <<= 1
		if isField(c) {
			continue
		}
		s.fixedMask |= 1
		if c == '1' {
			s.fixedBits |= 1
		}
	}
	return s
}

// Width is the number of bits the mask covers.
func (s Spec) Width() int {
	return len(s.Mask)
}

// HasField reports whether the mask contains the field letter.
func (s Spec) HasField(f Field) bool {
	return strings.IndexByte(s.Mask, byte(f)) >= 0
}

// Table lists the supported opcodes. Lookups scan it in order and the first
// entry whose fixed bits match wins. ldi appears twice.
var Table = []Spec{
	newSpec(Jmp, "1001 010k kkkk 110k kkkk kkkk kkkk kkkk", 4),
	newSpec(Call, "1001 010k kkkk 111k kkkk kkkk kkkk kkkk", 4),
	newSpec(Eor, "0010 01rd dddd rrrr", 2),
	newSpec(Sbi, "1001 1010 PPPP Pbbb", 2),
	newSpec(Cbi, "1001 1000 PPPP Pbbb", 2),
	newSpec(Ldi, "1110 kkkk dddd kkkk", 2),
	newSpec(Rjmp, "1100 kkkk kkkk kkkk", 2),
	newSpec(Breq, "1111 00kk kkkk k001", 2),
	newSpec(Out, "1011 1PPr rrrr PPPP", 2),
	newSpec(Ldi, "1110 kkkk dddd kkkk", 2),
	newSpec(Subi, "1010 kkkk dddd kkkk", 2),
	newSpec(Cli, "1001 0100 1111 1000", 2),
	newSpec(Brne, "1111 01kk kkkk k001", 2),
	newSpec(Sbci, "0100 kkkk dddd kkkk", 2),
}

// Lookup tries every table entry against the raw word, preprocessing it for
// each candidate, and returns the first match.
func Lookup(word Bits) (*Spec, Fields, bool) {
	for i := range Table {
		spec := &Table[i]
		fields, ok := spec.Match(Preprocess(word, spec.Mnemonic))
		if ok {
			return spec, fields, true
		}
	}
	return nil, nil, false
}
