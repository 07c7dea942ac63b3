package opcode

// align returns the leftmost Width() bits of word, or false when the word is
// too narrow to cover the mask.
func (s Spec) align(word Bits) (uint64, bool) {
	n := s.Width()
	if word.Width < n {
		return 0, false
	}
	return word.Value >> uint(word.Width-n), true
}

// Match checks the literal bits of the mask against the left-aligned word and
// decodes every field present in the mask. The word is expected to be
// preprocessed for this entry already.
func (s Spec) Match(word Bits) (Fields, bool) {
	top, ok := s.align(word)
	if !ok {
		return nil, false
	}
	if top&s.fixedMask != s.fixedBits {
		return nil, false
	}

	fields := make(Fields)
	for _, f := range fieldOrder {
		if !s.HasField(f) {
			continue
		}
		raw, _ := s.extract(top, f)
		fields[f] = s.interpret(f, raw)
	}
	return fields, true
}

// Extract collects the bits of field f from the left-aligned word, in mask
// order. It reports false if the mask has no such field or the word is too
// narrow.
func (s Spec) Extract(word Bits, f Field) (Bits, bool) {
	top, ok := s.align(word)
	if !ok {
		return Bits{}, false
	}
	return s.extractBits(top, f)
}

func (s Spec) extract(top uint64, f Field) (uint64, bool) {
	b, ok := s.extractBits(top, f)
	return b.Value, ok
}

func (s Spec) extractBits(top uint64, f Field) (Bits, bool) {
	n := s.Width()
	var out Bits
	for i := 0; i < n; i++ {
		if Field(s.Mask[i]) != f {
			continue
		}
		out.Value = out.Value<<1 | (top>>uint(n-1-i))&1
		out.Width++
	}
	return out, out.Width > 0
}

func (s Spec) interpret(f Field, v uint64) uint64 {
	switch f {
	case FieldK:
		if s.Mnemonic == Ldi || s.Mnemonic == Subi {
			return v
		}
		// word address or count, expressed in bytes
		return v << 1
	case FieldD:
		if s.Mnemonic == Ldi || s.Mnemonic == Subi || s.Mnemonic == Sbci {
			// only r16-r31 are encodable
			return v + 16
		}
		return v
	default:
		return v
	}
}
