package opcode

// DecodeBranchOffset turns the k bits of a relative branch into a signed byte
// offset. The field is a two's complement word count.
func DecodeBranchOffset(k Bits) int64 {
	if k.Width == 0 {
		return 0
	}
	mask := uint64(1)<<uint(k.Width) - 1
	v := k.Value & mask
	if msb, _ := k.Bit(0); msb == 1 {
		inverted := ^v & mask
		return -int64((inverted + 1) << 1)
	}
	return int64(v << 1)
}
