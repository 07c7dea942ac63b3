package avr

import (
	"strings"
)

const (
	chunkSize = 4 // hex digits per 16-bit word

	twoWordPrefix = "94"
	cliWord       = "94F8"
)

// SplitChunks cuts s into consecutive pieces of size characters. The last
// piece is shorter if s does not divide evenly.
func SplitChunks(s string, size int) []string {
	if s == "" || size <= 0 {
		return nil
	}
	chunks := make([]string, 0, (len(s)+size-1)/size)
	for i := 0; i < len(s); i += size {
		chunks = append(chunks, s[i:min(i+size, len(s))])
	}
	return chunks
}

// SwapBytes exchanges the two bytes of a little endian word, AABB -> BBAA.
// Short chunks keep whatever digits they have.
func SwapBytes(chunk string) string {
	lo := chunk[min(2, len(chunk)):min(4, len(chunk))]
	hi := chunk[:min(2, len(chunk))]
	return lo + hi
}

// MergeTwoWordOpcodes joins each 94xx word (other than 94F8, which is cli)
// with the word after it, since jmp and call span two words.
func MergeTwoWordOpcodes(chunks []string) []string {
	merged := make([]string, 0, len(chunks))
	for i := 0; i < len(chunks); {
		if isTwoWord(chunks[i]) && i+1 < len(chunks) {
			merged = append(merged, chunks[i]+chunks[i+1])
			i += 2
			continue
		}
		merged = append(merged, chunks[i])
		i++
	}
	return merged
}

func isTwoWord(chunk string) bool {
	return strings.HasPrefix(chunk, twoWordPrefix) && !strings.EqualFold(chunk, cliWord)
}

// Normalize turns a code payload into instruction words in big endian hex,
// with two-word instructions already merged.
func Normalize(code string) []string {
	chunks := SplitChunks(code, chunkSize)
	for i, chunk := range chunks {
		chunks[i] = SwapBytes(chunk)
	}
	return MergeTwoWordOpcodes(chunks)
}
