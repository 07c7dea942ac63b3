package hexrecord

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/marcinbor85/gohex"
)

// Segment is a contiguous block of code taken from a hex image.
type Segment struct {
	Address uint32
	Code    string // hex digits, two per byte
}

// LoadImage parses a complete Intel HEX image and returns its data segments
// ordered by address. Unlike the record extractors it validates checksums and
// record types, since gohex does.
func LoadImage(r io.Reader) ([]Segment, error) {
	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(r); err != nil {
		return nil, fmt.Errorf("failed to parse hex image: %w", err)
	}

	dataSegments := mem.GetDataSegments()
	segments := make([]Segment, 0, len(dataSegments))
	for _, seg := range dataSegments {
		segments = append(segments, Segment{
			Address: seg.Address,
			Code:    strings.ToUpper(hex.EncodeToString(seg.Data)),
		})
	}
	sort.Slice(segments, func(i, j int) bool {
		return segments[i].Address < segments[j].Address
	})
	return segments, nil
}

// LoadImageFile opens path and loads it with LoadImage.
func LoadImageFile(path string) ([]Segment, error) {
	fpath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("error getting the absolute filepath: %s: %w", path, err)
	}
	file, err := os.Open(fpath)
	if err != nil {
		return nil, fmt.Errorf("error opening filepath: %s: %w", fpath, err)
	}
	defer func() {
		_ = file.Close()
	}()
	return LoadImage(file)
}
