// Package hexrecord extracts the fields of Intel HEX style records.
//
// Only the byte count, address and data payload are looked at. The record
// type and checksum are ignored.
package hexrecord

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// StartCode marks the beginning of every record.
	StartCode = ':'

	minRecordLength = 11
	dataOffset      = 8 // into the record with the start code stripped
)

// Record is the decodable part of a single hex record.
type Record struct {
	ByteCount int    // as declared, even if the payload is truncated
	Address   uint16
	Code      string // data payload as hex digits
}

func isRecord(line string) bool {
	return len(line) >= minRecordLength && line[0] == StartCode
}

// ExtractCodeField returns the data payload of the record. A byte count larger
// than the available text yields a truncated payload. It reports false for a
// malformed record.
func ExtractCodeField(line string) (string, bool) {
	if !isRecord(line) {
		return "", false
	}
	body := line[1:]
	count, err := strconv.ParseUint(body[0:2], 16, 8)
	if err != nil {
		return "", false
	}

	start, end := dataOffset, dataOffset+int(count)*2
	if start > len(body) {
		start = len(body)
	}
	if end > len(body) {
		end = len(body)
	}
	code := body[start:end]
	if !isHex(code) {
		return "", false
	}
	return code, true
}

// ExtractStartingAddress returns the 16-bit load address of the record. It
// reports false for a malformed record.
func ExtractStartingAddress(line string) (uint16, bool) {
	if !isRecord(line) {
		return 0, false
	}
	addr, err := strconv.ParseUint(line[3:7], 16, 16)
	if err != nil {
		return 0, false
	}
	return uint16(addr), true
}

// Parse extracts every decodable field of the record.
func Parse(line string) (*Record, bool) {
	addr, ok := ExtractStartingAddress(line)
	if !ok {
		return nil, false
	}
	code, ok := ExtractCodeField(line)
	if !ok {
		return nil, false
	}
	// ExtractCodeField already validated the byte count
	count, _ := strconv.ParseUint(line[1:3], 16, 8)
	return &Record{
		ByteCount: int(count),
		Address:   addr,
		Code:      code,
	}, true
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Format builds a data record (type 00) carrying data at address, including
// its checksum. It is the inverse of Parse.
func Format(address uint16, data []byte) (string, error) {
	if len(data) > 0xFF {
		return "", fmt.Errorf("record holds at most 255 bytes, got %d", len(data))
	}

	var b strings.Builder
	sum := byte(len(data)) + byte(address>>8) + byte(address)
	fmt.Fprintf(&b, "%c%02X%04X00", StartCode, len(data), address)
	for _, v := range data {
		fmt.Fprintf(&b, "%02X", v)
		sum += v
	}
	fmt.Fprintf(&b, "%02X", -sum)
	return b.String(), nil
}
