package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ChainSafe/hexdis/disassembler/avr"
	"github.com/ChainSafe/hexdis/hexrecord"
)

// Builds a hex record from instruction words written the way a datasheet
// lists them (most significant byte first), e.g.
//
//	record-generator -address 0x100 E0E0 94F8 940C0034
func main() {
	address := flag.String("address", "0", "Load address of the record")
	output := flag.String("output", "", "Output file for the generated record (optional)")
	verbose := flag.Bool("v", false, "Print the disassembly of the generated record")

	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Println("Error: at least one instruction word is required.")
		flag.Usage()
		os.Exit(1)
	}

	addr, err := strconv.ParseUint(*address, 0, 16)
	if err != nil {
		fmt.Printf("Error parsing address: %v\n", err)
		os.Exit(1)
	}

	data, err := encodeWords(flag.Args())
	if err != nil {
		fmt.Printf("Error encoding words: %v\n", err)
		os.Exit(1)
	}

	record, err := hexrecord.Format(uint16(addr), data)
	if err != nil {
		fmt.Printf("Error generating record: %v\n", err)
		os.Exit(1)
	}

	if *output != "" {
		err = os.WriteFile(*output, []byte(record+"\n"), 0644)
		if err != nil {
			fmt.Printf("Error writing to output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Record written to %s\n", *output)
	} else {
		fmt.Println(record)
	}

	if *verbose {
		for _, ins := range avr.New().DecodeRecord(record) {
			fmt.Println(ins)
		}
	}
}

// encodeWords turns big endian words of 4 or 8 hex digits into the little
// endian byte stream stored in flash.
func encodeWords(words []string) ([]byte, error) {
	var data []byte
	for _, word := range words {
		word = strings.TrimPrefix(strings.ToLower(word), "0x")
		if len(word) != 4 && len(word) != 8 {
			return nil, fmt.Errorf("word %q must have 4 or 8 hex digits", word)
		}
		for _, chunk := range avr.SplitChunks(word, 4) {
			b, err := hex.DecodeString(avr.SwapBytes(chunk))
			if err != nil {
				return nil, fmt.Errorf("invalid word %q: %w", word, err)
			}
			data = append(data, b...)
		}
	}
	return data, nil
}
