package cmd

import (
	"fmt"
	"log"

	"github.com/urfave/cli/v2"

	"github.com/ChainSafe/hexdis/disassembler"
	"github.com/ChainSafe/hexdis/hexrecord"
)

func CreateDecodeCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "decode",
		Usage:       "Disassembles a single hex record",
		Description: "Disassembles the data payload of one Intel HEX record, e.g. :10000000E0E0F894FFCF0000000000000000000000",
		ArgsUsage:   "<record>",
		Action:      action,
		Flags:       commonFlags(),
	}
}

var DecodeCommand = CreateDecodeCommand(DecodeRecord)

func DecodeRecord(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("expected exactly one hex record, got %d arguments", ctx.NArg())
	}
	record := ctx.Args().First()
	if _, ok := hexrecord.Parse(record); !ok {
		log.Printf("malformed record, nothing to decode: %q", record)
	}
	return run(ctx, disassembler.SourceRecord, record)
}
