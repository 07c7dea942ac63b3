package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ChainSafe/hexdis/disassembler"
)

func CreateFileCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "file",
		Usage:       "Disassembles an Intel HEX image file",
		Description: "Loads every data record of an Intel HEX file and disassembles each contiguous segment from its load address",
		ArgsUsage:   "<image.hex>",
		Action:      action,
		Flags:       commonFlags(),
	}
}

var FileCommand = CreateFileCommand(DecodeFile)

func DecodeFile(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return fmt.Errorf("missing hex file argument")
	}
	return run(ctx, disassembler.SourceFile, path)
}
