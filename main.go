package main

import (
	"context"
	"log"
	"os"

	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/urfave/cli/v2"

	"github.com/ChainSafe/hexdis/cmd"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	app := cli.NewApp()
	app.Name = "hexdis"
	app.Usage = "AVR Intel HEX Disassembler"
	app.Description = "Disassembles Intel HEX records of AVR firmware"
	app.Version = buildinfo.Version(version, commit, date)
	app.Commands = []*cli.Command{
		cmd.DecodeCommand,
		cmd.FileCommand,
	}
	err := app.RunContext(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
