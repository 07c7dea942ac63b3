// Package cmd defines all the commands for the cli
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"

	"github.com/ChainSafe/hexdis/disassembler"
	"github.com/ChainSafe/hexdis/disassembler/manager"
	"github.com/ChainSafe/hexdis/profile"
	"github.com/ChainSafe/hexdis/renderer"
)

var (
	ProfileFlag = &cli.PathFlag{
		Name:     "profile",
		Usage:    "Path to a YAML profile with default settings",
		Required: false,
	}
	FormatFlag = &cli.StringFlag{
		Name:        "format",
		Usage:       "format of the output. Options: text, json, yaml",
		Required:    false,
		DefaultText: profile.DefaultFormat,
	}
	OutputPathFlag = &cli.PathFlag{
		Name:     "output",
		Usage:    "output file path for the disassembly. Default: stdout",
		Required: false,
	}
	DebugFlag = &cli.BoolFlag{
		Name:     "debug",
		Usage:    "dump decoded instructions to stderr",
		Required: false,
		Value:    false,
	}
)

func commonFlags() []cli.Flag {
	return []cli.Flag{
		ProfileFlag,
		FormatFlag,
		OutputPathFlag,
		DebugFlag,
	}
}

// run disassembles target and writes the report the flags ask for.
func run(ctx *cli.Context, mode disassembler.Source, target string) error {
	prof, err := loadProfile(ctx.Path(ProfileFlag.Name))
	if err != nil {
		return fmt.Errorf("error loading profile: %w", err)
	}

	dis, err := manager.NewDisassembler(disassembler.TypeAVR)
	if err != nil {
		return err
	}
	instructions, err := dis.Disassemble(mode, target)
	if err != nil {
		return fmt.Errorf("error disassembling %s: %w", target, err)
	}

	if ctx.Bool(DebugFlag.Name) {
		dumpInstructions(ctx.App.ErrWriter, instructions)
	}

	format := prof.Format
	if ctx.IsSet(FormatFlag.Name) {
		format = ctx.String(FormatFlag.Name)
	}
	if err := writeReport(ctx.App.Writer, instructions, format, ctx.Path(OutputPathFlag.Name), prof); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}
	return nil
}

// dumpInstructions writes the full structure of every instruction. Methods
// are disabled so spew does not fall back to Instruction.String.
func dumpInstructions(w io.Writer, instructions []*disassembler.Instruction) {
	unknown := 0
	for _, ins := range instructions {
		if ins.IsUnknown() {
			unknown++
		}
	}
	(&spew.ConfigState{Indent: " ", DisableMethods: true}).Fdump(w, instructions)
	fmt.Fprintf(w, "%d instructions, %d unknown\n", len(instructions), unknown)
}

func loadProfile(path string) (*profile.Profile, error) {
	if path == "" {
		return profile.Default(), nil
	}
	return profile.LoadProfile(path)
}

// writeReport outputs the instructions in the specified format.
func writeReport(stdout io.Writer, instructions []*disassembler.Instruction, format, outputPath string, prof *profile.Profile) error {
	rendererInstance, err := renderer.New(format, prof)
	if err != nil {
		return err
	}

	output := stdout
	if outputPath != "" {
		absPath, err := filepath.Abs(outputPath)
		if err != nil {
			return fmt.Errorf("unable to determine absolute path: %w", err)
		}
		file, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("unable to open output file: %w", err)
		}
		defer func() {
			_ = file.Close()
		}()
		output = file
	}

	return rendererInstance.Render(instructions, output)
}
