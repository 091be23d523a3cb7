// Command rv32i loads a flat RV32I program image and runs it to
// completion, in the spirit of bassosimone-risc32's cmd/vm but driven by a
// cobra command tree instead of the flag package.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rv32i-labs/rv32i/internal/trace"
	"github.com/rv32i-labs/rv32i/pkg/cpu"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rv32i",
		Short: "An interpreting emulator for the RV32I base instruction set",
	}
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var (
		filename  string
		verbose   bool
		debug     bool
		tracePath string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load a flat binary image at address 0 and execute it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if filename == "" {
				return fmt.Errorf("rv32i run: -f/--file is required")
			}
			program, err := os.ReadFile(filename)
			if err != nil {
				return err
			}

			machine := cpu.New()
			machine.Tracer = buildTracer(verbose, debug, tracePath)

			code, err := machine.Run(program)
			if err != nil {
				return err
			}
			os.Exit(int(code))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filename, "file", "f", "", "flat RV32I program image to run")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace one line per executed instruction")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "trace the full register file per instruction")
	cmd.Flags().StringVar(&tracePath, "trace", "", "write the trace to this file instead of stderr")
	return cmd
}

func buildTracer(verbose, debug bool, tracePath string) cpu.Tracer {
	level := trace.LevelQuiet
	switch {
	case debug:
		level = trace.LevelDebug
	case verbose:
		level = trace.LevelVerbose
	case tracePath != "":
		// --trace on its own still means "trace", not just "redirect".
		level = trace.LevelVerbose
	}
	if level == trace.LevelQuiet && tracePath == "" {
		return cpu.NopTracer{}
	}

	out := os.Stderr
	if tracePath != "" {
		f, err := os.Create(tracePath)
		if err == nil {
			// f is intentionally left open for the process lifetime; the
			// tracer owns it until the CPU halts and the process exits.
			return trace.New(f, level)
		}
	}
	return trace.New(out, level)
}
