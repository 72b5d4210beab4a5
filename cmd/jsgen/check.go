package main

import (
	"github.com/spf13/cobra"

	"jsgen/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file|directory>...",
	Short: "Validate syntax trees without writing output",
	Long: `Decode and check each AST document, emit it in memory and, with --reparse,
verify the generated code. Nothing is written to disk.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	registerEmitFlags(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()

	s, err := resolveEmitSettings(cmd)
	if err != nil {
		return err
	}
	s.opts.NoWrite = true

	results, err := driver.EmitPaths(cmd.Context(), args, s.opts)
	if err != nil && results == nil {
		return err
	}
	if printErr := printDiagnostics(cmd, cmd.ErrOrStderr(), results, s); printErr != nil {
		return printErr
	}
	if s.showTimings {
		printTimings(cmd.ErrOrStderr(), results)
	}
	printSummary(cmd.ErrOrStderr(), "checked", results, s)
	if err != nil {
		return err
	}
	return failure(results)
}
