package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsgen/internal/driver"
)

var emitCmd = &cobra.Command{
	Use:   "emit [flags] <file|directory>...",
	Short: "Generate JavaScript from serialized syntax trees",
	Long: `Decode each AST document (.json, .mpk), check it, and write the generated
JavaScript next to the input or under --out-dir. Directories are searched
recursively for documents.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEmit,
}

func init() {
	registerEmitFlags(emitCmd)
	emitCmd.Flags().String("out-dir", "", "directory for generated files (overrides [emit].out_dir)")
	emitCmd.Flags().Bool("no-cache", false, "disable the emission cache")
	emitCmd.Flags().Bool("clear-cache", false, "drop cached emissions before running")
	emitCmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
}

func runEmit(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()

	s, err := resolveEmitSettings(cmd)
	if err != nil {
		return err
	}

	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	clearCache, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	if !noCache {
		cache, cacheErr := driver.OpenDiskCache(s.cacheDir, "jsgen")
		switch {
		case cacheErr != nil:
			// emission still works, just uncached
			if !s.quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "cache disabled: %v\n", cacheErr)
			}
		case clearCache:
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
			s.opts.Cache = cache
		default:
			s.opts.Cache = cache
		}
	}

	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	inputs, err := driver.CollectInputs(args)
	if err != nil {
		return err
	}
	var results []driver.EmitResult
	if shouldUseTUI(mode, len(inputs)) {
		results, err = runEmitWithUI(cmd.Context(), "emitting", inputs, s.opts)
	} else {
		results, err = driver.EmitInputs(cmd.Context(), inputs, s.opts)
	}
	if printErr := printDiagnostics(cmd, cmd.ErrOrStderr(), results, s); printErr != nil {
		return printErr
	}
	if s.showTimings {
		printTimings(cmd.ErrOrStderr(), results)
	}
	printSummary(cmd.ErrOrStderr(), "emitted", results, s)
	if err != nil {
		return err
	}
	return failure(results)
}
