package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"jsgen/internal/astio"
)

var packCmd = &cobra.Command{
	Use:   "pack [flags] <document>",
	Short: "Convert an AST document between JSON and msgpack",
	Long: `Decode an AST document, validate it, and re-encode it in the other format
(JSON documents become .mpk, msgpack documents become .json) or in the
format chosen with --to.`,
	Args: cobra.ExactArgs(1),
	RunE: runPack,
}

func init() {
	packCmd.Flags().StringP("output", "o", "", "output path (default: input with the target extension, - for stdout)")
	packCmd.Flags().String("to", "", "target format (json|msgpack; default: the other one)")
}

func runPack(cmd *cobra.Command, args []string) error {
	in := args[0]
	from := astio.FormatFromPath(in)
	if from == astio.FormatUnknown {
		return fmt.Errorf("%s: unknown document extension", in)
	}

	toStr, err := cmd.Flags().GetString("to")
	if err != nil {
		return fmt.Errorf("failed to get to flag: %w", err)
	}
	to := astio.FormatJSON
	if from == astio.FormatJSON {
		to = astio.FormatMsgpack
	}
	if toStr != "" {
		if to, err = astio.ParseFormat(toStr); err != nil {
			return err
		}
	}

	out, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	if out == "" {
		out = strings.TrimSuffix(in, filepath.Ext(in)) + to.Ext()
	}
	if out == in {
		return fmt.Errorf("%s: refusing to overwrite the input", in)
	}

	doc, err := astio.Load(in)
	if err != nil {
		return err
	}
	// a full decode validates the tree before it is written back
	prog, err := astio.Decode(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	doc, err = astio.Encode(prog)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	if out == "-" {
		return astio.Write(cmd.OutOrStdout(), doc, to)
	}
	data, err := astio.Marshal(doc, to)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); !quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s -> %s (%s, %d bytes)\n", in, out, to, len(data))
	}
	return nil
}
