package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"jsgen/internal/diagfmt"
	"jsgen/internal/driver"
)

// printDiagnostics writes the diagnostics of every unit in the chosen
// format. Bags are sorted in place.
func printDiagnostics(cmd *cobra.Command, w io.Writer, results []driver.EmitResult, s emitSettings) error {
	files := make([]diagfmt.FileBag, 0, len(results))
	for i := range results {
		r := &results[i]
		if r.Bag == nil || r.Bag.Len() == 0 {
			continue
		}
		r.Bag.Sort()
		r.Bag.Dedup()
		files = append(files, diagfmt.FileBag{File: r.Path, Bag: r.Bag})
	}
	if s.diagFormat == "json" {
		return diagfmt.JSON(w, files, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     s.withNotes,
		})
	}
	opts := diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		Width:     80,
		ShowNotes: s.withNotes,
	}
	for _, fb := range files {
		if err := diagfmt.Pretty(w, fb.File, fb.Bag, opts); err != nil {
			return err
		}
	}
	return nil
}

// printSummary reports batch totals unless --quiet is set.
func printSummary(w io.Writer, verb string, results []driver.EmitResult, s emitSettings) {
	if s.quiet {
		return
	}
	sum := driver.Summarize(results)
	fmt.Fprintf(w, "%s %d unit(s): %d failed, %d cached, %d with warnings, %d bytes\n",
		verb, sum.Units, sum.Failed, sum.Cached, sum.Warnings, sum.Bytes)
}

// failure turns failed units into the command error.
func failure(results []driver.EmitResult) error {
	sum := driver.Summarize(results)
	if sum.Failed == 0 {
		return nil
	}
	for i := range results {
		if results[i].Err != nil {
			return fmt.Errorf("%d of %d unit(s) failed; first: %s: %w", sum.Failed, sum.Units, results[i].Path, results[i].Err)
		}
	}
	return nil
}
