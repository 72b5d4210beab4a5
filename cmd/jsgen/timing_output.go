package main

import (
	"fmt"
	"io"

	"jsgen/internal/driver"
)

func printTimings(out io.Writer, results []driver.EmitResult) {
	if out == nil || len(results) == 0 {
		return
	}
	report := driver.TotalTiming(results)
	if _, err := fmt.Fprint(out, report.Summary(fmt.Sprintf("phase timings (%d units)", len(results)))); err != nil {
		panic(err)
	}
}
