package driver

import "jsgen/internal/observ"

// Summary counts unit outcomes of a batch.
type Summary struct {
	Units    int
	Failed   int
	Cached   int
	Warnings int
	Bytes    int
}

// Summarize tallies results.
func Summarize(results []EmitResult) Summary {
	var s Summary
	for i := range results {
		r := &results[i]
		s.Units++
		if r.Err != nil {
			s.Failed++
		}
		if r.Cached {
			s.Cached++
		}
		if r.Bag != nil && r.Bag.HasWarnings() && !r.Bag.HasErrors() {
			s.Warnings++
		}
		s.Bytes += len(r.Output)
	}
	return s
}

// TotalTiming merges the per-unit phase timings of a batch.
func TotalTiming(results []EmitResult) observ.Report {
	var total observ.Report
	for i := range results {
		total.Merge(results[i].Timing)
	}
	return total
}
