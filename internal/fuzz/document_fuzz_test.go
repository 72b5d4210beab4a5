package fuzztests

import (
	"testing"
	"time"

	"jsgen/internal/astio"
	"jsgen/internal/check"
	"jsgen/internal/format"
)

// emitTimeout bounds one decode-check-emit run; longer means a hang.
const emitTimeout = 5 * time.Second

// FuzzDocumentEmission feeds arbitrary JSON through the pipeline. Malformed
// documents and rejected trees are fine; panics are not, and a tree that
// passes the check renders in both modes or in neither.
func FuzzDocumentEmission(f *testing.F) {
	addCorpusSeeds(f)
	f.Add([]byte(`{"version":1,"program":{"kind":"Program"}}`))
	f.Add([]byte(`{"version":1,"program":{"kind":"Program","stmts":[{"kind":"Break","name":"x"}]}}`))
	f.Add([]byte(`{"version":1,"program":{"kind":"Program","stmts":[{"kind":"ExprStmt"}]}}`))

	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		}

		done := make(chan struct{})
		go func() {
			defer close(done)
			doc, err := astio.Unmarshal(input, astio.FormatJSON)
			if err != nil {
				return
			}
			prog, err := astio.Decode(doc)
			if err != nil {
				return
			}
			if check.Program(prog, 64).HasErrors() {
				return
			}
			_, prettyErr := format.Program(prog, format.Options{})
			_, compactErr := format.Program(prog, format.Options{Compact: true})
			if (prettyErr == nil) != (compactErr == nil) {
				t.Errorf("modes disagree: pretty=%v compact=%v", prettyErr, compactErr)
			}
		}()

		select {
		case <-done:
		case <-time.After(emitTimeout):
			t.Fatalf("emission hang detected after %v\ninput (%d bytes): %q",
				emitTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], "..."...)
}
