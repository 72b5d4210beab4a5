package fuzztests

import (
	"testing"
	"unicode/utf8"

	"github.com/dop251/goja"

	"jsgen/internal/format"
)

// FuzzQuoteRoundTrip checks that a quoted literal evaluates back to the
// original string in a JavaScript runtime, for both quote preferences.
func FuzzQuoteRoundTrip(f *testing.F) {
	for _, seed := range []string{"", "he said \"hi\"", "it's", "\x00\x01", "a b", "</script>", "tab\there", "😀", "\\"} {
		f.Add(seed, false)
		f.Add(seed, true)
	}
	f.Fuzz(func(t *testing.T, s string, forceDouble bool) {
		if !utf8.ValidString(s) || len(s) > 4096 {
			t.Skip()
		}
		lit := format.Quote(s, forceDouble)
		if again := format.Quote(s, forceDouble); again != lit {
			t.Fatalf("Quote is not deterministic: %q vs %q", lit, again)
		}
		v, err := goja.New().RunString("(" + lit + ")")
		if err != nil {
			t.Fatalf("literal %s does not parse: %v", lit, err)
		}
		if got := v.String(); got != s {
			t.Fatalf("literal %s evaluates to %q, want %q", lit, got, s)
		}
	})
}
