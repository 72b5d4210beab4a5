package format

import "testing"

func TestQuote(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		forceDouble bool
		want        string
	}{
		{"double-quotes-inside", `he said "hi"`, false, `'he said "hi"'`},
		{"apostrophe-inside", `it's`, false, `"it's"`},
		{"tie-prefers-single", `'"`, false, `'\'"'`},
		{"forced-double", `a'b`, true, `"a'b"`},
		{"short-escapes", "a\nb\tc\r\b\f", false, `'a\nb\tc\r\b\f'`},
		{"backslash", `a\b`, false, `'a\\b'`},
		{"octal-at-end", "\x00", false, `'\0'`},
		{"octal-two-digits", "\x1f!", false, `'\37!'`},
		{"hex-before-digit", "\x001", false, `'\x001'`},
		{"delete-char", "\x7f", false, `'\x7F'`},
		{"latin1", "\u00e9", false, `'\xE9'`},
		{"bmp", "\u20ac", false, `'\u20AC'`},
		{"astral", "\U0001F600", false, `'\uD83D\uDE00'`},
		{"line-separator", "\u2028", false, `'\u2028'`},
		{"empty", "", false, `''`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quote(tt.in, tt.forceDouble)
			if got != tt.want {
				t.Fatalf("want %s, got %s", tt.want, got)
			}
			if again := Quote(tt.in, tt.forceDouble); again != got {
				t.Fatalf("Quote is not deterministic: %s then %s", got, again)
			}
		})
	}
}
