package diag

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Snippet squeezes rendered code onto one line and cuts it to width
// terminal columns so it can follow a diagnostic message.
func Snippet(code string, width int) string {
	value := strings.Join(strings.Fields(code), " ")
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
