package format

import (
	"strings"
	"unicode/utf16"
)

const hexDigits = "0123456789ABCDEF"

// Quote returns s as a JavaScript string literal. The quote character is the
// one occurring less often in s, single quotes on a tie unless forceDouble
// is set. Printable ASCII is copied; everything else is escaped per UTF-16
// code unit, so astral characters become surrogate pair escapes.
func Quote(s string, forceDouble bool) string {
	units := utf16.Encode([]rune(s))
	quotes, apos := 0, 0
	for _, c := range units {
		switch c {
		case '"':
			quotes++
		case '\'':
			apos++
		}
	}
	quote := uint16('\'')
	if quotes < apos || forceDouble {
		quote = '"'
	}

	var sb strings.Builder
	sb.Grow(len(units) + 16)
	sb.WriteByte(byte(quote))
	for i, c := range units {
		if ' ' <= c && c <= '~' && c != quote && c != '\\' {
			sb.WriteByte(byte(c))
			continue
		}
		if esc := shortEscape(c); esc != 0 {
			sb.WriteByte('\\')
			sb.WriteByte(esc)
			continue
		}
		if c < ' ' && (i+1 == len(units) || !isDigitUnit(units[i+1])) {
			// octal form; safe because no digit follows
			sb.WriteByte('\\')
			if c > 0x7 {
				sb.WriteByte(byte('0' + 0x7&(c>>3)))
			}
			sb.WriteByte(byte('0' + 0x7&c))
			continue
		}
		size := 4
		if c < 256 {
			sb.WriteString(`\x`)
			size = 2
		} else {
			sb.WriteString(`\u`)
		}
		for shift := (size - 1) * 4; shift >= 0; shift -= 4 {
			sb.WriteByte(hexDigits[0xf&(c>>shift)])
		}
	}
	sb.WriteByte(byte(quote))
	return sb.String()
}

func shortEscape(c uint16) byte {
	switch c {
	case '\b':
		return 'b'
	case '\f':
		return 'f'
	case '\n':
		return 'n'
	case '\r':
		return 'r'
	case '\t':
		return 't'
	case '"':
		return '"'
	case '\'':
		return '\''
	case '\\':
		return '\\'
	}
	return 0
}

func isDigitUnit(c uint16) bool {
	return '0' <= c && c <= '9'
}
