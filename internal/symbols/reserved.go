package symbols

import (
	"unicode"
	"unicode/utf8"
)

// reservedWords are the ECMAScript 5 keywords, future reserved words
// (strict mode included) and the literal names.
var reservedWords = []string{
	"break", "case", "catch", "continue", "debugger", "default", "delete",
	"do", "else", "finally", "for", "function", "if", "in", "instanceof",
	"new", "return", "switch", "this", "throw", "try", "typeof", "var",
	"void", "while", "with",
	"class", "const", "enum", "export", "extends", "import", "super",
	"implements", "interface", "let", "package", "private", "protected",
	"public", "static", "yield",
	"null", "true", "false",
}

var reservedSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(reservedWords))
	for _, w := range reservedWords {
		m[w] = struct{}{}
	}
	return m
}()

// IsReserved reports whether ident cannot be used as a binding name.
func IsReserved(ident string) bool {
	_, ok := reservedSet[ident]
	return ok
}

// IsIdentifierName reports whether s lexes as a single IdentifierName.
// Reserved words are identifier names too; combine with IsReserved to
// check for a valid binding.
func IsIdentifierName(s string) bool {
	if s == "" {
		return false
	}
	first := true
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size <= 1 {
			return false
		}
		if first {
			if !isIdentStart(r) {
				return false
			}
			first = false
		} else if !isIdentPart(r) {
			return false
		}
		s = s[size:]
	}
	return true
}

func isIdentStart(r rune) bool {
	return r == '$' || r == '_' || unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)
}

func isIdentPart(r rune) bool {
	if isIdentStart(r) {
		return true
	}
	switch r {
	case '\u200c', '\u200d':
		return true
	}
	return unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc)
}
