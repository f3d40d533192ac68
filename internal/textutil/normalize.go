package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// newlineReplacer folds Windows and classic Mac line endings into "\n".
var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Lower returns s with full Unicode lowercasing applied.
// A fresh Caser is built per call because casers carry state.
func Lower(s string) string {
	if s == "" {
		return s
	}
	return cases.Lower(language.Und).String(s)
}

// IsWordRune reports whether r belongs to the word-character class.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// IsSpace reports whether r separates words. Besides the Unicode White_Space
// runes it accepts the ASCII information separators U+001C through U+001F.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}

// StripPunctuation removes every rune that is neither a word character nor
// whitespace.
func StripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if IsWordRune(r) || IsSpace(r) {
			return r
		}
		return -1
	}, s)
}

// Words strips punctuation from s and splits the remainder on whitespace.
func Words(s string) []string {
	return strings.FieldsFunc(StripPunctuation(s), IsSpace)
}

// Fields splits s on whitespace without removing punctuation.
func Fields(s string) []string {
	return strings.FieldsFunc(s, IsSpace)
}

// TrimSpace removes leading and trailing runes matched by IsSpace.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// NormalizeNewlines converts "\r\n" and lone "\r" line endings to "\n".
func NormalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	return newlineReplacer.Replace(s)
}
