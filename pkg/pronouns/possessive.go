package pronouns

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Possessive appends the genitive-like suffix to a bare name: an apostrophe
// when the last letter is s or x, otherwise "s". Trailing punctuation is
// ignored when locating the last letter; a letter carrying a combining mark
// is not treated as its base letter.
func Possessive(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}

	switch strings.ToLower(lastGrapheme(trimmed)) {
	case "s", "x":
		return trimmed + "'"
	default:
		return trimmed + "s"
	}
}

// lastGrapheme returns the last letter of value together with the combining
// marks that follow it, or the final rune when value holds no letter.
func lastGrapheme(value string) string {
	runes := []rune(norm.NFC.String(value))
	for idx := len(runes) - 1; idx >= 0; idx-- {
		if !unicode.IsLetter(runes[idx]) {
			continue
		}
		end := idx + 1
		for end < len(runes) && unicode.Is(unicode.M, runes[end]) {
			end++
		}
		return string(runes[idx:end])
	}
	return string(runes[len(runes)-1])
}
