package engine

import (
	"strings"
	"unicode/utf8"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML replaces &, <, >, " and ' with entities. It is applied exactly
// once to every literal span and every resolved value.
func EscapeHTML(value string) string {
	return htmlEscaper.Replace(value)
}

// AdjustCase uppercases the first character of value when the token's first
// non-whitespace character is an uppercase letter. Nothing else changes.
func AdjustCase(token, value string) string {
	if value == "" {
		return value
	}

	first, _ := utf8.DecodeRuneInString(strings.TrimSpace(token))
	if first == utf8.RuneError {
		return value
	}
	head := string(first)
	if strings.ToUpper(head) != head || strings.ToLower(head) == head {
		return value
	}

	r, size := utf8.DecodeRuneInString(value)
	return strings.ToUpper(string(r)) + value[size:]
}
