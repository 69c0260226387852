package engine

import (
	"strings"

	"github.com/goliatone/go-pronomen/pkg/pronouns"
)

// Kind classifies a bracketed token.
type Kind int

const (
	// KindLiteral tokens are emitted as their trimmed text.
	KindLiteral Kind = iota
	// KindPronounCase tokens resolve against a pronoun set.
	KindPronounCase
	// KindName tokens resolve against a person.
	KindName
)

func (k Kind) String() string {
	switch k {
	case KindPronounCase:
		return "pronoun"
	case KindName:
		return "name"
	default:
		return "literal"
	}
}

// NameToken identifies which name fields a name token renders.
type NameToken int

const (
	NameNone NameToken = iota
	NameFirst
	NameLast
	NameFull
	NameAddress
)

// UsesLastName reports whether the token may render the last name.
func (n NameToken) UsesLastName() bool {
	return n == NameLast || n == NameFull || n == NameAddress
}

const labelToken = "bezeichnung"

var nameTokens = map[string]NameToken{
	"vorname":                   NameFirst,
	"nachname":                  NameLast,
	"vorname nachname":          NameFull,
	"vorname + nachname":        NameFull,
	"anrede":                    NameAddress,
	"anrede/vorname + nachname": NameAddress,
}

// Classify returns the kind of a token. Matching ignores case and
// surrounding whitespace.
func Classify(token string) Kind {
	lower := strings.ToLower(strings.TrimSpace(token))
	switch {
	case lower == pronouns.KeyNominative,
		lower == pronouns.KeyDative,
		lower == pronouns.KeyAccusative,
		lower == labelToken,
		pronouns.IsPossessiveToken(lower):
		return KindPronounCase
	}
	if _, ok := nameTokens[lower]; ok {
		return KindName
	}
	return KindLiteral
}

// NameField returns the name fields a token renders, or NameNone.
func NameField(token string) NameToken {
	return nameTokens[strings.ToLower(strings.TrimSpace(token))]
}

// SegmentKind distinguishes literal text from bracketed tokens.
type SegmentKind int

const (
	SegmentText SegmentKind = iota
	SegmentToken
)

// Segment is one piece of a scanned template. For tokens Text holds the raw
// content between the brackets.
type Segment struct {
	Kind   SegmentKind
	Text   string
	Offset int
}

// Scan splits a template into literal and token segments. A '[' without a
// later ']' is literal text.
func Scan(text string) []Segment {
	var segments []Segment
	literalStart := 0
	flush := func(end int) {
		if end > literalStart {
			segments = append(segments, Segment{Kind: SegmentText, Text: text[literalStart:end], Offset: literalStart})
		}
	}

	for cursor := 0; cursor < len(text); {
		open := strings.IndexByte(text[cursor:], '[')
		if open < 0 {
			break
		}
		open += cursor

		closing := strings.IndexByte(text[open+1:], ']')
		if closing < 0 {
			// No closing bracket remains, so the rest of the text is literal.
			break
		}
		closing += open + 1

		flush(open)
		segments = append(segments, Segment{Kind: SegmentToken, Text: text[open+1 : closing], Offset: open})
		cursor = closing + 1
		literalStart = cursor
	}

	flush(len(text))
	return segments
}
