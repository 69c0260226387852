package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassify(t *testing.T) {
	cases := map[string]Kind{
		"Nominativ":                 KindPronounCase,
		" dativ ":                   KindPronounCase,
		"AKKUSATIV":                 KindPronounCase,
		"akkuativ":                  KindLiteral,
		"Poss. 2":                   KindPronounCase,
		"poss.7":                    KindPronounCase,
		"Bezeichnung":               KindPronounCase,
		"Vorname":                   KindName,
		"nachname":                  KindName,
		"Vorname Nachname":          KindName,
		"Vorname + Nachname":        KindName,
		"Anrede":                    KindName,
		"Anrede/Vorname + Nachname": KindName,
		"Welt":                      KindLiteral,
		"":                          KindLiteral,
	}
	for token, want := range cases {
		if got := Classify(token); got != want {
			t.Fatalf("Classify(%q) = %v, want %v", token, got, want)
		}
	}
}

func TestNameField(t *testing.T) {
	if NameField("Vorname") != NameFirst || NameField("Nachname") != NameLast {
		t.Fatalf("unexpected name fields")
	}
	if !NameField("Anrede").UsesLastName() || NameField("Vorname").UsesLastName() {
		t.Fatalf("unexpected last name usage")
	}
	if NameField("Nominativ") != NameNone {
		t.Fatalf("pronoun token must not map to a name field")
	}
}

func TestScan(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []Segment
	}{
		{name: "empty", in: "", want: nil},
		{name: "text only", in: "Hallo", want: []Segment{{Kind: SegmentText, Text: "Hallo"}}},
		{
			name: "tokens",
			in:   "[Vorname] mag [dativ].",
			want: []Segment{
				{Kind: SegmentToken, Text: "Vorname", Offset: 0},
				{Kind: SegmentText, Text: " mag ", Offset: 9},
				{Kind: SegmentToken, Text: "dativ", Offset: 14},
				{Kind: SegmentText, Text: ".", Offset: 21},
			},
		},
		{name: "unmatched", in: "Hallo [Welt", want: []Segment{{Kind: SegmentText, Text: "Hallo [Welt"}}},
		{
			name: "unmatched after token",
			in:   "[a]b[c",
			want: []Segment{
				{Kind: SegmentToken, Text: "a", Offset: 0},
				{Kind: SegmentText, Text: "b[c", Offset: 3},
			},
		},
		{
			name: "nested opening bracket",
			in:   "[a [b] c",
			want: []Segment{
				{Kind: SegmentToken, Text: "a [b", Offset: 0},
				{Kind: SegmentText, Text: " c", Offset: 6},
			},
		},
		{
			name: "multibyte",
			in:   "„[Nominativ]“",
			want: []Segment{
				{Kind: SegmentText, Text: "„", Offset: 0},
				{Kind: SegmentToken, Text: "Nominativ", Offset: 3},
				{Kind: SegmentText, Text: "“", Offset: 14},
			},
		},
		{name: "empty token", in: "[]", want: []Segment{{Kind: SegmentToken, Text: "", Offset: 0}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, Scan(tc.in)); diff != "" {
				t.Fatalf("segments mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAdjustCase(t *testing.T) {
	cases := []struct {
		token string
		value string
		want  string
	}{
		{token: "Nominativ", value: "sie", want: "Sie"},
		{token: "nominativ", value: "sie", want: "sie"},
		{token: "  Nominativ ", value: "sie", want: "Sie"},
		{token: "n", value: "", want: ""},
		{token: "Poss. 1", value: "ähm", want: "Ähm"},
		{token: "1 Poss", value: "sie", want: "sie"},
		{token: "Vorname", value: "alex miller", want: "Alex miller"},
		{token: "", value: "sie", want: "sie"},
	}
	for _, tc := range cases {
		if got := AdjustCase(tc.token, tc.value); got != tc.want {
			t.Fatalf("AdjustCase(%q, %q) = %q, want %q", tc.token, tc.value, got, tc.want)
		}
	}
}

func TestEscapeHTML(t *testing.T) {
	if got := EscapeHTML(`& < > " '`); got != "&amp; &lt; &gt; &quot; &#39;" {
		t.Fatalf("unexpected escape: %q", got)
	}
	if got := EscapeHTML(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
