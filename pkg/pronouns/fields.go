package pronouns

import (
	"regexp"
	"strings"
)

// Field describes one declension slot as shown in declension tables.
type Field struct {
	Label string
	Key   string
}

// Fields lists the nine declension slots in display order.
var Fields = []Field{
	{Label: "Nominativ", Key: KeyNominative},
	{Label: "Dativ", Key: KeyDative},
	{Label: "Akkusativ", Key: KeyAccusative},
	{Label: "Possessiv 1", Key: PossessiveKey(1)},
	{Label: "Possessiv 2", Key: PossessiveKey(2)},
	{Label: "Possessiv 3", Key: PossessiveKey(3)},
	{Label: "Possessiv 4", Key: PossessiveKey(4)},
	{Label: "Possessiv 5", Key: PossessiveKey(5)},
	{Label: "Possessiv 6", Key: PossessiveKey(6)},
}

var possNumber = regexp.MustCompile(`(?i)poss\.\s*(\d+)`)

// FormLabel maps a case token to the label shown when a marker is
// inspected, e.g. "poss. 3" becomes "Poss. 3".
func FormLabel(token string) string {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return ""
	}

	switch lower := strings.ToLower(trimmed); {
	case lower == "bezeichnung":
		return "Bezeichnung"
	case lower == KeyNominative:
		return "Nominativ"
	case lower == KeyDative:
		return "Dativ"
	case lower == KeyAccusative:
		return "Akkusativ"
	case strings.HasPrefix(lower, possPrefix):
		if match := possNumber.FindStringSubmatch(trimmed); match != nil {
			return "Poss. " + match[1]
		}
		return "Possessiv"
	}
	return trimmed
}
