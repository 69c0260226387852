package pronouns

import (
	"strconv"
	"strings"
)

// NoPronounsLabel identifies the set that uses the person's name instead of
// pronouns.
const NoPronounsLabel = "Keine Pronomen"

// DefaultGroup is the catalog group assigned to sets without one.
const DefaultGroup = "Weitere Pronomen"

// Case lookup keys, matched against lowercased tokens.
const (
	KeyNominative = "nominativ"
	KeyDative     = "dativ"
	KeyAccusative = "akkusativ"
	possPrefix    = "poss."
)

// PossessiveSlots is the number of possessive forms stored per set.
const PossessiveSlots = 6

// Forms holds the nine optional declension forms of a set. A nil entry means
// the set carries no data for that case.
type Forms struct {
	Nominative *string
	Dative     *string
	Accusative *string
	Possessive [PossessiveSlots]*string
}

// Set is one selectable pronoun declension set. Sets are built once from
// configuration and shared read-only.
type Set struct {
	Label string
	Group string
	Forms Forms
}

// FormsOf builds Forms from positional values: nominative, dative,
// accusative, then up to six possessives. Empty strings remain unset.
func FormsOf(nominative, dative, accusative string, possessive ...string) Forms {
	forms := Forms{
		Nominative: optional(nominative),
		Dative:     optional(dative),
		Accusative: optional(accusative),
	}
	for idx, value := range possessive {
		if idx >= PossessiveSlots {
			break
		}
		forms.Possessive[idx] = optional(value)
	}
	return forms
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// IsNoPronouns reports whether the set is the "Keine Pronomen" variant.
func (s *Set) IsNoPronouns() bool {
	return s != nil && s.Label == NoPronounsLabel
}

// Form resolves a case token to a word. The no-pronouns set answers with the
// person's name (or its possessive); every other set answers with the stored
// form, or "" when the form is absent or the token unknown.
func (s *Set) Form(caseToken, personName string) string {
	key := strings.ToLower(caseToken)

	if s.IsNoPronouns() {
		switch {
		case key == KeyNominative, key == KeyDative, key == KeyAccusative:
			return personName
		case strings.HasPrefix(key, possPrefix):
			return Possessive(personName)
		default:
			return personName
		}
	}

	value := s.Forms.lookup(key)
	if value == nil {
		return ""
	}
	return *value
}

// Lookup returns the stored form for a lowercased field key and whether it
// is present.
func (f Forms) Lookup(key string) (string, bool) {
	value := f.lookup(key)
	if value == nil {
		return "", false
	}
	return *value, true
}

func (f Forms) lookup(key string) *string {
	switch key {
	case KeyNominative:
		return f.Nominative
	case KeyDative:
		return f.Dative
	case KeyAccusative:
		return f.Accusative
	}
	for idx := range f.Possessive {
		if key == PossessiveKey(idx+1) {
			return f.Possessive[idx]
		}
	}
	return nil
}

// PossessiveKey returns the lookup key for possessive slot n (1-based).
func PossessiveKey(n int) string {
	return possPrefix + " " + strconv.Itoa(n)
}

// IsPossessiveToken reports whether a token names one of the possessive slots.
func IsPossessiveToken(token string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(token)), possPrefix)
}
