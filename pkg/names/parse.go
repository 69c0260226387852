package names

import (
	"strings"

	"github.com/goliatone/go-pronomen/pkg/random"
)

// previewAttempts bounds the redraws RandomPreview makes to avoid a repeat.
const previewAttempts = 20

// Parse splits each input on commas and builds one Person per non-empty
// entry. With two or more words the last word is the last name; a single
// word gets a filler last name from LastNames tagged SourceAuto.
func Parse(src random.Source, inputs ...string) []Person {
	var people []Person
	for _, input := range inputs {
		for _, raw := range strings.Split(input, ",") {
			entry := strings.TrimSpace(raw)
			if entry == "" {
				continue
			}
			people = append(people, parseEntry(src, entry))
		}
	}
	return people
}

func parseEntry(src random.Source, entry string) Person {
	parts := strings.Fields(entry)
	if len(parts) > 1 {
		return Person{
			FirstName:      strings.Join(parts[:len(parts)-1], " "),
			LastName:       parts[len(parts)-1],
			LastNameSource: SourceUser,
		}
	}

	filler, _ := random.Choice(src, LastNames)
	return Person{
		FirstName:      parts[0],
		LastName:       filler,
		LastNameSource: SourceAuto,
	}
}

// RandomPreview builds a generated person for previews when no names were
// entered, retrying to avoid excludeKey.
func RandomPreview(src random.Source, excludeKey string) Person {
	var next Person
	for attempts := 0; attempts < previewAttempts; attempts++ {
		first, ok := random.Choice(src, FirstNames)
		if !ok {
			first = "Alex"
		}
		last, _ := random.Choice(src, LastNames)
		next = Person{
			FirstName:      first,
			LastName:       last,
			LastNameSource: SourceAuto,
			AutoGenerated:  true,
		}
		if excludeKey == "" || Key(next) != excludeKey {
			break
		}
	}
	return next
}
