// Package catalog holds the static configuration the engine works with:
// pronoun declension sets, template texts and the sample sentences used by
// the declension view. A Catalog is immutable once built and safe to share.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-pronomen/pkg/pronouns"
	"github.com/goliatone/go-pronomen/pkg/random"
)

var (
	// ErrUnknownText is returned when a text key is not in the catalog.
	ErrUnknownText = errors.New("catalog: unknown text")
	// ErrUnknownSet is returned when a pronoun set label is not in the catalog.
	ErrUnknownSet = errors.New("catalog: unknown pronoun set")
)

// TextKind distinguishes story texts from the declension view.
type TextKind string

const (
	KindStory       TextKind = "story"
	KindDeclensions TextKind = "declensions"
)

// Text is one selectable template text.
type Text struct {
	Key    string
	Title  string
	Body   string
	Kind   TextKind
	Random *bool
}

// IsDeclensions reports whether the text renders as declension tables.
func (t Text) IsDeclensions() bool {
	return t.Kind == KindDeclensions
}

// RandomEligible reports whether the text may be picked by random text
// selection.
func (t Text) RandomEligible() bool {
	return t.Random == nil || *t.Random
}

// Catalog is the loaded set of pronoun sets, texts and declension samples.
type Catalog struct {
	sets    []*pronouns.Set
	byLabel map[string]*pronouns.Set
	texts   []Text
	byKey   map[string]int
	samples []string
}

// New validates and assembles a catalog. Labels and keys must be unique and
// non-empty.
func New(sets []*pronouns.Set, texts []Text, samples []string) (*Catalog, error) {
	c := &Catalog{
		byLabel: make(map[string]*pronouns.Set, len(sets)),
		byKey:   make(map[string]int, len(texts)),
		samples: append([]string(nil), samples...),
	}

	for idx, set := range sets {
		if set == nil {
			return nil, fmt.Errorf("catalog: pronoun set %d is nil", idx)
		}
		label := strings.TrimSpace(set.Label)
		if label == "" {
			return nil, fmt.Errorf("catalog: pronoun set %d has an empty label", idx)
		}
		if _, exists := c.byLabel[label]; exists {
			return nil, fmt.Errorf("catalog: duplicate pronoun set %q", label)
		}
		cloned := *set
		cloned.Label = label
		if cloned.Group == "" {
			cloned.Group = pronouns.DefaultGroup
		}
		c.byLabel[label] = &cloned
		c.sets = append(c.sets, &cloned)
	}

	for idx, text := range texts {
		key := strings.TrimSpace(text.Key)
		if key == "" {
			return nil, fmt.Errorf("catalog: text %d has an empty key", idx)
		}
		if _, exists := c.byKey[key]; exists {
			return nil, fmt.Errorf("catalog: duplicate text %q", key)
		}
		text.Key = key
		if text.Kind == "" {
			text.Kind = KindStory
		}
		if text.Kind != KindStory && text.Kind != KindDeclensions {
			return nil, fmt.Errorf("catalog: text %q has unknown kind %q", key, text.Kind)
		}
		c.byKey[key] = len(c.texts)
		c.texts = append(c.texts, text)
	}

	return c, nil
}

// Sets returns the pronoun sets in catalog order.
func (c *Catalog) Sets() []*pronouns.Set {
	return append([]*pronouns.Set(nil), c.sets...)
}

// Set looks up a pronoun set by label.
func (c *Catalog) Set(label string) (*pronouns.Set, bool) {
	set, ok := c.byLabel[strings.TrimSpace(label)]
	return set, ok
}

// SetsByLabel resolves labels to sets, preserving order and dropping
// duplicates. Unknown labels fail with ErrUnknownSet.
func (c *Catalog) SetsByLabel(labels []string) ([]*pronouns.Set, error) {
	out := make([]*pronouns.Set, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, raw := range labels {
		label := strings.TrimSpace(raw)
		if label == "" {
			continue
		}
		if _, dup := seen[label]; dup {
			continue
		}
		set, ok := c.byLabel[label]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSet, label)
		}
		seen[label] = struct{}{}
		out = append(out, set)
	}
	return out, nil
}

// Texts returns all texts in catalog order.
func (c *Catalog) Texts() []Text {
	return append([]Text(nil), c.texts...)
}

// Text looks up a text by key.
func (c *Catalog) Text(key string) (Text, error) {
	idx, ok := c.byKey[strings.TrimSpace(key)]
	if !ok {
		return Text{}, fmt.Errorf("%w: %q", ErrUnknownText, key)
	}
	return c.texts[idx], nil
}

// RandomEligibleTexts returns the texts random selection may pick.
func (c *Catalog) RandomEligibleTexts() []Text {
	var out []Text
	for _, text := range c.texts {
		if text.RandomEligible() {
			out = append(out, text)
		}
	}
	return out
}

// DeclensionSamples returns the sentences shown under declension tables.
func (c *Catalog) DeclensionSamples() []string {
	return append([]string(nil), c.samples...)
}

// Recommendations picks up to n random sets whose group is not excluded,
// e.g. to suggest pronouns outside the groups a user already browsed.
func (c *Catalog) Recommendations(src random.Source, excludedGroups []string, n int) []*pronouns.Set {
	excluded := make(map[string]struct{}, len(excludedGroups))
	for _, group := range excludedGroups {
		excluded[group] = struct{}{}
	}

	candidates := make([]*pronouns.Set, 0, len(c.sets))
	for _, set := range c.sets {
		if _, skip := excluded[set.Group]; skip {
			continue
		}
		candidates = append(candidates, set)
	}
	return random.Sample(src, candidates, n)
}
