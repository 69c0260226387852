package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-pronomen/pkg/pronouns"
)

type documentFile struct {
	PronounSets       []setFile  `json:"pronounSets" yaml:"pronounSets"`
	Texts             []textFile `json:"texts" yaml:"texts"`
	DeclensionSamples []string   `json:"declensionSamples" yaml:"declensionSamples"`
}

type setFile struct {
	Label      string  `json:"label" yaml:"label"`
	Group      string  `json:"group" yaml:"group"`
	Nominative *string `json:"nominativ" yaml:"nominativ"`
	Dative     *string `json:"dativ" yaml:"dativ"`
	Accusative *string `json:"akkusativ" yaml:"akkusativ"`
	Poss1      *string `json:"poss1" yaml:"poss1"`
	Poss2      *string `json:"poss2" yaml:"poss2"`
	Poss3      *string `json:"poss3" yaml:"poss3"`
	Poss4      *string `json:"poss4" yaml:"poss4"`
	Poss5      *string `json:"poss5" yaml:"poss5"`
	Poss6      *string `json:"poss6" yaml:"poss6"`
}

type textFile struct {
	Key    string   `json:"key" yaml:"key"`
	Title  string   `json:"title" yaml:"title"`
	Text   string   `json:"text" yaml:"text"`
	Type   TextKind `json:"type" yaml:"type"`
	Random *bool    `json:"random" yaml:"random"`
}

// Load walks fsys and merges every JSON/YAML catalog file it finds. Files
// are visited in lexical order; sets and texts keep their in-file order.
func Load(fsys fs.FS) (*Catalog, error) {
	if fsys == nil {
		return nil, fmt.Errorf("catalog: filesystem is required")
	}

	var (
		sets    []*pronouns.Set
		texts   []Text
		samples []string
	)

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for _, raw := range doc.PronounSets {
			sets = append(sets, raw.toSet())
		}
		for _, raw := range doc.Texts {
			texts = append(texts, Text{
				Key:    raw.Key,
				Title:  strings.TrimSpace(raw.Title),
				Body:   strings.TrimRight(raw.Text, "\n"),
				Kind:   raw.Type,
				Random: raw.Random,
			})
		}
		for _, sample := range doc.DeclensionSamples {
			if trimmed := strings.TrimSpace(sample); trimmed != "" {
				samples = append(samples, trimmed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return New(sets, texts, samples)
}

func (s setFile) toSet() *pronouns.Set {
	return &pronouns.Set{
		Label: strings.TrimSpace(s.Label),
		Group: strings.TrimSpace(s.Group),
		Forms: pronouns.Forms{
			Nominative: s.Nominative,
			Dative:     s.Dative,
			Accusative: s.Accusative,
			Possessive: [pronouns.PossessiveSlots]*string{s.Poss1, s.Poss2, s.Poss3, s.Poss4, s.Poss5, s.Poss6},
		},
	}
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("catalog: file %s is empty", source)
	}

	if strings.EqualFold(filepath.Ext(source), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("catalog: parse %s: %w", source, err)
		}
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("catalog: parse %s: %w", source, err)
	}
	return doc, nil
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
