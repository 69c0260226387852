// Package results composes rendered templates into HTML fragments: the
// story view with its heading and last-name notice, and the declension view
// listing every form of the selected sets.
package results

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-pronomen/pkg/engine"
	"github.com/goliatone/go-pronomen/pkg/names"
	"github.com/goliatone/go-pronomen/pkg/pronouns"
)

const (
	// DefaultHeading is used when a text has no title.
	DefaultHeading = "Ausgabe"
	// FallbackLastNameNotice tells readers a filler last name was shown.
	FallbackLastNameNotice = "Wir haben einen Beispiel-Nachnamen ergänzt. Du kannst deinen echten Nachnamen im Namensfeld mit eingeben, um ihn hier zu sehen."

	storyTemplate       = "story.tpl"
	declensionsTemplate = "declensions.tpl"
)

// Option configures a Renderer.
type Option func(*config)

type config struct {
	templates fs.FS
	notice    string
}

// WithTemplatesFS supplies an alternate template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templates = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templates = os.DirFS(path)
	}
}

// WithNotice overrides the fallback last name notice text.
func WithNotice(text string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			cfg.notice = trimmed
		}
	}
}

// Renderer turns engine results into HTML fragments.
type Renderer struct {
	templates *templateSet
	notice    string
}

// New constructs a Renderer applying the provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templates: TemplatesFS(), notice: FallbackLastNameNotice}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templates == nil {
		return nil, fmt.Errorf("results: templates filesystem is required")
	}

	return &Renderer{
		templates: newTemplateSet(cfg.templates),
		notice:    cfg.notice,
	}, nil
}

// StoryView is the input of RenderStory.
type StoryView struct {
	Title  string
	Mode   engine.Mode
	Result engine.Result
}

// Heading returns the view heading: the title (or DefaultHeading), followed
// by the pronoun set label in single mode.
func (v StoryView) Heading() string {
	heading := strings.TrimSpace(v.Title)
	if heading == "" {
		heading = DefaultHeading
	}
	if v.Mode != engine.ModeEach && v.Result.PronounSet != nil {
		heading += " – " + v.Result.PronounSet.Label
	}
	return heading
}

// RenderStory renders the heading, the substituted text and, when a filler
// last name was shown, the notice.
func (r *Renderer) RenderStory(view StoryView) (string, error) {
	data := pongo2.Context{
		"heading": view.Heading(),
		"body":    Sanitize(view.Result.HTML),
	}
	if view.Result.UsedAutoGeneratedLastName {
		data["notice"] = r.notice
	}
	return r.templates.render(storyTemplate, data)
}

// Row is one declension table line.
type Row struct {
	Field string
	Value string
}

// SetTable lists the forms of one set plus sample sentences rendered with it.
type SetTable struct {
	Label   string
	Rows    []Row
	Samples []string
}

// DeclensionView is the input of RenderDeclensions.
type DeclensionView struct {
	Title                     string
	Tables                    []SetTable
	UsedAutoGeneratedLastName bool
}

// BuildDeclensions resolves every field of each set for the first person and
// renders the sample sentences with that set alone.
func BuildDeclensions(eng *engine.Engine, title string, sets []*pronouns.Set, people []names.Person, samples []string) (DeclensionView, error) {
	view := DeclensionView{Title: title}

	var person names.Person
	if len(people) > 0 {
		person = people[0]
	}

	for _, set := range sets {
		if set == nil {
			continue
		}
		table := SetTable{Label: set.Label}
		for _, field := range pronouns.Fields {
			table.Rows = append(table.Rows, Row{Field: field.Label, Value: set.Form(field.Key, person.FirstName)})
		}

		for _, sample := range samples {
			result, err := eng.Render(engine.Request{
				Template: sample,
				People:   []names.Person{person},
				Sets:     []*pronouns.Set{set},
				Mode:     engine.ModeSingle,
			})
			if err != nil {
				return DeclensionView{}, fmt.Errorf("results: render sample for %q: %w", set.Label, err)
			}
			if result.UsedAutoGeneratedLastName {
				view.UsedAutoGeneratedLastName = true
			}
			table.Samples = append(table.Samples, Sanitize(result.HTML))
		}

		view.Tables = append(view.Tables, table)
	}

	return view, nil
}

// RenderDeclensions renders one table per set.
func (r *Renderer) RenderDeclensions(view DeclensionView) (string, error) {
	heading := strings.TrimSpace(view.Title)
	if heading == "" {
		heading = DefaultHeading
	}
	data := pongo2.Context{
		"heading": heading,
		"tables":  view.Tables,
	}
	if view.UsedAutoGeneratedLastName {
		data["notice"] = r.notice
	}
	return r.templates.render(declensionsTemplate, data)
}
