// Package session drives the user-facing flows on top of the engine:
// generating a result from form input, rerunning single-mode draws with a
// different set or person, and picking a random text.
//
// A Session remembers the last single-mode selection and is not safe for
// concurrent use.
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-pronomen/pkg/catalog"
	"github.com/goliatone/go-pronomen/pkg/engine"
	"github.com/goliatone/go-pronomen/pkg/names"
	"github.com/goliatone/go-pronomen/pkg/pronouns"
	"github.com/goliatone/go-pronomen/pkg/random"
	"github.com/goliatone/go-pronomen/pkg/results"
)

var (
	// ErrNoNames is returned when name input was given but held no names.
	ErrNoNames = errors.New("session: at least one name is required")
	// ErrNoTexts is returned when the catalog has no text to render or pick.
	ErrNoTexts = errors.New("session: no texts available")
)

// Input mirrors the form fields of one request.
type Input struct {
	// Names holds raw name fields; each may list several names separated
	// by commas.
	Names      []string
	Salutation string
	// TextKey selects the catalog text. Empty selects the first text.
	TextKey string
	// Pronouns lists set labels. Empty selects one random set.
	Pronouns []string
	Mode     engine.Mode
}

// Output is the result of Generate or Rerun.
type Output struct {
	// HTML is the complete results fragment.
	HTML   string
	Text   catalog.Text
	Mode   engine.Mode
	Result engine.Result
	// People are the persons handed to the engine. In single mode this is
	// the one selected person.
	People []names.Person
}

// Session holds the catalog, engine and rerun state.
type Session struct {
	id       string
	catalog  *catalog.Catalog
	engine   *engine.Engine
	renderer *results.Renderer
	random   random.Source
	logger   *zap.Logger

	lastLabel   string
	lastNameKey string
}

// New builds a Session over cat.
func New(cat *catalog.Catalog, options ...Option) (*Session, error) {
	if cat == nil {
		return nil, fmt.Errorf("session: catalog is required")
	}

	cfg := config{random: random.Default(), logger: zap.NewNop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	renderer, err := results.New(cfg.rendererOptions...)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	id := uuid.NewString()
	logger := cfg.logger.With(zap.String("session", id))

	engineOptions := append([]engine.Option{
		engine.WithRandom(cfg.random),
		engine.WithLogger(logger),
	}, cfg.engineOptions...)

	return &Session{
		id:       id,
		catalog:  cat,
		engine:   engine.New(engineOptions...),
		renderer: renderer,
		random:   cfg.random,
		logger:   logger,
	}, nil
}

// ID identifies the session in log output.
func (s *Session) ID() string {
	return s.id
}

// Catalog returns the catalog the session renders from.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// LastSelection returns the recorded single-mode set label and name key.
func (s *Session) LastSelection() (label, nameKey string) {
	return s.lastLabel, s.lastNameKey
}

// Generate renders in for the first time. Without names a random preview
// person is used.
func (s *Session) Generate(in Input) (Output, error) {
	req, err := s.prepare(in)
	if err != nil {
		return Output{}, err
	}
	if req.text.IsDeclensions() {
		return s.declensions(req)
	}
	return s.story(req)
}

// Rerun renders in again, preferring a different outcome than the last
// single-mode render: a different set when several are selected, otherwise
// a different person when several names are given, otherwise a fresh
// preview name. Each mode and declension texts render like Generate.
func (s *Session) Rerun(in Input) (Output, error) {
	req, err := s.prepare(in)
	if err != nil {
		return Output{}, err
	}
	if req.text.IsDeclensions() {
		return s.declensions(req)
	}
	if req.mode != engine.ModeSingle {
		return s.story(req)
	}

	label := func(set *pronouns.Set) string { return set.Label }

	switch {
	case len(req.sets) > 1 && s.lastLabel != "":
		next, _ := random.ChooseDifferent(s.random, req.sets, s.lastLabel, label)
		req.sets = []*pronouns.Set{next}
	case len(req.people) > 1 && s.lastNameKey != "":
		next, _ := random.ChooseDifferent(s.random, req.people, s.lastNameKey, names.Key)
		req.people = []names.Person{next}
	}

	return s.story(req)
}

// RandomText returns the key of a random eligible text, different from
// current when another one exists.
func (s *Session) RandomText(current string) (string, error) {
	key := func(text catalog.Text) string { return text.Key }
	text, ok := random.ChooseDifferent(s.random, s.catalog.RandomEligibleTexts(), current, key)
	if !ok {
		return "", ErrNoTexts
	}
	return text.Key, nil
}

type request struct {
	text       catalog.Text
	mode       engine.Mode
	people     []names.Person
	sets       []*pronouns.Set
	salutation string
}

func (s *Session) prepare(in Input) (request, error) {
	mode, err := engine.ParseMode(string(in.Mode))
	if err != nil {
		return request{}, fmt.Errorf("session: %w", err)
	}

	text, err := s.resolveText(in.TextKey)
	if err != nil {
		return request{}, err
	}

	sets, err := s.resolveSets(in.Pronouns)
	if err != nil {
		return request{}, err
	}

	people := names.Parse(s.random, in.Names...)
	if len(people) == 0 {
		if hasInput(in.Names) && !text.IsDeclensions() {
			return request{}, ErrNoNames
		}
		people = []names.Person{names.RandomPreview(s.random, s.lastNameKey)}
	}

	return request{
		text:       text,
		mode:       mode,
		people:     people,
		sets:       sets,
		salutation: in.Salutation,
	}, nil
}

func (s *Session) resolveText(key string) (catalog.Text, error) {
	if key != "" {
		return s.catalog.Text(key)
	}
	texts := s.catalog.Texts()
	if len(texts) == 0 {
		return catalog.Text{}, ErrNoTexts
	}
	return texts[0], nil
}

func (s *Session) resolveSets(labels []string) ([]*pronouns.Set, error) {
	if len(labels) > 0 {
		return s.catalog.SetsByLabel(labels)
	}
	set, ok := random.Choice(s.random, s.catalog.Sets())
	if !ok {
		return nil, fmt.Errorf("session: %w", engine.ErrNoPronounSets)
	}
	return []*pronouns.Set{set}, nil
}

func (s *Session) story(req request) (Output, error) {
	people := withSalutation(req.people, req.salutation)
	if req.mode == engine.ModeSingle && len(people) > 1 {
		person, _ := random.Choice(s.random, people)
		people = []names.Person{person}
	}

	result, err := s.engine.Render(engine.Request{
		Template: req.text.Body,
		People:   people,
		Sets:     req.sets,
		Mode:     req.mode,
	})
	if err != nil {
		return Output{}, fmt.Errorf("session: render %q: %w", req.text.Key, err)
	}

	html, err := s.renderer.RenderStory(results.StoryView{
		Title:  req.text.Title,
		Mode:   req.mode,
		Result: result,
	})
	if err != nil {
		return Output{}, fmt.Errorf("session: %w", err)
	}

	if req.mode == engine.ModeSingle {
		if result.PronounSet != nil {
			s.lastLabel = result.PronounSet.Label
		}
		if len(people) > 0 {
			s.lastNameKey = names.Key(people[0])
		}
	}

	s.logger.Debug("rendered text",
		zap.String("text", req.text.Key),
		zap.String("mode", string(req.mode)),
		zap.Int("people", len(people)),
		zap.Int("sets", len(req.sets)),
		zap.Bool("auto_last_name", result.UsedAutoGeneratedLastName),
	)

	return Output{
		HTML:   html,
		Text:   req.text,
		Mode:   req.mode,
		Result: result,
		People: people,
	}, nil
}

func (s *Session) declensions(req request) (Output, error) {
	people := withSalutation(req.people, req.salutation)

	view, err := results.BuildDeclensions(s.engine, req.text.Title, req.sets, people, s.catalog.DeclensionSamples())
	if err != nil {
		return Output{}, fmt.Errorf("session: %w", err)
	}
	html, err := s.renderer.RenderDeclensions(view)
	if err != nil {
		return Output{}, fmt.Errorf("session: %w", err)
	}

	s.logger.Debug("rendered declensions",
		zap.String("text", req.text.Key),
		zap.Int("sets", len(view.Tables)),
	)

	return Output{
		HTML:   html,
		Text:   req.text,
		Mode:   engine.ModeSingle,
		Result: engine.Result{HTML: html, UsedAutoGeneratedLastName: view.UsedAutoGeneratedLastName},
		People: people[:1],
	}, nil
}

func withSalutation(people []names.Person, salutation string) []names.Person {
	out := make([]names.Person, len(people))
	for i, person := range people {
		out[i] = person.WithSalutation(salutation)
	}
	return out
}

func hasInput(values []string) bool {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return true
		}
	}
	return false
}
