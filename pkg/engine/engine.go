package engine

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-pronomen/pkg/names"
	"github.com/goliatone/go-pronomen/pkg/pronouns"
	"github.com/goliatone/go-pronomen/pkg/random"
)

// Mode selects how pronoun sets are drawn during a render.
type Mode string

const (
	// ModeSingle draws one set for the whole render.
	ModeSingle Mode = "single"
	// ModeEach draws a set for every pronoun token.
	ModeEach Mode = "each"
)

// ParseMode validates a randomization mode name. Empty selects ModeSingle.
func ParseMode(raw string) (Mode, error) {
	switch mode := Mode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case "":
		return ModeSingle, nil
	case ModeSingle, ModeEach:
		return mode, nil
	default:
		return "", &InvalidOptionError{Option: "mode", Value: raw}
	}
}

// Request carries the inputs of one render.
type Request struct {
	Template string
	People   []names.Person
	Sets     []*pronouns.Set
	Mode     Mode
}

// Result is the output of one render.
type Result struct {
	HTML string
	// PronounSet is the set drawn in single mode; nil in each mode.
	PronounSet *pronouns.Set
	// UsedAutoGeneratedLastName is raised when a name token rendered a
	// filler last name.
	UsedAutoGeneratedLastName bool
}

// Engine renders templates. It holds no per-render state and is safe to
// reuse; concurrent use is safe when its random source is.
type Engine struct {
	random  random.Source
	logger  *zap.Logger
	markers markerWriter
}

// New constructs an Engine applying the provided options.
func New(options ...Option) *Engine {
	cfg := config{
		random:   random.Default(),
		logger:   zap.NewNop(),
		markers:  MarkersInteractive,
		dialogID: DefaultDialogID,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	return &Engine{
		random:  cfg.random,
		logger:  cfg.logger,
		markers: markerWriter{mode: cfg.markers, dialogID: cfg.dialogID},
	}
}

// Render fills req.Template and returns escaped HTML. It fails only when no
// pronoun sets are supplied or the mode is unknown.
func (e *Engine) Render(req Request) (Result, error) {
	if len(req.Sets) == 0 {
		return Result{}, ErrNoPronounSets
	}
	mode := req.Mode
	if mode == "" {
		mode = ModeSingle
	}
	if mode != ModeSingle && mode != ModeEach {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidMode, req.Mode)
	}
	for idx, set := range req.Sets {
		if set == nil {
			return Result{}, fmt.Errorf("engine: pronoun set %d is nil", idx)
		}
	}

	r := renderer{engine: e, req: req, mode: mode}
	if mode == ModeSingle {
		r.fixed, _ = random.Choice(e.random, req.Sets)
	}

	var out strings.Builder
	out.Grow(len(req.Template) + len(req.Template)/2)

	for _, segment := range Scan(req.Template) {
		if segment.Kind == SegmentText {
			if strings.IndexByte(segment.Text, '[') >= 0 {
				e.logger.Debug("engine: unmatched bracket treated as text", zap.Int("offset", segment.Offset))
			}
			out.WriteString(EscapeHTML(segment.Text))
			continue
		}
		r.token(&out, segment)
	}

	return Result{
		HTML:                      out.String(),
		PronounSet:                r.fixed,
		UsedAutoGeneratedLastName: r.usedAutoLastName,
	}, nil
}

type renderer struct {
	engine           *Engine
	req              Request
	mode             Mode
	fixed            *pronouns.Set
	usedAutoLastName bool
}

func (r *renderer) token(out *strings.Builder, segment Segment) {
	trimmed := strings.TrimSpace(segment.Text)

	switch Classify(trimmed) {
	case KindPronounCase:
		r.pronoun(out, trimmed)
	case KindName:
		r.name(out, trimmed)
	default:
		r.engine.logger.Debug("engine: unknown token passed through",
			zap.String("token", trimmed), zap.Int("offset", segment.Offset))
		out.WriteString(EscapeHTML(trimmed))
	}
}

func (r *renderer) pronoun(out *strings.Builder, token string) {
	set := r.fixed
	if r.mode == ModeEach {
		set, _ = random.Choice(r.engine.random, r.req.Sets)
	}
	person := r.pickPerson()

	var value string
	if lower := strings.ToLower(token); lower == labelToken {
		value = set.Label
	} else {
		value = set.Form(lower, person.FirstName)
		if value == "" && !set.IsNoPronouns() {
			r.engine.logger.Debug("engine: pronoun set has no form for token",
				zap.String("set", set.Label), zap.String("token", token))
		}
	}

	value = AdjustCase(token, value)
	r.engine.markers.pronoun(out, set.Label, pronouns.FormLabel(token), EscapeHTML(value))
}

func (r *renderer) name(out *strings.Builder, token string) {
	person := r.pickPerson()
	field := NameField(token)

	value := resolveName(field, person)
	value = AdjustCase(token, value)

	source := names.SourceUser
	if field.UsesLastName() && person.HasAutoLastName() && strings.Contains(value, person.LastName) {
		r.usedAutoLastName = true
		source = names.SourceAuto
	}
	if person.AutoGenerated {
		source = names.SourceAuto
	}

	r.engine.markers.name(out, source, EscapeHTML(value))
}

func (r *renderer) pickPerson() names.Person {
	person, ok := random.Choice(r.engine.random, r.req.People)
	if !ok {
		return names.Person{}
	}
	return person
}

func resolveName(field NameToken, person names.Person) string {
	switch field {
	case NameFirst:
		return person.FirstName
	case NameLast:
		return person.LastName
	case NameFull:
		return person.FullName()
	case NameAddress:
		if person.Salutation == "" {
			return person.FullName()
		}
		surname := person.LastName
		if surname == "" {
			surname = person.FirstName
		}
		if surname == "" {
			return person.Salutation
		}
		return person.Salutation + " " + surname
	default:
		return ""
	}
}
