// Package prompt collects session input interactively on a terminal and
// runs the generate / rerun loop on top of a session.
package prompt

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-pronomen/pkg/catalog"
	"github.com/goliatone/go-pronomen/pkg/engine"
	"github.com/goliatone/go-pronomen/pkg/session"
)

// NoSalutation is the first salutation option and selects none.
const NoSalutation = "Keine Anrede"

// Salutations are offered after NoSalutation.
var Salutations = []string{"Frau", "Herr", "Mx."}

// Collect asks for names, salutation, text, pronoun sets and, when more
// than one set or name is involved, the randomization mode.
func Collect(ctx context.Context, d Driver, cat *catalog.Catalog) (session.Input, error) {
	if d == nil || cat == nil {
		return session.Input{}, fmt.Errorf("prompt: driver and catalog are required")
	}

	var in session.Input

	rawNames, err := d.Input(ctx, InputConfig{
		Message: "Namen",
		Help:    "Mehrere Namen mit Komma trennen. Leer lassen für einen Zufallsnamen.",
	})
	if err != nil {
		return session.Input{}, fmt.Errorf("prompt: names: %w", err)
	}
	if strings.TrimSpace(rawNames) != "" {
		in.Names = []string{rawNames}
	}

	salutations := append([]string{NoSalutation}, Salutations...)
	idx, err := d.Select(ctx, SelectConfig{Message: "Anrede", Options: salutations})
	if err != nil {
		return session.Input{}, fmt.Errorf("prompt: salutation: %w", err)
	}
	if idx > 0 && idx < len(salutations) {
		in.Salutation = salutations[idx]
	}

	texts := cat.Texts()
	if len(texts) == 0 {
		return session.Input{}, session.ErrNoTexts
	}
	titles := make([]string, len(texts))
	for i, text := range texts {
		titles[i] = text.Title
		if titles[i] == "" {
			titles[i] = text.Key
		}
	}
	idx, err = d.Select(ctx, SelectConfig{Message: "Text", Options: titles, PageSize: 10})
	if err != nil {
		return session.Input{}, fmt.Errorf("prompt: text: %w", err)
	}
	if idx < 0 || idx >= len(texts) {
		return session.Input{}, fmt.Errorf("prompt: text: no option selected")
	}
	text := texts[idx]
	in.TextKey = text.Key

	sets := cat.Sets()
	labels := make([]string, len(sets))
	for i, set := range sets {
		labels[i] = set.Label
	}
	picked, err := d.MultiSelect(ctx, SelectConfig{
		Message:  "Pronomen",
		Options:  labels,
		Help:     "Ohne Auswahl wird ein zufälliges Set verwendet.",
		PageSize: 12,
	})
	if err != nil {
		return session.Input{}, fmt.Errorf("prompt: pronouns: %w", err)
	}
	for _, i := range picked {
		if i >= 0 && i < len(labels) {
			in.Pronouns = append(in.Pronouns, labels[i])
		}
	}

	in.Mode = engine.ModeSingle
	if !text.IsDeclensions() && (len(in.Pronouns) > 1 || strings.Contains(rawNames, ",")) {
		each, err := d.Confirm(ctx, ConfirmConfig{
			Message: "Bei jedem Vorkommen neu auswählen?",
			Help:    "Nein: ein Pronomen-Set und eine Person für den ganzen Text.",
		})
		if err != nil {
			return session.Input{}, fmt.Errorf("prompt: mode: %w", err)
		}
		if each {
			in.Mode = engine.ModeEach
		}
	}

	return in, nil
}

// Actions offered after each render.
const (
	ActionRerun      = "Neu würfeln"
	ActionRandomText = "Zufälliger Text"
	ActionQuit       = "Beenden"
)

// Run collects input, renders it and then offers rerun and random text
// until the user quits. Each fragment is written to out.
func Run(ctx context.Context, d Driver, s *session.Session, out io.Writer) error {
	in, err := Collect(ctx, d, s.Catalog())
	if err != nil {
		return err
	}

	result, err := s.Generate(in)
	if err != nil {
		return err
	}
	if err := write(out, result); err != nil {
		return err
	}

	actions := []string{ActionRerun, ActionRandomText, ActionQuit}
	for {
		idx, err := d.Select(ctx, SelectConfig{Message: "Weiter", Options: actions})
		if err != nil {
			return fmt.Errorf("prompt: action: %w", err)
		}
		if idx < 0 || idx >= len(actions) {
			return nil
		}

		switch actions[idx] {
		case ActionQuit:
			return nil
		case ActionRerun:
			result, err = s.Rerun(in)
		case ActionRandomText:
			key, keyErr := s.RandomText(in.TextKey)
			if keyErr != nil {
				if infoErr := d.Info(ctx, "Kein weiterer Text verfügbar."); infoErr != nil {
					return infoErr
				}
				continue
			}
			in.TextKey = key
			result, err = s.Generate(in)
		}
		if err != nil {
			return err
		}
		if err := write(out, result); err != nil {
			return err
		}
	}
}

func write(out io.Writer, result session.Output) error {
	if _, err := io.WriteString(out, result.HTML); err != nil {
		return fmt.Errorf("prompt: write output: %w", err)
	}
	if !strings.HasSuffix(result.HTML, "\n") {
		if _, err := io.WriteString(out, "\n"); err != nil {
			return fmt.Errorf("prompt: write output: %w", err)
		}
	}
	return nil
}
