package engine

import (
	"strings"

	"github.com/goliatone/go-pronomen/pkg/names"
)

// MarkerMode controls how substitutions are wrapped.
type MarkerMode string

const (
	// MarkersInteractive wraps substitutions in focusable spans wired to a
	// marker dialog.
	MarkersInteractive MarkerMode = "interactive"
	// MarkersPlain wraps substitutions in spans carrying data attributes only.
	MarkersPlain MarkerMode = "plain"
	// MarkersOff emits substitutions without wrapping.
	MarkersOff MarkerMode = "off"
)

// DefaultDialogID is the element id interactive markers point at.
const DefaultDialogID = "markerDialog"

// ParseMarkerMode validates a marker mode name. Empty selects
// MarkersInteractive.
func ParseMarkerMode(raw string) (MarkerMode, error) {
	switch mode := MarkerMode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case "":
		return MarkersInteractive, nil
	case MarkersInteractive, MarkersPlain, MarkersOff:
		return mode, nil
	default:
		return "", &InvalidOptionError{Option: "markers", Value: raw}
	}
}

type markerWriter struct {
	mode     MarkerMode
	dialogID string
}

func (m markerWriter) pronoun(b *strings.Builder, setLabel, formLabel, safeValue string) {
	if m.mode == MarkersOff {
		b.WriteString(safeValue)
		return
	}
	b.WriteString(`<span data-pronoun="`)
	b.WriteString(EscapeHTML(setLabel))
	b.WriteString(`" data-pronoun-form="`)
	b.WriteString(EscapeHTML(formLabel))
	b.WriteString(`"`)
	m.affordances(b)
	b.WriteString(">")
	b.WriteString(safeValue)
	b.WriteString("</span>")
}

func (m markerWriter) name(b *strings.Builder, source names.Source, safeValue string) {
	if m.mode == MarkersOff {
		b.WriteString(safeValue)
		return
	}
	b.WriteString(`<span data-name="true" data-name-source="`)
	b.WriteString(EscapeHTML(string(source)))
	b.WriteString(`"`)
	m.affordances(b)
	b.WriteString(">")
	b.WriteString(safeValue)
	b.WriteString("</span>")
}

func (m markerWriter) affordances(b *strings.Builder) {
	if m.mode != MarkersInteractive {
		return
	}
	b.WriteString(` role="button" tabindex="0" aria-haspopup="dialog" aria-controls="`)
	b.WriteString(EscapeHTML(m.dialogID))
	b.WriteString(`" aria-expanded="false"`)
}
