package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pronomen/pkg/names"
	"github.com/goliatone/go-pronomen/pkg/pronouns"
	"github.com/goliatone/go-pronomen/pkg/testsupport"
)

const affordances = ` role="button" tabindex="0" aria-haspopup="dialog" aria-controls="markerDialog" aria-expanded="false"`

func sieIhr() *pronouns.Set {
	return &pronouns.Set{
		Label: "Sie/ihr",
		Forms: pronouns.FormsOf("sie", "ihr", "sie", "ihr", "ihre", "ihren", "ihrer", "ihrem", "ihres"),
	}
}

func erIhm() *pronouns.Set {
	return &pronouns.Set{
		Label: "Er/ihm",
		Forms: pronouns.FormsOf("er", "ihm", "ihn", "sein", "seine", "seinen", "seiner", "seinem", "seines"),
	}
}

func noPronouns() *pronouns.Set {
	return &pronouns.Set{Label: pronouns.NoPronounsLabel}
}

func pronounSpan(set, form, value string) string {
	return `<span data-pronoun="` + set + `" data-pronoun-form="` + form + `"` + affordances + `>` + value + `</span>`
}

func nameSpan(source, value string) string {
	return `<span data-name="true" data-name-source="` + source + `"` + affordances + `>` + value + `</span>`
}

func render(t *testing.T, eng *Engine, req Request) Result {
	t.Helper()
	result, err := eng.Render(req)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return result
}

func TestRender_NoTokensEscapesVerbatim(t *testing.T) {
	eng := New(WithRandom(testsupport.NewScripted(0)))
	template := `Tom & "Jerry" <3 it's`

	result := render(t, eng, Request{Template: template, Sets: []*pronouns.Set{sieIhr()}})

	if want := EscapeHTML(template); result.HTML != want {
		t.Fatalf("html mismatch\nwant: %q\n got: %q", want, result.HTML)
	}
	if result.HTML != "Tom &amp; &quot;Jerry&quot; &lt;3 it&#39;s" {
		t.Fatalf("unexpected escaping: %q", result.HTML)
	}
}

func TestRender_SingleModeScenario(t *testing.T) {
	eng := New(WithRandom(testsupport.NewScripted(0)))
	result := render(t, eng, Request{
		Template: "[Vorname] geht. [Nominativ] lacht.",
		People:   []names.Person{{FirstName: "Alex", LastName: "Miller"}},
		Sets:     []*pronouns.Set{sieIhr()},
		Mode:     ModeSingle,
	})

	want := nameSpan("user", "Alex") + " geht. " + pronounSpan("Sie/ihr", "Nominativ", "Sie") + " lacht."
	if diff := cmp.Diff(want, result.HTML); diff != "" {
		t.Fatalf("html mismatch (-want +got):\n%s", diff)
	}
	if strings.Count(result.HTML, "Alex") != 1 {
		t.Fatalf("expected Alex exactly once: %q", result.HTML)
	}
	if result.PronounSet == nil || result.PronounSet.Label != "Sie/ihr" {
		t.Fatalf("expected Sie/ihr as single-mode set, got %+v", result.PronounSet)
	}
	if result.UsedAutoGeneratedLastName {
		t.Fatalf("did not expect auto last name flag")
	}
}

func TestRender_AutoLastNameRaisesFlag(t *testing.T) {
	eng := New(WithRandom(testsupport.NewScripted(0)))
	result := render(t, eng, Request{
		Template: "[Nachname]",
		People:   []names.Person{{FirstName: "Sam", LastName: "Weber", LastNameSource: names.SourceAuto}},
		Sets:     []*pronouns.Set{sieIhr()},
	})

	if !result.UsedAutoGeneratedLastName {
		t.Fatalf("expected auto last name flag")
	}
	if diff := cmp.Diff(nameSpan("auto", "Weber"), result.HTML); diff != "" {
		t.Fatalf("html mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_FirstNameOnlyDoesNotRaiseFlag(t *testing.T) {
	eng := New(WithRandom(testsupport.NewScripted(0)))
	result := render(t, eng, Request{
		Template: "[Vorname]",
		People:   []names.Person{{FirstName: "Sam", LastName: "Weber", LastNameSource: names.SourceAuto}},
		Sets:     []*pronouns.Set{sieIhr()},
	})
	if result.UsedAutoGeneratedLastName {
		t.Fatalf("first name token must not raise the auto last name flag")
	}
	if !strings.Contains(result.HTML, `data-name-source="user"`) {
		t.Fatalf("expected user source marker: %q", result.HTML)
	}
}

func TestRender_UnmatchedBracketIsLiteral(t *testing.T) {
	eng := New(WithRandom(testsupport.NewScripted(0)))
	result := render(t, eng, Request{
		Template: "Hallo [Welt",
		People:   []names.Person{{FirstName: "Alex"}},
		Sets:     []*pronouns.Set{sieIhr()},
	})
	if result.HTML != "Hallo [Welt" {
		t.Fatalf("expected literal passthrough, got %q", result.HTML)
	}
}

func TestRender_Capitalization(t *testing.T) {
	eng := New(WithRandom(testsupport.NewScripted(0)), WithMarkers(MarkersOff))
	result := render(t, eng, Request{
		Template: "[Nominativ]/[nominativ]/[ Dativ ]/[poss. 2]/[Poss. 2]",
		Sets:     []*pronouns.Set{sieIhr()},
	})
	if want := "Sie/sie/Ihr/ihre/Ihre"; result.HTML != want {
		t.Fatalf("want %q, got %q", want, result.HTML)
	}
}

func TestRender_NoPronounsUsesNames(t *testing.T) {
	eng := New(WithRandom(testsupport.NewScripted(0)), WithMarkers(MarkersOff))

	cases := []struct {
		name  string
		first string
		want  string
	}{
		{name: "plain", first: "Mia", want: "Mia mag Mia, Mia; Mias Buch."},
		{name: "sibilant", first: "Alex", want: "Alex mag Alex, Alex; Alex' Buch."},
		{name: "uppercase sibilant", first: "MAX", want: "MAX mag MAX, MAX; MAX' Buch."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := render(t, eng, Request{
				Template: "[Nominativ] mag [akkusativ], [dativ]; [Poss. 1] Buch.",
				People:   []names.Person{{FirstName: tc.first, LastName: "Berg"}},
				Sets:     []*pronouns.Set{noPronouns()},
			})
			if result.HTML != tc.want {
				t.Fatalf("want %q, got %q", tc.want, result.HTML)
			}
		})
	}
}

func TestRender_LabelToken(t *testing.T) {
	eng := New(WithRandom(testsupport.NewScripted(0)))
	result := render(t, eng, Request{Template: "[Bezeichnung]", Sets: []*pronouns.Set{sieIhr()}})
	if want := pronounSpan("Sie/ihr", "Bezeichnung", "Sie/ihr"); result.HTML != want {
		t.Fatalf("want %q, got %q", want, result.HTML)
	}
}

func TestRender_MissingFormYieldsEmpty(t *testing.T) {
	partial := &pronouns.Set{Label: "Nur xier", Forms: pronouns.FormsOf("xier", "", "")}
	eng := New(WithRandom(testsupport.NewScripted(0)), WithMarkers(MarkersPlain))
	result := render(t, eng, Request{Template: "[dativ]", Sets: []*pronouns.Set{partial}})
	if want := `<span data-pronoun="Nur xier" data-pronoun-form="Dativ"></span>`; result.HTML != want {
		t.Fatalf("want %q, got %q", want, result.HTML)
	}
}

func TestRender_EachModeDrawsPerToken(t *testing.T) {
	// Draw order per pronoun token: set, then person.
	src := testsupport.NewScripted(0, 0, 1, 0)
	eng := New(WithRandom(src), WithMarkers(MarkersOff))
	result := render(t, eng, Request{
		Template: "[nominativ] und [nominativ]",
		People:   []names.Person{{FirstName: "Kim"}},
		Sets:     []*pronouns.Set{sieIhr(), erIhm()},
		Mode:     ModeEach,
	})

	if result.HTML != "sie und er" {
		t.Fatalf("want independent draws, got %q", result.HTML)
	}
	if result.PronounSet != nil {
		t.Fatalf("each mode must not report a single set")
	}
	if diff := cmp.Diff([]int{2, 1, 2, 1}, src.Calls()); diff != "" {
		t.Fatalf("draw sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_SingleModeReusesSet(t *testing.T) {
	src := testsupport.NewScripted(1, 0, 0)
	eng := New(WithRandom(src), WithMarkers(MarkersOff))
	result := render(t, eng, Request{
		Template: "[nominativ] [dativ] [akkusativ]",
		Sets:     []*pronouns.Set{sieIhr(), erIhm()},
		Mode:     ModeSingle,
	})
	if result.HTML != "er ihm ihn" {
		t.Fatalf("want fixed set, got %q", result.HTML)
	}
	if result.PronounSet.Label != "Er/ihm" {
		t.Fatalf("unexpected set %q", result.PronounSet.Label)
	}
}

func TestRender_NameCombinations(t *testing.T) {
	cases := []struct {
		name   string
		token  string
		person names.Person
		want   string
	}{
		{name: "full", token: "Vorname Nachname", person: names.Person{FirstName: "Alex", LastName: "Miller"}, want: "Alex Miller"},
		{name: "full plus", token: "Vorname + Nachname", person: names.Person{FirstName: "Alex"}, want: "Alex"},
		{name: "address with last name", token: "Anrede", person: names.Person{FirstName: "Alex", LastName: "Miller", Salutation: "Mx."}, want: "Mx. Miller"},
		{name: "address without last name", token: "Anrede/Vorname + Nachname", person: names.Person{FirstName: "Alex", Salutation: "Mx."}, want: "Mx. Alex"},
		{name: "address salutation only", token: "Anrede", person: names.Person{Salutation: "Mx."}, want: "Mx."},
		{name: "address without salutation", token: "Anrede", person: names.Person{FirstName: "Alex", LastName: "Miller"}, want: "Alex Miller"},
		{name: "lowercase token", token: "vorname", person: names.Person{FirstName: "alex"}, want: "alex"},
		{name: "capitalizes value", token: "Vorname", person: names.Person{FirstName: "alex"}, want: "Alex"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			eng := New(WithRandom(testsupport.NewScripted(0)), WithMarkers(MarkersOff))
			result := render(t, eng, Request{
				Template: "[" + tc.token + "]",
				People:   []names.Person{tc.person},
				Sets:     []*pronouns.Set{sieIhr()},
			})
			if result.HTML != tc.want {
				t.Fatalf("want %q, got %q", tc.want, result.HTML)
			}
		})
	}
}

func TestRender_EmptyPeopleFallsBackToBlank(t *testing.T) {
	eng := New(WithRandom(testsupport.NewScripted(0)))
	result := render(t, eng, Request{
		Template: "[Vorname]|[Nominativ]",
		Sets:     []*pronouns.Set{noPronouns()},
	})
	want := nameSpan("user", "") + "|" + pronounSpan(pronouns.NoPronounsLabel, "Nominativ", "")
	if diff := cmp.Diff(want, result.HTML); diff != "" {
		t.Fatalf("html mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_UnknownTokenPassesThrough(t *testing.T) {
	eng := New(WithRandom(testsupport.NewScripted(0)))
	result := render(t, eng, Request{
		Template: "Hallo [ Welt & Co ]!",
		People:   []names.Person{{FirstName: "Alex"}},
		Sets:     []*pronouns.Set{sieIhr()},
	})
	if want := "Hallo Welt &amp; Co!"; result.HTML != want {
		t.Fatalf("want %q, got %q", want, result.HTML)
	}
}

func TestRender_EscapesSubstitutionsOnce(t *testing.T) {
	eng := New(WithRandom(testsupport.NewScripted(0)), WithMarkers(MarkersOff))
	result := render(t, eng, Request{
		Template: "[Vorname] &amp;",
		People:   []names.Person{{FirstName: "Tom & <Jerry>"}},
		Sets:     []*pronouns.Set{sieIhr()},
	})
	if want := "Tom &amp; &lt;Jerry&gt; &amp;amp;"; result.HTML != want {
		t.Fatalf("want %q, got %q", want, result.HTML)
	}
	if strings.Contains(result.HTML, "&amp;amp;amp;") {
		t.Fatalf("double encoding detected: %q", result.HTML)
	}
}

func TestRender_EscapesMarkerAttributes(t *testing.T) {
	set := &pronouns.Set{Label: `"x"/<y>`, Forms: pronouns.FormsOf("x", "", "")}
	eng := New(WithRandom(testsupport.NewScripted(0)), WithMarkers(MarkersPlain))
	result := render(t, eng, Request{Template: "[nominativ]", Sets: []*pronouns.Set{set}})
	if want := `<span data-pronoun="&quot;x&quot;/&lt;y&gt;" data-pronoun-form="Nominativ">x</span>`; result.HTML != want {
		t.Fatalf("want %q, got %q", want, result.HTML)
	}
}

func TestRender_AutoGeneratedPersonMarksSource(t *testing.T) {
	eng := New(WithRandom(testsupport.NewScripted(0)), WithDialogID("dlg"), WithMarkers(MarkersInteractive))
	result := render(t, eng, Request{
		Template: "[Vorname]",
		People:   []names.Person{{FirstName: "Robin", LastName: "Koch", LastNameSource: names.SourceAuto, AutoGenerated: true}},
		Sets:     []*pronouns.Set{sieIhr()},
	})
	if !strings.Contains(result.HTML, `data-name-source="auto"`) || !strings.Contains(result.HTML, `aria-controls="dlg"`) {
		t.Fatalf("unexpected marker: %q", result.HTML)
	}
	if result.UsedAutoGeneratedLastName {
		t.Fatalf("first name alone must not raise the flag")
	}
}

func TestRender_Preconditions(t *testing.T) {
	eng := New()

	if _, err := eng.Render(Request{Template: "x"}); !errors.Is(err, ErrNoPronounSets) {
		t.Fatalf("expected ErrNoPronounSets, got %v", err)
	}
	if _, err := eng.Render(Request{Template: "x", Sets: []*pronouns.Set{sieIhr()}, Mode: "sometimes"}); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
	if _, err := eng.Render(Request{Template: "x", Sets: []*pronouns.Set{nil}}); err == nil {
		t.Fatalf("expected error for nil set")
	}
}

func TestParseMode(t *testing.T) {
	if mode, err := ParseMode(""); err != nil || mode != ModeSingle {
		t.Fatalf("empty mode: %v %v", mode, err)
	}
	if mode, err := ParseMode(" EACH "); err != nil || mode != ModeEach {
		t.Fatalf("each mode: %v %v", mode, err)
	}
	if _, err := ParseMode("both"); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
}

func TestParseMarkerMode(t *testing.T) {
	if mode, err := ParseMarkerMode(""); err != nil || mode != MarkersInteractive {
		t.Fatalf("default markers: %v %v", mode, err)
	}
	if mode, err := ParseMarkerMode("Off"); err != nil || mode != MarkersOff {
		t.Fatalf("off markers: %v %v", mode, err)
	}
	var optErr *InvalidOptionError
	if _, err := ParseMarkerMode("loud"); !errors.As(err, &optErr) || optErr.Option != "markers" {
		t.Fatalf("expected InvalidOptionError, got %v", err)
	}
	if _, err := ParseMarkerMode("loud"); errors.Is(err, ErrInvalidMode) {
		t.Fatalf("marker errors must not match ErrInvalidMode")
	}
}
