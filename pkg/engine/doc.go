// Package engine fills template texts with names and pronoun forms.
//
// A template is plain text with bracketed tokens such as [Vorname],
// [Nominativ] or [Poss. 2]. Render scans the text once, classifies every
// token, resolves it against the supplied people and pronoun sets, matches
// capitalization to the token and emits escaped HTML. Substitutions are
// wrapped in span markers carrying data attributes so callers can attach
// inspection dialogs.
//
// The engine never fails on malformed templates: unmatched brackets are
// literal text, unknown tokens pass through and missing declension data
// yields an empty substitution.
package engine
