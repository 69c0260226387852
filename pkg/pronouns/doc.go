// Package pronouns models pronoun declension sets and resolves grammatical
// case tokens against them. The distinguished "Keine Pronomen" set never
// looks up stored forms; it substitutes the person's name instead, with a
// possessive suffix for the possessive slots.
package pronouns
