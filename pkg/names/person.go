// Package names turns free-text name entries into Person records and keeps
// the static pools used for filler surnames and preview names.
package names

import "strings"

// Source records where a last name came from.
type Source string

const (
	// SourceUser marks a last name typed by the user.
	SourceUser Source = "user"
	// SourceAuto marks a filler last name drawn from LastNames.
	SourceAuto Source = "auto"
)

// Person is one resolved name record used to fill name placeholders.
type Person struct {
	FirstName      string
	LastName       string
	LastNameSource Source
	Salutation     string
	// AutoGenerated marks a randomly generated preview person.
	AutoGenerated bool
}

// Source returns the last name source, defaulting to SourceUser.
func (p Person) Source() Source {
	if p.LastNameSource == "" {
		return SourceUser
	}
	return p.LastNameSource
}

// HasAutoLastName reports whether the last name is a non-empty filler.
func (p Person) HasAutoLastName() bool {
	return p.LastName != "" && p.Source() == SourceAuto
}

// FullName joins first and last name, omitting an empty last name.
func (p Person) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// WithSalutation returns a copy of p carrying salutation.
func (p Person) WithSalutation(salutation string) Person {
	p.Salutation = strings.TrimSpace(salutation)
	return p
}

// Key identifies a person across reruns.
func Key(p Person) string {
	return p.FirstName + "|" + p.LastName + "|" + string(p.Source())
}
