// Package pronomen renders German template texts with pronoun and name
// placeholders into escaped HTML. The root package re-exports the common
// types and offers one-call entry points; the pkg/ packages hold the
// building blocks.
package pronomen

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-pronomen/pkg/catalog"
	"github.com/goliatone/go-pronomen/pkg/engine"
	"github.com/goliatone/go-pronomen/pkg/names"
	"github.com/goliatone/go-pronomen/pkg/pronouns"
	"github.com/goliatone/go-pronomen/pkg/random"
	"github.com/goliatone/go-pronomen/pkg/session"
)

// Person aliases names.Person.
type Person = names.Person

// PronounSet aliases pronouns.Set.
type PronounSet = pronouns.Set

// Mode aliases engine.Mode.
type Mode = engine.Mode

// Result aliases engine.Result.
type Result = engine.Result

// Input aliases session.Input for callers driving a Session.
type Input = session.Input

// Output aliases session.Output.
type Output = session.Output

const (
	ModeSingle = engine.ModeSingle
	ModeEach   = engine.ModeEach
)

// DefaultCatalog returns the embedded catalog.
func DefaultCatalog() *catalog.Catalog {
	return catalog.Default()
}

// LoadCatalog reads a catalog from fsys.
func LoadCatalog(fsys fs.FS) (*catalog.Catalog, error) {
	return catalog.Load(fsys)
}

// LoadCatalogDir reads a catalog from a directory on disk.
func LoadCatalogDir(dir string) (*catalog.Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("pronomen: catalog dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("pronomen: catalog dir %q is not a directory", dir)
	}
	return catalog.Load(os.DirFS(dir))
}

// NewSession builds a Session over cat, or the embedded catalog when cat is
// nil.
func NewSession(cat *catalog.Catalog, options ...session.Option) (*session.Session, error) {
	if cat == nil {
		cat = catalog.Default()
	}
	return session.New(cat, options...)
}

// ParseNames turns comma separated name entries into people, drawing filler
// last names from the default random source.
func ParseNames(inputs ...string) []Person {
	return names.Parse(random.Default(), inputs...)
}

// Render fills template once with a fresh engine.
func Render(template string, people []Person, sets []*PronounSet, mode Mode, options ...engine.Option) (Result, error) {
	return engine.New(options...).Render(engine.Request{
		Template: template,
		People:   people,
		Sets:     sets,
		Mode:     mode,
	})
}
