package results

import (
	"fmt"
	"io/fs"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// templateSet caches parsed pongo2 templates loaded from an fs.FS.
type templateSet struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
}

func newTemplateSet(files fs.FS) *templateSet {
	return &templateSet{
		set:       pongo2.NewSet("pronomen-results", pongo2.NewFSLoader(files)),
		templates: make(map[string]*pongo2.Template),
	}
}

func (s *templateSet) render(name string, data pongo2.Context) (string, error) {
	tmpl, err := s.get(name)
	if err != nil {
		return "", err
	}
	out, err := tmpl.Execute(data)
	if err != nil {
		return "", fmt.Errorf("results: execute template %q: %w", name, err)
	}
	return out, nil
}

func (s *templateSet) get(name string) (*pongo2.Template, error) {
	s.mu.RLock()
	if tmpl, ok := s.templates[name]; ok {
		s.mu.RUnlock()
		return tmpl, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if tmpl, ok := s.templates[name]; ok {
		return tmpl, nil
	}

	tmpl, err := s.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("results: load template %q: %w", name, err)
	}
	s.templates[name] = tmpl
	return tmpl, nil
}
