package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPronounSets is returned when Render receives an empty set pool.
	ErrNoPronounSets = errors.New("engine: at least one pronoun set is required")
	// ErrInvalidMode is returned for randomization modes other than single
	// and each.
	ErrInvalidMode = errors.New("engine: invalid randomization mode")
)

// InvalidOptionError reports an unrecognised option value.
type InvalidOptionError struct {
	Option string
	Value  string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("engine: invalid %s %q", e.Option, e.Value)
}

// Is lets errors.Is match ErrInvalidMode for mode options.
func (e *InvalidOptionError) Is(target error) bool {
	return target == ErrInvalidMode && e.Option == "mode"
}
