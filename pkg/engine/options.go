package engine

import (
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-pronomen/pkg/random"
)

// Option configures an Engine.
type Option func(*config)

type config struct {
	random   random.Source
	logger   *zap.Logger
	markers  MarkerMode
	dialogID string
}

// WithRandom sets the source used for every draw. Tests pass a scripted
// source here.
func WithRandom(src random.Source) Option {
	return func(cfg *config) {
		if src != nil {
			cfg.random = src
		}
	}
}

// WithLogger attaches a logger for degraded-input diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithMarkers selects how substitutions are wrapped.
func WithMarkers(mode MarkerMode) Option {
	return func(cfg *config) {
		if mode != "" {
			cfg.markers = mode
		}
	}
}

// WithDialogID overrides the aria-controls target of interactive markers.
func WithDialogID(id string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			cfg.dialogID = trimmed
		}
	}
}
