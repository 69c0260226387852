package session

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-pronomen/pkg/engine"
	"github.com/goliatone/go-pronomen/pkg/random"
	"github.com/goliatone/go-pronomen/pkg/results"
)

// Option configures a Session.
type Option func(*config)

type config struct {
	random          random.Source
	logger          *zap.Logger
	engineOptions   []engine.Option
	rendererOptions []results.Option
}

// WithRandom sets the source shared by name parsing, set selection and the
// engine.
func WithRandom(src random.Source) Option {
	return func(cfg *config) {
		if src != nil {
			cfg.random = src
		}
	}
}

// WithLogger attaches a logger. The engine inherits it.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithEngineOptions forwards options to the engine, e.g. marker mode.
func WithEngineOptions(options ...engine.Option) Option {
	return func(cfg *config) {
		cfg.engineOptions = append(cfg.engineOptions, options...)
	}
}

// WithRendererOptions forwards options to the results renderer.
func WithRendererOptions(options ...results.Option) Option {
	return func(cfg *config) {
		cfg.rendererOptions = append(cfg.rendererOptions, options...)
	}
}
