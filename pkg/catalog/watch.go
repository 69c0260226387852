package catalog

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultReloadDelay batches rapid saves into one reload.
const DefaultReloadDelay = 200 * time.Millisecond

// WatchOption configures a Watcher.
type WatchOption func(*watchConfig)

type watchConfig struct {
	logger   *zap.Logger
	delay    time.Duration
	onReload func(*Catalog)
}

// WithWatchLogger attaches a logger for reload diagnostics.
func WithWatchLogger(logger *zap.Logger) WatchOption {
	return func(cfg *watchConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithReloadDelay overrides DefaultReloadDelay.
func WithReloadDelay(delay time.Duration) WatchOption {
	return func(cfg *watchConfig) {
		if delay > 0 {
			cfg.delay = delay
		}
	}
}

// WithReloadHook is called with every successfully reloaded catalog.
func WithReloadHook(fn func(*Catalog)) WatchOption {
	return func(cfg *watchConfig) {
		cfg.onReload = fn
	}
}

// Watcher keeps a catalog loaded from a directory current. A reload that
// fails validation is logged and the previous catalog stays in place.
type Watcher struct {
	dir string
	cfg watchConfig

	mu      sync.RWMutex
	current *Catalog

	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	doneCh  chan struct{}
	once    sync.Once
}

// NewWatcher loads dir once and prepares a watcher for it.
func NewWatcher(dir string, options ...WatchOption) (*Watcher, error) {
	cfg := watchConfig{logger: zap.NewNop(), delay: DefaultReloadDelay}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	cat, err := Load(os.DirFS(dir))
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("catalog: create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("catalog: watch %s: %w", dir, err)
	}

	return &Watcher{
		dir:     dir,
		cfg:     cfg,
		current: cat,
		watcher: fsw,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Current returns the latest valid catalog.
func (w *Watcher) Current() *Catalog {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Start runs the event loop until ctx is done or Stop is called. It does
// not block.
func (w *Watcher) Start(ctx context.Context) {
	go w.run(ctx)
}

// Stop ends the event loop and releases the watcher. Safe to call more than
// once; Start must have been called.
func (w *Watcher) Stop() {
	w.once.Do(func() {
		close(w.stopCh)
		<-w.doneCh
		if err := w.watcher.Close(); err != nil {
			w.cfg.logger.Warn("catalog: close watcher", zap.Error(err))
		}
	})
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	timer := time.NewTimer(w.cfg.delay)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isCatalogFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(w.cfg.delay)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.cfg.logger.Warn("catalog: watch error", zap.Error(err))
		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	cat, err := Load(os.DirFS(w.dir))
	if err != nil {
		w.cfg.logger.Warn("catalog: reload failed, keeping previous catalog",
			zap.String("dir", w.dir), zap.Error(err))
		return
	}

	w.mu.Lock()
	w.current = cat
	w.mu.Unlock()

	w.cfg.logger.Info("catalog: reloaded",
		zap.String("dir", w.dir),
		zap.Int("sets", len(cat.Sets())),
		zap.Int("texts", len(cat.Texts())),
	)
	if w.cfg.onReload != nil {
		w.cfg.onReload(cat)
	}
}
