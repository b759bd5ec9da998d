// Package watcher reports device node hotplug by watching a directory.
package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce collapses the burst of nodes one tablet creates
const DefaultDebounce = time.Second

// Watcher watches a directory for entries being added or removed
type Watcher struct {
	dir      string
	pattern  string
	onChange func(ctx context.Context)
	debounce time.Duration
	logger   *zap.Logger
}

// New creates a watcher for dir. onChange runs on the goroutine that calls
// Watch, once per burst of changes.
func New(dir string, onChange func(ctx context.Context)) *Watcher {
	return &Watcher{
		dir:      dir,
		pattern:  "*",
		onChange: onChange,
		debounce: DefaultDebounce,
		logger:   zap.NewNop(),
	}
}

// WithDebounce sets the debounce duration
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	if d > 0 {
		w.debounce = d
	}
	return w
}

// WithPattern only reacts to entries whose base name matches the
// filepath.Match pattern, e.g. "event*"
func (w *Watcher) WithPattern(pattern string) *Watcher {
	if pattern != "" {
		w.pattern = pattern
	}
	return w
}

// WithLogger sets the logger
func (w *Watcher) WithLogger(logger *zap.Logger) *Watcher {
	if logger != nil {
		w.logger = logger
	}
	return w
}

// Watch blocks until the context is cancelled or the watch fails
func (w *Watcher) Watch(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return err
	}

	w.logger.Info("watching for device changes",
		zap.String("dir", w.dir),
		zap.Duration("debounce", w.debounce))

	// Timer channels are unbuffered since Go 1.23, so Stop and Reset never
	// leave a stale tick behind.
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Remove) == 0 || !w.matches(event.Name) {
				continue
			}
			w.logger.Debug("device node changed",
				zap.String("name", event.Name),
				zap.String("op", event.Op.String()))

			timer.Reset(w.debounce)

		case <-timer.C:
			w.logger.Info("device change settled", zap.String("dir", w.dir))
			w.onChange(ctx)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", zap.Error(err))

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Watcher) matches(name string) bool {
	ok, err := filepath.Match(w.pattern, filepath.Base(name))
	return err == nil && ok
}
