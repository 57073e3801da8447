// Package cli holds the long-running pieces of the vardeps command line:
// signal handling and the watch loop.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aretw0/vardeps"
	"github.com/aretw0/vardeps/internal/logging"
	"github.com/aretw0/vardeps/pkg/domain"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 150 * time.Millisecond

// WatchOptions configures Watch.
type WatchOptions struct {
	Path     string
	Debounce time.Duration
	Logger   *slog.Logger

	// OnResult receives every parse outcome, starting with the initial one.
	// It is called from the Watch goroutine only.
	OnResult func(g *domain.Graph, err error)
}

// Watch parses opts.Path once, then again after every change to it, until
// ctx is done. The parent directory is watched so that editors replacing the
// file by rename are still seen.
func Watch(ctx context.Context, opts WatchOptions) error {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.OnResult == nil {
		opts.OnResult = func(*domain.Graph, error) {}
	}

	abs, err := filepath.Abs(opts.Path)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	reparse := func() {
		g, err := vardeps.ParseFile(abs, vardeps.WithLogger(opts.Logger))
		opts.OnResult(g, err)
	}

	opts.Logger.Info("Starting Watcher", "path", abs)
	reparse()

	timer := time.NewTimer(opts.Debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			opts.Logger.Debug("Change detected", "event", event.Op.String())
			timer.Reset(opts.Debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher failed: %w", err)

		case <-timer.C:
			reparse()
		}
	}
}
