// Package watch re-renders a document whenever its template or values files
// change on disk. It wraps the pure renderer; the render itself is supplied
// as a callback so the watcher stays policy-free.
package watch

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Config lists the files to watch and how to report progress.
type Config struct {
	TemplatePath string
	ValuesPaths  []string
	// Debounce coalesces editor write bursts into one render. Defaults to
	// 200ms when zero.
	Debounce time.Duration
	Logger   *slog.Logger
}

// RenderFunc performs one render pass. Errors are logged and the watch
// continues, so a broken intermediate save does not kill the loop.
type RenderFunc func(ctx context.Context) error

// Run renders once, then blocks re-rendering on changes until ctx is
// cancelled. Watches are registered on parent directories because editors
// typically replace files instead of writing them in place.
func Run(ctx context.Context, cfg Config, render RenderFunc) error {
	if render == nil {
		return errors.New("watch: render func is required")
	}
	if cfg.TemplatePath == "" {
		return errors.New("watch: template path is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}

	targets := targetSet(cfg.TemplatePath, cfg.ValuesPaths)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	dirs := make(map[string]struct{})
	for target := range targets {
		dirs[filepath.Dir(target)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}

	if err := render(ctx); err != nil {
		logger.Error("render failed", "error", err)
	}

	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event, targets) {
				continue
			}
			logger.Debug("change detected", "file", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounce)
				pending = timer.C
			} else {
				timer.Reset(debounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "error", err)
		case <-pending:
			timer = nil
			pending = nil
			if err := render(ctx); err != nil {
				logger.Error("render failed", "error", err)
				continue
			}
			logger.Info("document re-rendered", "template", cfg.TemplatePath)
		}
	}
}

func targetSet(templatePath string, valuesPaths []string) map[string]struct{} {
	targets := make(map[string]struct{}, 1+len(valuesPaths))
	targets[filepath.Clean(templatePath)] = struct{}{}
	for _, path := range valuesPaths {
		if path == "" {
			continue
		}
		targets[filepath.Clean(path)] = struct{}{}
	}
	return targets
}

func relevant(event fsnotify.Event, targets map[string]struct{}) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	_, ok := targets[filepath.Clean(event.Name)]
	return ok
}
