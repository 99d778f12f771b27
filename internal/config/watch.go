package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// debounceDelay collapses the event bursts editors produce when they
// save via temp file + rename.
const debounceDelay = 250 * time.Millisecond

// Watch watches the config file and calls onChange after it is written,
// created or renamed. The parent directory is watched so replacing the
// file is seen too. Watching stops when ctx is cancelled.
func Watch(ctx context.Context, path string, logger zerolog.Logger, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: create watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("config: watch %s: %w", dir, err)
	}

	clean := filepath.Clean(path)
	base := filepath.Base(path)

	go func() {
		defer watcher.Close()

		var pending *time.Timer
		defer func() {
			if pending != nil {
				pending.Stop()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !shouldReload(clean, base, event) {
					continue
				}
				logger.Debug().Str("event", event.String()).Msg("Config file changed")
				if pending != nil {
					pending.Stop()
				}
				pending = time.AfterFunc(debounceDelay, onChange)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn().Err(err).Msg("Config watcher error")
			}
		}
	}()

	return nil
}

// shouldReload reports whether an fsnotify event warrants a reload.
func shouldReload(configPath, configBase string, event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Clean(event.Name)
	if name == configPath {
		return true
	}
	// Editors that save via temp + rename can report partial paths.
	return filepath.Base(name) == configBase
}
