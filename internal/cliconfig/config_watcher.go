package cliconfig

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Configuration is read once at startup and immutable for the process
// lifetime, so the watcher's only job is to tell the user that an edit will
// not take effect until restart.

// ConfigWatcher monitors the config file (and .env) for changes via fsnotify.
type ConfigWatcher struct {
	paths map[string]bool
	dirs  []string
	log   zerolog.Logger

	mu       sync.Mutex
	debounce *time.Timer
}

// NewConfigWatcher creates a watcher for the given files. Paths that do not
// exist yet are still watched via their parent directory, so creating the
// file later is noticed too.
func NewConfigWatcher(log zerolog.Logger, paths ...string) *ConfigWatcher {
	w := &ConfigWatcher{
		paths: make(map[string]bool, len(paths)),
		log:   log,
	}
	seen := map[string]bool{}
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		w.paths[abs] = true
		dir := filepath.Dir(abs)
		if !seen[dir] {
			seen[dir] = true
			w.dirs = append(w.dirs, dir)
		}
	}
	return w
}

// Run watches until the context is canceled. Errors are logged, never fatal;
// a broken watcher must not take the session down with it.
func (w *ConfigWatcher) Run(ctx context.Context) {
	if len(w.dirs) == 0 {
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.log.Warn().Err(err).Msg("config watcher unavailable")
		return
	}
	defer watcher.Close()

	watching := false
	for _, dir := range w.dirs {
		if err := watcher.Add(dir); err != nil {
			w.log.Warn().Err(err).Str("dir", dir).Msg("cannot watch config directory")
			continue
		}
		watching = true
	}
	if !watching {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !w.paths[abs] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.notify(abs)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("config watcher error")
		}
	}
}

// notify warns once per burst of change events.
func (w *ConfigWatcher) notify(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(100*time.Millisecond, func() {
		w.log.Warn().Str("file", path).
			Msg("configuration changed on disk; restart tweetsight to apply")
	})
}
