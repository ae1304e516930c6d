// Package watcher notifies the tray when the controller's files change.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce coalesces bursts of writes to the same file.
const DefaultDebounce = 100 * time.Millisecond

// Event reports that one of the watched files changed.
type Event struct {
	Path string
}

// Watcher watches the parent directories of a fixed set of files.
// Directories are watched rather than the files themselves so that files
// which do not exist yet, or are replaced by rename, are still observed.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	eventsChan chan Event
	done       chan struct{}
	stopOnce   sync.Once
	files      map[string]struct{} // cleaned absolute paths
	debounce   map[string]*time.Timer
	debounceMu sync.Mutex
	delay      time.Duration
	logger     zerolog.Logger
}

// New creates a watcher for the given files.
func New(logger zerolog.Logger, paths ...string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher:  fsWatcher,
		eventsChan: make(chan Event, 16),
		done:       make(chan struct{}),
		files:      make(map[string]struct{}),
		debounce:   make(map[string]*time.Timer),
		delay:      DefaultDebounce,
		logger:     logger,
	}

	for _, p := range paths {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		w.files[filepath.Clean(p)] = struct{}{}
	}

	return w, nil
}

// Events returns the channel for receiving events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// Start adds the watches and begins processing events. A directory that
// cannot be watched is logged and skipped; polling still covers its file.
func (w *Watcher) Start() error {
	dirs := make(map[string]struct{})
	for p := range w.files {
		dirs[filepath.Dir(p)] = struct{}{}
	}
	for dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			w.logger.Warn().Err(err).Str("dir", dir).Msg("failed to watch directory")
			continue
		}
		w.logger.Debug().Str("dir", dir).Msg("watching directory")
	}

	go w.processEvents()

	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()

		w.debounceMu.Lock()
		for path, timer := range w.debounce {
			timer.Stop()
			delete(w.debounce, path)
		}
		w.debounceMu.Unlock()
	})
}

// processEvents processes file system events.
func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("watcher error")
		}
	}
}

// handleEvent filters a raw fsnotify event down to the watched files.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Rename matters: atomic writes (write tmp, rename to target) surface as
	// Create or Rename on the target file.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return
	}

	path := filepath.Clean(event.Name)
	if _, ok := w.files[path]; !ok {
		return
	}

	w.debounceEvent(path, func() {
		select {
		case w.eventsChan <- Event{Path: path}:
		case <-w.done:
		default:
			// A refresh is already pending; it will read the latest content.
		}
	})
}

// debounceEvent debounces events for the same path.
func (w *Watcher) debounceEvent(path string, fn func()) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}

	w.debounce[path] = time.AfterFunc(w.delay, func() {
		w.debounceMu.Lock()
		delete(w.debounce, path)
		w.debounceMu.Unlock()
		fn()
	})
}
