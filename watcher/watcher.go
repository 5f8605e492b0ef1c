// Package watcher re-renders guide documents when their files change.
package watcher

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// eventChannelBuffer is the size of the watch event channel.
const eventChannelBuffer = 64

// Event is a debounced change notification for one watched guide file.
type Event struct {
	// Path is the absolute path of the changed guide file.
	Path string
}

// GuideWatcher watches a fixed set of guide files and emits one debounced
// event per file after changes settle.
type GuideWatcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	// watched maps absolute file paths to true; events for other files in
	// the watched directories are dropped.
	watched map[string]bool

	pendingMu sync.Mutex
	pending   map[string]bool

	events chan Event
}

// New creates a watcher for the given guide files. The parent directory of
// each file is watched; changes are debounced by the given delay.
func New(paths []string, debounce time.Duration, logger *slog.Logger) (*GuideWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			_ = fsw.Close()
			return nil, err
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			logger.Warn("Failed to watch directory", "path", dir, "error", err)
		}
	}

	return &GuideWatcher{
		watcher:  fsw,
		logger:   logger,
		debounce: debounce,
		watched:  watched,
		pending:  make(map[string]bool),
		events:   make(chan Event, eventChannelBuffer),
	}, nil
}

// Events returns the channel of debounced change events.
func (w *GuideWatcher) Events() <-chan Event {
	return w.events
}

// Start begins processing file system events until the context is
// cancelled. The events channel is closed when processing exits.
func (w *GuideWatcher) Start(ctx context.Context) {
	go w.processEvents(ctx)
	w.logger.Info("Guide watcher started",
		"files", len(w.watched),
		"debounce", w.debounce)
}

// Stop stops the underlying file system watcher.
func (w *GuideWatcher) Stop() error {
	return w.watcher.Close()
}

// processEvents handles fsnotify events with debouncing.
func (w *GuideWatcher) processEvents(ctx context.Context) {
	defer close(w.events)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending()
		}
	}
}

// handleFSEvent records a write or create for a watched file.
func (w *GuideWatcher) handleFSEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil || !w.watched[abs] {
		return
	}

	w.pendingMu.Lock()
	w.pending[abs] = true
	w.pendingMu.Unlock()
}

// flushPending emits one event per settled file.
func (w *GuideWatcher) flushPending() {
	w.pendingMu.Lock()
	paths := make([]string, 0, len(w.pending))
	for path := range w.pending {
		paths = append(paths, path)
	}
	w.pending = make(map[string]bool)
	w.pendingMu.Unlock()

	for _, path := range paths {
		select {
		case w.events <- Event{Path: path}:
		default:
			w.logger.Warn("Dropping watch event, channel full", "path", path)
		}
	}
}
