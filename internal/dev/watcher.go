package dev

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Change represents a detected file change.
type Change struct {
	Path string
}

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the directories to watch.
	Paths []string

	// Ignore patterns to skip (globs, matched against the base name).
	Ignore []string

	// Debounce is the polling interval.
	Debounce time.Duration
}

// DefaultIgnore contains default patterns to ignore.
var DefaultIgnore = []string{
	".git",
	"*.tmp",
	"*.swp",
	"*~",
}

// Watcher monitors files for changes by polling modification times.
type Watcher struct {
	config      WatcherConfig
	onChange    func(Change)
	mu          sync.Mutex
	running     bool
	initialized bool
	stopCh      chan struct{}
	timestamps  map[string]time.Time
}

// NewWatcher creates a new file watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Debounce == 0 {
		config.Debounce = 100 * time.Millisecond
	}
	if len(config.Ignore) == 0 {
		config.Ignore = DefaultIgnore
	}

	return &Watcher{
		config:     config,
		timestamps: make(map[string]time.Time),
	}
}

// OnChange sets the callback for file changes.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start begins watching for file changes. It blocks until the context is
// cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	w.scanInitial()

	ticker := time.NewTicker(w.config.Debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			return nil
		case <-ticker.C:
			w.checkForChanges()
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

// scanInitial builds the initial timestamp map.
func (w *Watcher) scanInitial() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, path := range w.config.Paths {
		filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if info.IsDir() {
				if w.shouldIgnore(p) {
					return filepath.SkipDir
				}
				return nil
			}
			if !w.shouldIgnore(p) {
				w.timestamps[p] = info.ModTime()
			}
			return nil
		})
	}

	w.initialized = true
}

// checkForChanges scans for modified, new, and deleted files and reports
// the first change found per scan.
func (w *Watcher) checkForChanges() {
	w.mu.Lock()
	callback := w.onChange
	initialized := w.initialized
	w.mu.Unlock()

	if callback == nil {
		return
	}

	var changes []Change

	for _, path := range w.config.Paths {
		filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if info.IsDir() {
				if w.shouldIgnore(p) {
					return filepath.SkipDir
				}
				return nil
			}
			if w.shouldIgnore(p) {
				return nil
			}

			w.mu.Lock()
			lastMod, exists := w.timestamps[p]
			modTime := info.ModTime()
			if !exists || modTime.After(lastMod) {
				w.timestamps[p] = modTime
				if exists || initialized {
					changes = append(changes, Change{Path: p})
				}
			}
			w.mu.Unlock()

			return nil
		})
	}

	w.mu.Lock()
	for p := range w.timestamps {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			delete(w.timestamps, p)
			changes = append(changes, Change{Path: p})
		}
	}
	w.mu.Unlock()

	if len(changes) > 0 {
		callback(changes[0])
	}
}

// shouldIgnore reports whether the path matches an ignore pattern.
func (w *Watcher) shouldIgnore(path string) bool {
	base := filepath.Base(path)
	for _, pattern := range w.config.Ignore {
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
		if strings.Contains(path, string(filepath.Separator)+pattern+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
