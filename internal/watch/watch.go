// Package watch monitors the source tree and locale directory and
// re-runs a scan whenever relevant files change.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/eatsense-app/i18nscan/internal/scan"
	"github.com/eatsense-app/i18nscan/internal/scanlog"
)

// Watcher monitors the project for changes and triggers rescans.
type Watcher struct {
	srcRoot    string
	localesDir string
	debounce   time.Duration
	rescan     func()
	watcher    *fsnotify.Watcher
	done       chan struct{}

	// A rescan already running when another change lands marks the
	// dirty flag so it re-runs once the current pass finishes.
	inFlightMu sync.Mutex
	inFlight   bool
	dirty      bool
}

// NewWatcher creates a watcher over the source root and the locales
// directory. A zero debounce defaults to 2 seconds. rescan runs on a
// background goroutine once changes settle.
func NewWatcher(srcRoot, localesDir string, debounce time.Duration, rescan func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if debounce <= 0 {
		debounce = 2 * time.Second
	}

	return &Watcher{
		srcRoot:    srcRoot,
		localesDir: localesDir,
		debounce:   debounce,
		rescan:     rescan,
		watcher:    fw,
		done:       make(chan struct{}),
	}, nil
}

// Start registers watches over every directory under the source root
// plus the locales directory, then begins the event loop.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watchTree(w.srcRoot); err != nil {
		return err
	}
	if w.localesDir != "" {
		if err := w.watcher.Add(w.localesDir); err != nil {
			scanlog.Log.Warn("watcher: failed to watch locales dir", "dir", w.localesDir, "error", err)
		}
	}

	go w.watchLoop(ctx)
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) watchTree(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if p != root && (strings.HasPrefix(name, ".") || name == "node_modules") {
			return fs.SkipDir
		}
		if err := w.watcher.Add(p); err != nil {
			scanlog.Log.Warn("watcher: failed to watch directory", "dir", p, "error", err)
		}
		return nil
	})
}

// relevant reports whether a change to path should trigger a rescan.
func (w *Watcher) relevant(path string) bool {
	if w.localesDir != "" && filepath.Dir(path) == filepath.Clean(w.localesDir) {
		return strings.HasSuffix(path, ".json")
	}
	return scan.IsSourceFile(path)
}

func (w *Watcher) watchLoop(ctx context.Context) {
	// Debounce timers keyed by path so rapid editor writes collapse
	// into one rescan.
	timers := make(map[string]*time.Timer)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Op&fsnotify.Create != 0 {
				// New directories need their own watch.
				w.maybeWatchNewDir(event.Name)
			}

			if !w.relevant(event.Name) {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				if timer, ok := timers[event.Name]; ok {
					timer.Stop()
				}
				timers[event.Name] = time.AfterFunc(w.debounce, func() {
					w.handleChange(event.Name)
				})
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			scanlog.Log.Warn("watcher: fsnotify error", "error", err)

		case <-w.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (w *Watcher) maybeWatchNewDir(path string) {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || base == "node_modules" {
		return
	}
	if !strings.HasPrefix(filepath.Clean(path), filepath.Clean(w.srcRoot)) {
		return
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	if err := w.watcher.Add(path); err != nil {
		scanlog.Log.Debug("watcher: failed to watch new directory", "dir", path, "error", err)
	}
}

func (w *Watcher) handleChange(path string) {
	w.inFlightMu.Lock()
	if w.inFlight {
		w.dirty = true
		w.inFlightMu.Unlock()
		return
	}
	w.inFlight = true
	w.inFlightMu.Unlock()

	defer func() {
		w.inFlightMu.Lock()
		w.inFlight = false
		w.inFlightMu.Unlock()
	}()

	for {
		scanlog.Log.Info("watcher: change detected, rescanning", "path", path)
		w.rescan()

		w.inFlightMu.Lock()
		if !w.dirty {
			w.inFlightMu.Unlock()
			return
		}
		w.dirty = false
		w.inFlightMu.Unlock()
	}
}
