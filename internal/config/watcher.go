// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// watcher.go - Live config reload for duet.
//
// Editing ~/.duet/config.toml while the TUI is running takes effect
// without a restart. The watcher watches the config directory rather
// than the file itself: most editors save via rename, which replaces
// the inode a file-level watch is attached to.

package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces editor write bursts into one reload.
const DefaultDebounce = 250 * time.Millisecond

// Watcher reloads the config when the config file changes on disk.
type Watcher struct {
	watcher  *fsnotify.Watcher
	dir      string
	debounce time.Duration
	onChange func(*Config)

	mu      sync.Mutex
	pending time.Time
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewWatcher creates a watcher that calls onChange with the freshly
// loaded config after each change. The callback runs on the watcher
// goroutine; keep it short or hand off to a channel.
func NewWatcher(onChange func(*Config)) (*Watcher, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	return NewWatcherForDir(dir, onChange)
}

// NewWatcherForDir is NewWatcher with an explicit directory. Tests use this.
func NewWatcherForDir(dir string, onChange func(*Config)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		watcher:  fsw,
		dir:      dir,
		debounce: DefaultDebounce,
		onChange: onChange,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Start begins watching. The config directory must exist.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.dir); err != nil {
		return err
	}

	go w.processEvents()
	go w.processPending()
	return nil
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}

// isConfigFile reports whether the event concerns one of our config files.
func isConfigFile(path string) bool {
	name := filepath.Base(path)
	return name == "config.toml" || name == "config.json"
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isConfigFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.mu.Lock()
			w.pending = time.Now()
			w.mu.Unlock()
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are not fatal; the next poll tick retries
		}
	}
}

// reload re-reads the config with the same TOML-then-JSON fallback
// Load uses, scoped to the watched directory.
func (w *Watcher) reload() (*Config, error) {
	tomlPath := filepath.Join(w.dir, "config.toml")
	if _, err := os.Stat(tomlPath); err == nil {
		return LoadFromPath(tomlPath)
	}
	return LoadFromPath(filepath.Join(w.dir, "config.json"))
}

// processPending fires the reload once events stop arriving for a
// debounce interval.
func (w *Watcher) processPending() {
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.mu.Lock()
			due := !w.pending.IsZero() && time.Since(w.pending) >= w.debounce
			if due {
				w.pending = time.Time{}
			}
			w.mu.Unlock()

			if !due {
				continue
			}

			cfg, err := w.reload()
			if err != nil {
				// Half-written or invalid file; keep the current config
				continue
			}
			SetGlobal(cfg)
			if w.onChange != nil {
				w.onChange(cfg)
			}
		}
	}
}
