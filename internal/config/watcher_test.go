// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	t.Cleanup(ResetGlobalForTesting)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[speakers]\nleft_name = \"Alice\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	changed := make(chan *Config, 1)
	w, err := NewWatcherForDir(dir, func(cfg *Config) {
		select {
		case changed <- cfg:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewWatcherForDir() error = %v", err)
	}
	defer w.Close()

	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	// Give the watcher a moment to register before writing
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(path, []byte("[speakers]\nleft_name = \"Carol\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-changed:
		if cfg.Speakers.LeftName != "Carol" {
			t.Errorf("reloaded LeftName = %q, want Carol", cfg.Speakers.LeftName)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not fire after config write")
	}
}

func TestWatcherReloadsJSONConfig(t *testing.T) {
	t.Cleanup(ResetGlobalForTesting)

	// JSON-only config dir: no config.toml present.
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"speakers":{"left_name":"Alice"}}`), 0600); err != nil {
		t.Fatal(err)
	}

	changed := make(chan *Config, 1)
	w, err := NewWatcherForDir(dir, func(cfg *Config) {
		select {
		case changed <- cfg:
		default:
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(path, []byte(`{"speakers":{"left_name":"Dana"}}`), 0600); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-changed:
		if cfg.Speakers.LeftName != "Dana" {
			t.Errorf("reloaded LeftName = %q, want Dana", cfg.Speakers.LeftName)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not fire after config.json write")
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	t.Cleanup(ResetGlobalForTesting)

	dir := t.TempDir()
	changed := make(chan *Config, 1)
	w, err := NewWatcherForDir(dir, func(cfg *Config) {
		select {
		case changed <- cfg:
		default:
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
		t.Error("watcher fired for an unrelated file")
	case <-time.After(600 * time.Millisecond):
	}
}

func TestIsConfigFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/home/u/.duet/config.toml", true},
		{"/home/u/.duet/config.json", true},
		{"/home/u/.duet/transcripts/tr_x.json", false},
		{"/home/u/.duet/config.toml.bak", false},
	}
	for _, tt := range tests {
		if got := isConfigFile(tt.path); got != tt.want {
			t.Errorf("isConfigFile(%q) = %t, want %t", tt.path, got, tt.want)
		}
	}
}
