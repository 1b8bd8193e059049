// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxRunes int
		want     string
	}{
		{"shorter than max", "hello", 10, "hello"},
		{"exactly max", "hello", 5, "hello"},
		{"truncated with ellipsis", "hello world", 8, "hello..."},
		{"zero max", "hello", 0, ""},
		{"negative max", "hello", -1, ""},
		{"tiny max no ellipsis", "hello", 2, "he"},
		{"multibyte runes", "héllo wörld", 8, "héllo..."},
		{"cjk runes counted as one", "日本語のテキスト", 5, "日本..."},
		{"empty string", "", 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateRunes(tt.input, tt.maxRunes)
			if got != tt.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.input, tt.maxRunes, got, tt.want)
			}
		})
	}
}

func TestTruncateRunesNoEllipsis(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxRunes int
		want     string
	}{
		{"no truncation", "abc", 5, "abc"},
		{"truncated", "abcdef", 4, "abcd"},
		{"multibyte", "日本語テキスト", 3, "日本語"},
		{"zero max", "abc", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateRunesNoEllipsis(tt.input, tt.maxRunes)
			if got != tt.want {
				t.Errorf("TruncateRunesNoEllipsis(%q, %d) = %q, want %q", tt.input, tt.maxRunes, got, tt.want)
			}
		})
	}
}

func TestTruncateWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 10, "hello"},
		{"ascii truncated", "hello world", 8, "hello..."},
		{"zero width", "hello", 0, ""},
		// Each CJK character occupies 2 columns.
		{"cjk fits", "日本", 4, "日本"},
		{"cjk truncated", "日本語のテキスト", 7, "日本..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateWidth(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("TruncateWidth(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
			if w := StringWidth(got); w > tt.maxWidth {
				t.Errorf("result width %d exceeds max %d", w, tt.maxWidth)
			}
		})
	}
}

func TestTruncateWidthNoEllipsis(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 10, "hello"},
		{"ascii truncated", "hello", 3, "hel"},
		{"zero width", "hello", 0, ""},
		// Each CJK character occupies 2 columns; an odd budget rounds down.
		{"cjk even budget", "日本語", 4, "日本"},
		{"cjk odd budget", "日本語", 5, "日本"},
		{"cjk too narrow", "日", 1, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateWidthNoEllipsis(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("TruncateWidthNoEllipsis(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
			if w := StringWidth(got); w > tt.maxWidth {
				t.Errorf("result width %d exceeds max %d", w, tt.maxWidth)
			}
		})
	}
}

func TestStringWidth(t *testing.T) {
	if w := StringWidth("hello"); w != 5 {
		t.Errorf("StringWidth(hello) = %d, want 5", w)
	}
	if w := StringWidth("日本"); w != 4 {
		t.Errorf("StringWidth(日本) = %d, want 4", w)
	}
	if w := StringWidth(""); w != 0 {
		t.Errorf("StringWidth(empty) = %d, want 0", w)
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"pads ascii", "ab", 5, "ab   "},
		{"already at width", "abcde", 5, "abcde"},
		{"longer than width", "abcdef", 5, "abcdef"},
		{"pads cjk by columns", "日", 4, "日  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PadRight(tt.input, tt.width)
			if got != tt.want {
				t.Errorf("PadRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestRuneLen(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"hello", 5},
		{"héllo", 5},
		{"日本語", 3},
		{"", 0},
	}
	for _, tt := range tests {
		if got := RuneLen(tt.input); got != tt.want {
			t.Errorf("RuneLen(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	if err := AtomicWriteFile(path, []byte("first"), 0644); err != nil {
		t.Fatalf("AtomicWriteFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "first" {
		t.Errorf("content = %q, want %q", data, "first")
	}

	// Overwrite replaces the full content.
	if err := AtomicWriteFile(path, []byte("second"), 0644); err != nil {
		t.Fatalf("AtomicWriteFile() overwrite error = %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "second" {
		t.Errorf("content after overwrite = %q, want %q", data, "second")
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}

func TestAtomicWriteFileCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "out.txt")

	if err := AtomicWriteFile(path, []byte("nested"), 0600); err != nil {
		t.Fatalf("AtomicWriteFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "nested" {
		t.Errorf("content = %q, want %q", data, "nested")
	}
}
