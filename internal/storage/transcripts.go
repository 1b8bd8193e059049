// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides transcript persistence for duet.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jeranaias/duet-tui/internal/model"
	"github.com/jeranaias/duet-tui/internal/util"
)

// =============================================================================
// TRANSCRIPT METADATA
// =============================================================================

// TranscriptMeta summarizes a stored transcript for listing. Building one
// decodes the whole transcript file, since the message count and preview
// derive from the message history; only this summary is retained afterwards.
type TranscriptMeta struct {
	ID           string    `json:"id"`
	LeftName     string    `json:"left_name"`
	RightName    string    `json:"right_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	MessageCount int       `json:"message_count"`
	Preview      string    `json:"preview"` // Last message, truncated
}

// =============================================================================
// TRANSCRIPT STORE
// =============================================================================

// TranscriptStore handles transcript persistence as one JSON file per
// transcript under BaseDir.
type TranscriptStore struct {
	// BaseDir is the directory transcripts are stored in.
	// Default: ~/.duet/transcripts/
	BaseDir string

	// MaxTranscripts limits stored transcripts (0 = unlimited).
	// Oldest transcripts are removed once the limit is exceeded.
	MaxTranscripts int
}

// NewTranscriptStore creates a store rooted at the default directory.
func NewTranscriptStore() (*TranscriptStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewTranscriptStoreWithDir(filepath.Join(homeDir, ".duet", "transcripts"))
}

// NewTranscriptStoreWithDir creates a store with a custom directory.
func NewTranscriptStoreWithDir(baseDir string) (*TranscriptStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}
	return &TranscriptStore{
		BaseDir:        baseDir,
		MaxTranscripts: 100,
	}, nil
}

// =============================================================================
// SAVE OPERATIONS
// =============================================================================

// Save persists a transcript and returns its ID.
func (s *TranscriptStore) Save(t *model.Transcript) (string, error) {
	t.UpdatedAt = time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = t.UpdatedAt
	}

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "", err
	}

	// RELIABILITY: Atomic write with fsync prevents data loss on crash
	if err := util.AtomicWriteFile(s.filePath(t.ID), data, 0644); err != nil {
		return "", err
	}

	if s.MaxTranscripts > 0 {
		s.enforceLimit()
	}

	return t.ID, nil
}

// enforceLimit removes oldest transcripts if over limit.
func (s *TranscriptStore) enforceLimit() {
	metas, err := s.List()
	if err != nil || len(metas) <= s.MaxTranscripts {
		return
	}

	// Oldest first
	sort.Slice(metas, func(i, j int) bool {
		return metas[i].UpdatedAt.Before(metas[j].UpdatedAt)
	})

	excess := len(metas) - s.MaxTranscripts
	for i := 0; i < excess; i++ {
		s.Delete(metas[i].ID)
	}
}

// =============================================================================
// LOAD OPERATIONS
// =============================================================================

// Load retrieves a transcript by ID.
func (s *TranscriptStore) Load(id string) (*model.Transcript, error) {
	data, err := os.ReadFile(s.filePath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrTranscriptNotFound
		}
		return nil, err
	}

	var t model.Transcript
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadByIndex loads a transcript by its index in the list (0 = most recent).
func (s *TranscriptStore) LoadByIndex(index int) (*model.Transcript, error) {
	metas, err := s.List()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(metas) {
		return nil, ErrTranscriptNotFound
	}
	return s.Load(metas[index].ID)
}

// LoadLatest loads the most recently updated transcript.
func (s *TranscriptStore) LoadLatest() (*model.Transcript, error) {
	return s.LoadByIndex(0)
}

// =============================================================================
// LIST OPERATIONS
// =============================================================================

// List returns metadata for all saved transcripts (most recent first).
func (s *TranscriptStore) List() ([]TranscriptMeta, error) {
	entries, err := os.ReadDir(s.BaseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []TranscriptMeta{}, nil
		}
		return nil, err
	}

	var metas []TranscriptMeta
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		id := strings.TrimSuffix(entry.Name(), ".json")
		t, err := s.Load(id)
		if err != nil {
			continue // Skip corrupted files
		}

		metas = append(metas, TranscriptMeta{
			ID:           t.ID,
			LeftName:     t.LeftName,
			RightName:    t.RightName,
			CreatedAt:    t.CreatedAt,
			UpdatedAt:    t.UpdatedAt,
			MessageCount: t.MessageCount(),
			Preview:      t.Preview(),
		})
	}

	// Most recent first
	sort.Slice(metas, func(i, j int) bool {
		return metas[i].UpdatedAt.After(metas[j].UpdatedAt)
	})

	return metas, nil
}

// Search finds transcripts whose speaker names or preview match a query
// string (case-insensitive).
func (s *TranscriptStore) Search(query string) ([]TranscriptMeta, error) {
	all, err := s.List()
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(query)
	var results []TranscriptMeta
	for _, meta := range all {
		if strings.Contains(strings.ToLower(meta.LeftName), query) ||
			strings.Contains(strings.ToLower(meta.RightName), query) ||
			strings.Contains(strings.ToLower(meta.Preview), query) {
			results = append(results, meta)
		}
	}
	return results, nil
}

// SearchMessages searches transcripts by message content.
// Returns transcripts where any message contains the query string
// (case-insensitive). An empty query matches everything.
func (s *TranscriptStore) SearchMessages(query string) ([]TranscriptMeta, error) {
	if query == "" {
		return s.List()
	}

	query = strings.ToLower(query)
	all, err := s.List()
	if err != nil {
		return nil, err
	}

	var results []TranscriptMeta
	for _, meta := range all {
		t, err := s.Load(meta.ID)
		if err != nil {
			continue
		}
		for _, msg := range t.Messages {
			if strings.Contains(strings.ToLower(msg.Content), query) {
				results = append(results, meta)
				break
			}
		}
	}
	return results, nil
}

// =============================================================================
// DELETE OPERATIONS
// =============================================================================

// Delete removes a transcript by ID.
func (s *TranscriptStore) Delete(id string) error {
	if err := os.Remove(s.filePath(id)); err != nil {
		if os.IsNotExist(err) {
			return ErrTranscriptNotFound
		}
		return err
	}
	return nil
}

// Clear removes all saved transcripts.
func (s *TranscriptStore) Clear() error {
	entries, err := os.ReadDir(s.BaseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			os.Remove(filepath.Join(s.BaseDir, entry.Name()))
		}
	}
	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// filePath returns the file path for a transcript ID.
func (s *TranscriptStore) filePath(id string) string {
	return filepath.Join(s.BaseDir, id+".json")
}

// =============================================================================
// ERRORS
// =============================================================================

// ErrTranscriptNotFound is returned when a transcript doesn't exist.
// Use errors.Is(err, ErrTranscriptNotFound) to check for this error.
var ErrTranscriptNotFound = &TranscriptError{Message: "transcript not found"}

// TranscriptError represents a transcript storage error.
// It implements the error interface and can be compared using errors.Is.
type TranscriptError struct {
	Message string
}

// Error implements the error interface.
func (e *TranscriptError) Error() string {
	return e.Message
}

// Is implements errors.Is support for comparing transcript errors.
func (e *TranscriptError) Is(target error) bool {
	t, ok := target.(*TranscriptError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// =============================================================================
// TRANSCRIPT LIST FORMATTING
// =============================================================================

// FormatTranscriptList formats transcript metadata for display in a table.
func FormatTranscriptList(metas []TranscriptMeta) string {
	if len(metas) == 0 {
		return "No transcripts found."
	}

	var sb strings.Builder
	sb.WriteString("Transcripts:\n")
	sb.WriteString("-----------------------------------------------------\n")
	sb.WriteString(util.PadRight("ID", 12) + " " +
		util.PadRight("Created", 20) + " " +
		util.PadRight("Messages", 8) + " Preview\n")
	sb.WriteString("-----------------------------------------------------\n")

	for _, m := range metas {
		idStr := util.TruncateRunesNoEllipsis(m.ID, 12)
		createdStr := m.CreatedAt.Format("2006-01-02 15:04")
		preview := util.TruncateRunes(m.Preview, 30)

		sb.WriteString(util.PadRight(idStr, 12) + " " +
			util.PadRight(createdStr, 20) + " " +
			util.PadRight(strconv.Itoa(m.MessageCount), 8) + " " +
			preview + "\n")
	}
	return sb.String()
}
