// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides transcript persistence for duet.
//
// This package handles saving and loading transcripts to/from disk,
// with support for search, listing, and export.
//
// # Key Types
//
//   - TranscriptStore: Main storage interface for transcripts
//   - TranscriptMeta: Lightweight metadata for listing
//   - TranscriptError: errors.Is-comparable storage error
//
// # Usage
//
// Create a store and save a transcript:
//
//	store, err := storage.NewTranscriptStore()
//	id, err := store.Save(transcript)
//
// List and load transcripts:
//
//	metas, err := store.List()
//	t, err := store.Load(metas[0].ID)
//
// Search transcripts:
//
//	results, err := store.SearchMessages("query text")
//
// # Storage Location
//
// Transcripts are stored in ~/.duet/transcripts/ as JSON files.
package storage
