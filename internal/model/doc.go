// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for transcripts and messages.
//
// This package defines the core domain types for a two-party conversation:
// two fixed speaker identities, the messages they exchange, and the
// transcript that accumulates those messages in order.
//
// # Key Types
//
//   - Speaker: one of the two fixed conversation identities
//   - Message: a single utterance with speaker, content, and timestamp
//   - Transcript: the ordered message history with a current-speaker field
//
// # Usage
//
//	tr := model.NewTranscript("Alice", "Bob")
//	tr.Append("hello there")   // spoken by Alice, speaker toggles to Bob
//	tr.Append("hi yourself")   // spoken by Bob, speaker toggles back
package model
