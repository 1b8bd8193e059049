// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for transcripts and messages.
package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// SPEAKER TYPE
// =============================================================================

// Speaker identifies which of the two conversation parties said something.
type Speaker int

const (
	// SpeakerLeft is the first of the two fixed identities. A new transcript
	// starts with SpeakerLeft as the current speaker.
	SpeakerLeft Speaker = iota
	// SpeakerRight is the second fixed identity.
	SpeakerRight
)

// String returns the canonical name of the speaker slot.
func (s Speaker) String() string {
	if s == SpeakerRight {
		return "right"
	}
	return "left"
}

// Other returns the opposite speaker.
func (s Speaker) Other() Speaker {
	if s == SpeakerLeft {
		return SpeakerRight
	}
	return SpeakerLeft
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single utterance in the transcript.
type Message struct {
	ID        string    `json:"id"`
	Speaker   Speaker   `json:"speaker"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage creates a message with a generated ID and the current time.
func NewMessage(speaker Speaker, content string) Message {
	return Message{
		ID:        "msg_" + uuid.NewString(),
		Speaker:   speaker,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// IsEmpty returns true if the message has no content.
func (m Message) IsEmpty() bool {
	return len(m.Content) == 0
}

// Preview returns a truncated preview of the message content.
// Uses rune-based truncation to handle Unicode correctly.
func (m Message) Preview(maxLen int) string {
	runes := []rune(m.Content)
	if len(runes) <= maxLen {
		return m.Content
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
