// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for transcripts and messages.
package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultMaxMessages is the default cap on transcript history. When
// exceeded, the oldest messages are pruned to prevent unbounded growth.
const DefaultMaxMessages = 1000

// =============================================================================
// TRANSCRIPT TYPE
// =============================================================================

// Transcript holds the ordered message history of a two-party conversation
// together with the names of the two identities and the speaker whose turn
// it currently is.
type Transcript struct {
	// Identity
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// The two fixed identities
	LeftName  string `json:"left_name"`
	RightName string `json:"right_name"`

	// Messages in order of arrival
	Messages []Message `json:"messages"`

	// Current holds the speaker the next appended message is attributed to.
	Current Speaker `json:"current"`

	// MaxMessages caps history length (0 = DefaultMaxMessages).
	MaxMessages int `json:"-"`
}

// NewTranscript creates an empty transcript for the two named identities.
// The left identity speaks first.
func NewTranscript(leftName, rightName string) *Transcript {
	now := time.Now()
	return &Transcript{
		ID:        "tr_" + uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		LeftName:  leftName,
		RightName: rightName,
		Messages:  make([]Message, 0),
		Current:   SpeakerLeft,
	}
}

// =============================================================================
// SPEAKER MANAGEMENT
// =============================================================================

// SpeakerName returns the display name bound to a speaker slot.
func (t *Transcript) SpeakerName(s Speaker) string {
	if s == SpeakerRight {
		return t.RightName
	}
	return t.LeftName
}

// CurrentName returns the display name of the current speaker.
func (t *Transcript) CurrentName() string {
	return t.SpeakerName(t.Current)
}

// Toggle switches the current speaker to the other identity and returns the
// new current speaker.
func (t *Transcript) Toggle() Speaker {
	t.Current = t.Current.Other()
	return t.Current
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// Append records content as spoken by the current speaker and toggles the
// turn to the other identity. The recorded message is returned.
func (t *Transcript) Append(content string) Message {
	msg := NewMessage(t.Current, content)
	t.Messages = append(t.Messages, msg)
	t.UpdatedAt = msg.Timestamp
	t.Toggle()
	t.prune()
	return msg
}

// AppendAs records content for an explicit speaker without changing whose
// turn it is.
func (t *Transcript) AppendAs(speaker Speaker, content string) Message {
	msg := NewMessage(speaker, content)
	t.Messages = append(t.Messages, msg)
	t.UpdatedAt = msg.Timestamp
	t.prune()
	return msg
}

// Last returns the most recent message and true, or a zero Message and
// false when the transcript is empty.
func (t *Transcript) Last() (Message, bool) {
	if len(t.Messages) == 0 {
		return Message{}, false
	}
	return t.Messages[len(t.Messages)-1], true
}

// MessageCount returns the number of recorded messages.
func (t *Transcript) MessageCount() int {
	return len(t.Messages)
}

// IsEmpty returns true if no messages have been recorded.
func (t *Transcript) IsEmpty() bool {
	return len(t.Messages) == 0
}

// Clear removes all messages and resets the turn to the left identity.
func (t *Transcript) Clear() {
	t.Messages = make([]Message, 0)
	t.Current = SpeakerLeft
	t.UpdatedAt = time.Now()
}

// Clone creates a deep copy of the transcript.
func (t *Transcript) Clone() *Transcript {
	clone := *t
	clone.Messages = make([]Message, len(t.Messages))
	copy(clone.Messages, t.Messages)
	return &clone
}

// Preview returns a short preview of the most recent message, or a fixed
// placeholder for an empty transcript.
func (t *Transcript) Preview() string {
	last, ok := t.Last()
	if !ok {
		return "Empty conversation"
	}
	return last.Preview(80)
}

// maxMessages resolves the effective history cap.
func (t *Transcript) maxMessages() int {
	if t.MaxMessages > 0 {
		return t.MaxMessages
	}
	return DefaultMaxMessages
}

// prune drops the oldest messages once the cap is exceeded.
func (t *Transcript) prune() {
	if limit := t.maxMessages(); len(t.Messages) > limit {
		t.Messages = t.Messages[len(t.Messages)-limit:]
	}
}
