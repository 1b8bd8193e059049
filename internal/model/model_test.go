// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for transcripts and messages.
package model

import (
	"testing"
)

// =============================================================================
// SPEAKER TESTS
// =============================================================================

func TestSpeakerOther(t *testing.T) {
	if SpeakerLeft.Other() != SpeakerRight {
		t.Error("SpeakerLeft.Other() != SpeakerRight")
	}
	if SpeakerRight.Other() != SpeakerLeft {
		t.Error("SpeakerRight.Other() != SpeakerLeft")
	}
}

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestNewMessage(t *testing.T) {
	msg := NewMessage(SpeakerLeft, "hello")

	if msg.ID == "" {
		t.Error("NewMessage did not generate an ID")
	}
	if msg.Speaker != SpeakerLeft {
		t.Errorf("Speaker = %v, want SpeakerLeft", msg.Speaker)
	}
	if msg.Content != "hello" {
		t.Errorf("Content = %q, want %q", msg.Content, "hello")
	}
	if msg.Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}
}

func TestMessagePreview(t *testing.T) {
	testCases := []struct {
		content  string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"hello world", 8, "hello..."},
		{"日本語のテキスト", 5, "日本..."},
		{"ab", 2, "ab"},
	}

	for _, tc := range testCases {
		msg := NewMessage(SpeakerLeft, tc.content)
		if got := msg.Preview(tc.maxLen); got != tc.expected {
			t.Errorf("Preview(%q, %d) = %q, want %q", tc.content, tc.maxLen, got, tc.expected)
		}
	}
}

// =============================================================================
// TRANSCRIPT TESTS
// =============================================================================

func TestNewTranscript(t *testing.T) {
	tr := NewTranscript("Alice", "Bob")

	if tr.ID == "" {
		t.Error("NewTranscript did not generate an ID")
	}
	if !tr.IsEmpty() {
		t.Error("new transcript is not empty")
	}
	if tr.Current != SpeakerLeft {
		t.Error("new transcript does not start with the left speaker")
	}
	if tr.CurrentName() != "Alice" {
		t.Errorf("CurrentName = %q, want Alice", tr.CurrentName())
	}
}

func TestTranscriptAppend_TogglesSpeaker(t *testing.T) {
	tr := NewTranscript("Alice", "Bob")

	first := tr.Append("hello")
	if first.Speaker != SpeakerLeft {
		t.Errorf("first message speaker = %v, want SpeakerLeft", first.Speaker)
	}
	if tr.Current != SpeakerRight {
		t.Error("Append did not toggle the current speaker")
	}

	second := tr.Append("hi")
	if second.Speaker != SpeakerRight {
		t.Errorf("second message speaker = %v, want SpeakerRight", second.Speaker)
	}
	if tr.Current != SpeakerLeft {
		t.Error("second Append did not toggle back")
	}

	if tr.MessageCount() != 2 {
		t.Errorf("MessageCount = %d, want 2", tr.MessageCount())
	}
}

func TestTranscriptAppendAs_KeepsTurn(t *testing.T) {
	tr := NewTranscript("Alice", "Bob")

	tr.AppendAs(SpeakerRight, "interjection")
	if tr.Current != SpeakerLeft {
		t.Error("AppendAs changed the current speaker")
	}
	last, ok := tr.Last()
	if !ok || last.Speaker != SpeakerRight {
		t.Errorf("Last = (%v, %v), want right-speaker message", last, ok)
	}
}

func TestTranscriptToggle(t *testing.T) {
	tr := NewTranscript("Alice", "Bob")

	if got := tr.Toggle(); got != SpeakerRight {
		t.Errorf("Toggle = %v, want SpeakerRight", got)
	}
	if tr.CurrentName() != "Bob" {
		t.Errorf("CurrentName after toggle = %q, want Bob", tr.CurrentName())
	}
}

func TestTranscriptClear(t *testing.T) {
	tr := NewTranscript("Alice", "Bob")
	tr.Append("one")
	tr.Append("two")

	tr.Clear()
	if !tr.IsEmpty() {
		t.Error("Clear left messages behind")
	}
	if tr.Current != SpeakerLeft {
		t.Error("Clear did not reset the turn to the left speaker")
	}
}

func TestTranscriptLast_Empty(t *testing.T) {
	tr := NewTranscript("Alice", "Bob")
	if _, ok := tr.Last(); ok {
		t.Error("Last on empty transcript reported a message")
	}
	if tr.Preview() != "Empty conversation" {
		t.Errorf("Preview = %q, want placeholder", tr.Preview())
	}
}

func TestTranscriptClone(t *testing.T) {
	tr := NewTranscript("Alice", "Bob")
	tr.Append("original")

	clone := tr.Clone()
	clone.Append("clone only")

	if tr.MessageCount() != 1 {
		t.Errorf("clone mutation leaked: original has %d messages", tr.MessageCount())
	}
	if clone.MessageCount() != 2 {
		t.Errorf("clone MessageCount = %d, want 2", clone.MessageCount())
	}
}

func TestTranscriptPrune(t *testing.T) {
	tr := NewTranscript("Alice", "Bob")
	tr.MaxMessages = 3

	for i := 0; i < 5; i++ {
		tr.Append("msg")
	}

	if tr.MessageCount() != 3 {
		t.Errorf("MessageCount after prune = %d, want 3", tr.MessageCount())
	}
}
