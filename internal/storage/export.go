// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/jeranaias/duet-tui/internal/model"
)

// =============================================================================
// TRANSCRIPT EXPORT
// =============================================================================

// ExportMarkdown renders a transcript as a Markdown document with metadata,
// timestamps, and speaker-labeled messages.
func ExportMarkdown(t *model.Transcript) string {
	var sb strings.Builder
	sb.WriteString("# Conversation " + t.ID + "\n\n")
	sb.WriteString("Between: **" + t.LeftName + "** and **" + t.RightName + "**\n\n")
	sb.WriteString("Created: " + t.CreatedAt.Format(time.RFC3339) + "\n\n")
	sb.WriteString("---\n\n")

	for _, msg := range t.Messages {
		name := t.SpeakerName(msg.Speaker)
		sb.WriteString("**" + name + "** (" + msg.Timestamp.Format("15:04") + "):\n\n")
		sb.WriteString(msg.Content)
		sb.WriteString("\n\n---\n\n")
	}

	return sb.String()
}

// ExportJSON renders a transcript as pretty-printed JSON.
func ExportJSON(t *model.Transcript) ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}

// ExportText renders a transcript as plain text, one "Name: content" line
// per message.
func ExportText(t *model.Transcript) string {
	var sb strings.Builder
	for _, msg := range t.Messages {
		sb.WriteString(t.SpeakerName(msg.Speaker))
		sb.WriteString(": ")
		sb.WriteString(msg.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}
