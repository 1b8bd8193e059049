// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/duet-tui/internal/model"
	"github.com/jeranaias/duet-tui/internal/ui/styles"
	"github.com/jeranaias/duet-tui/internal/ui/tree"
)

// =============================================================================
// MESSAGE BUBBLE COMPONENT - A single speaker-colored message
// =============================================================================

// MessageBubble renders one message in the speaker's colors. Left-speaker
// bubbles hang on the left margin, right-speaker bubbles on the right.
type MessageBubble struct {
	tree.Branch

	Message       model.Message
	SpeakerName   string // Display name of the message's speaker
	Width         int
	ShowTimestamp bool
	theme         *styles.Theme
}

// NewMessageBubble creates a MessageBubble for a message.
func NewMessageBubble(msg model.Message, speakerName string, theme *styles.Theme) *MessageBubble {
	return &MessageBubble{
		Message:     msg,
		SpeakerName: speakerName,
		Width:       80,
		theme:       theme,
	}
}

// SetWidth sets the rendering width.
func (b *MessageBubble) SetWidth(width int) {
	b.Width = width
}

// IsLeft reports whether the message belongs to the left speaker.
func (b *MessageBubble) IsLeft() bool {
	return b.Message.Speaker == model.SpeakerLeft
}

// View renders the labeled bubble.
func (b *MessageBubble) View() string {
	content := b.Message.Content
	if content == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	wrapped := wordWrap(content, maxContentWidth)
	contentWidth := minInt(maxLineWidth(wrapped)+4, b.Width-8)

	bubble := b.theme.BubbleFor(b.IsLeft()).
		Width(contentWidth).
		Render(wrapped)

	label := b.theme.SpeakerLabel.Render(b.SpeakerName)
	if b.ShowTimestamp {
		label += " " + b.theme.Timestamp.Render(b.Message.Timestamp.Format("15:04"))
	}

	block := lipgloss.JoinVertical(b.align(), label, bubble)
	return lipgloss.PlaceHorizontal(b.Width, b.align(), block)
}

// align returns the horizontal position for the speaker's side.
func (b *MessageBubble) align() lipgloss.Position {
	if b.IsLeft() {
		return lipgloss.Left
	}
	return lipgloss.Right
}
