// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/duet-tui/internal/model"
	"github.com/jeranaias/duet-tui/internal/ui/styles"
	"github.com/jeranaias/duet-tui/internal/ui/tree"
)

// =============================================================================
// TRANSCRIPT VIEW COMPONENT - Scrollable message history
// =============================================================================

// TranscriptView shows the message history in a scrollable viewport.
// Each rendered message is attached as a MessageBubble child node.
type TranscriptView struct {
	tree.Branch

	viewport      viewport.Model
	transcript    *model.Transcript
	width         int
	height        int
	showTimes     bool
	autoScroll    bool
	theme         *styles.Theme
}

// NewTranscriptView creates an empty transcript view.
func NewTranscriptView(theme *styles.Theme, showTimestamps bool) *TranscriptView {
	vp := viewport.New(80, 20)
	return &TranscriptView{
		viewport:   vp,
		width:      80,
		height:     20,
		showTimes:  showTimestamps,
		autoScroll: true,
		theme:      theme,
	}
}

// SetSize updates the viewport dimensions.
func (tv *TranscriptView) SetSize(width, height int) {
	tv.width = width
	tv.height = height
	tv.viewport.Width = width
	tv.viewport.Height = height
	tv.refresh()
}

// SetTranscript binds a transcript and rebuilds the rendered content.
func (tv *TranscriptView) SetTranscript(t *model.Transcript) {
	tv.transcript = t
	tv.refresh()
}

// Refresh re-renders after the bound transcript changed.
func (tv *TranscriptView) Refresh() {
	tv.refresh()
}

// SetShowTimestamps toggles per-message timestamps and re-renders.
func (tv *TranscriptView) SetShowTimestamps(show bool) {
	tv.showTimes = show
	tv.refresh()
}

// refresh rebuilds bubbles and viewport content from the transcript.
func (tv *TranscriptView) refresh() {
	if tv.transcript == nil {
		tv.viewport.SetContent("")
		return
	}

	// Rebuild bubble children so tree searches see the current messages.
	tv.Branch = tree.Branch{}

	var blocks []string
	for _, msg := range tv.transcript.Messages {
		bubble := NewMessageBubble(msg, tv.transcript.SpeakerName(msg.Speaker), tv.theme)
		bubble.SetWidth(tv.width)
		bubble.ShowTimestamp = tv.showTimes
		tv.Attach(tv, bubble)
		blocks = append(blocks, bubble.View())
	}

	tv.viewport.SetContent(strings.Join(blocks, "\n\n"))
	if tv.autoScroll {
		tv.viewport.GotoBottom()
	}
}

// ScrollToBottom jumps to the newest message and re-enables auto-scroll.
func (tv *TranscriptView) ScrollToBottom() {
	tv.autoScroll = true
	tv.viewport.GotoBottom()
}

// AtBottom reports whether the viewport shows the newest message.
func (tv *TranscriptView) AtBottom() bool {
	return tv.viewport.AtBottom()
}

// Update forwards scroll events to the viewport. Scrolling away from the
// bottom suspends auto-scroll until ScrollToBottom.
func (tv *TranscriptView) Update(msg tea.Msg) (*TranscriptView, tea.Cmd) {
	var cmd tea.Cmd
	tv.viewport, cmd = tv.viewport.Update(msg)
	if !tv.viewport.AtBottom() {
		tv.autoScroll = false
	}
	return tv, cmd
}

// View renders the viewport, or a hint when the transcript is empty.
func (tv *TranscriptView) View() string {
	if tv.transcript == nil || tv.transcript.IsEmpty() {
		hint := tv.theme.InputPlaceholder.Render("No messages yet. Type below and press Enter.")
		return tv.theme.Container.Height(tv.height).Render(hint)
	}
	return tv.viewport.View()
}
