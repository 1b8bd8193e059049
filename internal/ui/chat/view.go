// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the two-party chat page for the TUI.
package chat

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/duet-tui/internal/ui/styles"
)

// View renders the full chat page: header, transcript, input, status bar.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var header string
	if m.theme.GetLayoutMode() == styles.LayoutNarrow {
		header = m.header.ViewCompact()
	} else {
		header = m.header.View()
	}

	sections := []string{
		header,
		m.transcView.View(),
		m.input.View(),
		m.statusLine(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// statusLine renders the status bar, substituting a transient status or
// error message when one is active.
func (m *Model) statusLine() string {
	if m.lastErr != nil {
		return m.theme.StatusBar.Width(m.width).Render(
			styles.RenderError(m.lastErr.Error()))
	}
	if m.statusMsg != "" {
		return m.theme.StatusBar.Width(m.width).Render(
			styles.RenderInfo(m.statusMsg))
	}
	return m.status.View()
}
