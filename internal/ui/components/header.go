// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the duet TUI.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/duet-tui/internal/ui/styles"
	"github.com/jeranaias/duet-tui/internal/ui/tree"
)

// =============================================================================
// HEADER COMPONENT - Title bar naming the two speakers
// =============================================================================

// Header represents the title bar component.
type Header struct {
	tree.Branch

	Title     string // Main title (default: "duet")
	LeftName  string // Left speaker display name
	RightName string // Right speaker display name
	Width     int    // Available width
	theme     *styles.Theme
}

// NewHeader creates a new Header component with default values.
func NewHeader(theme *styles.Theme, leftName, rightName string) *Header {
	return &Header{
		Title:     "duet",
		LeftName:  leftName,
		RightName: rightName,
		Width:     80,
		theme:     theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// View renders the bordered header.
func (h *Header) View() string {
	width := h.Width
	if width < 40 {
		width = 40
	}
	innerWidth := width - 6

	brandStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Cyan)
	accentStyle := lipgloss.NewStyle().
		Foreground(styles.Purple)

	brand := accentStyle.Render("< ") +
		brandStyle.Render(h.Title) +
		accentStyle.Render(" >")

	leftStyle := lipgloss.NewStyle().Foreground(styles.LeftBubbleBorder).Bold(true)
	rightStyle := lipgloss.NewStyle().Foreground(styles.RightBubbleBorder).Bold(true)
	vsStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)

	subtitle := leftStyle.Render(h.LeftName) +
		vsStyle.Render(" <-> ") +
		rightStyle.Render(h.RightName)

	brandLine := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Center).
		Render(brand)

	subtitleLine := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Center).
		Render(subtitle)

	content := lipgloss.JoinVertical(lipgloss.Center, brandLine, subtitleLine)

	headerBox := lipgloss.NewStyle().
		BorderStyle(h.theme.Border()).
		BorderForeground(styles.Purple).
		Background(styles.SurfaceDim).
		Padding(0, 2).
		Width(width)

	return headerBox.Render(content)
}

// ViewCompact renders a single-line header for narrow terminals.
func (h *Header) ViewCompact() string {
	brandStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Cyan)
	accentStyle := lipgloss.NewStyle().
		Foreground(styles.Purple)
	sepStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted)

	return accentStyle.Render("<") +
		brandStyle.Render(h.Title) +
		accentStyle.Render(">") +
		sepStyle.Render(" | ") +
		h.LeftName +
		sepStyle.Render(" <-> ") +
		h.RightName
}
