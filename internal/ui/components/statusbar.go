// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/duet-tui/internal/model"
	"github.com/jeranaias/duet-tui/internal/ui/styles"
	"github.com/jeranaias/duet-tui/internal/ui/tree"
)

// =============================================================================
// STATUS BAR COMPONENT - Turn indicator, save state, and shortcuts
// =============================================================================

// StatusBar shows whose turn it is, the message count, and whether the
// transcript has unsaved changes.
type StatusBar struct {
	tree.Branch

	Turn          model.Speaker // Whose turn it is
	TurnName      string        // Display name of the current speaker
	MessageCount  int
	Dirty         bool // Unsaved changes exist
	Width         int
	ShowShortcuts bool
	theme         *styles.Theme
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Turn:          model.SpeakerLeft,
		Width:         80,
		ShowShortcuts: true,
		theme:         theme,
	}
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetTurn updates the turn indicator.
func (s *StatusBar) SetTurn(turn model.Speaker, name string) {
	s.Turn = turn
	s.TurnName = name
}

// View renders the status bar, choosing a layout by width.
func (s *StatusBar) View() string {
	if s.Width < 60 {
		return s.viewNarrow()
	}
	return s.viewWide()
}

// viewNarrow renders a compact bar: turn and save state only.
func (s *StatusBar) viewNarrow() string {
	parts := []string{
		s.turnStyle().Render(s.TurnName),
		s.saveBadge(),
	}
	bar := strings.Join(parts, " ")
	return s.theme.StatusBar.Width(s.Width).Render(bar)
}

// viewWide renders the full bar with message count and shortcuts.
func (s *StatusBar) viewWide() string {
	left := s.turnStyle().Render(s.TurnName+"'s turn") + "  " +
		s.theme.ShortcutDesc.Render(strconv.Itoa(s.MessageCount)+" messages") + "  " +
		s.saveBadge()

	right := ""
	if s.ShowShortcuts {
		right = s.renderShortcuts()
	}

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	bar := left + strings.Repeat(" ", gap) + right
	return s.theme.StatusBar.Width(s.Width).Render(bar)
}

// turnStyle picks the per-speaker accent for the turn indicator.
func (s *StatusBar) turnStyle() lipgloss.Style {
	if s.Turn == model.SpeakerLeft {
		return s.theme.TurnLeft
	}
	return s.theme.TurnRight
}

// saveBadge renders the saved/unsaved indicator.
func (s *StatusBar) saveBadge() string {
	if s.Dirty {
		return s.theme.UnsavedBadge.Render("[unsaved]")
	}
	return s.theme.SavedBadge.Render("[saved]")
}

// renderShortcuts renders the keyboard hint section.
func (s *StatusBar) renderShortcuts() string {
	key := s.theme.ShortcutKey
	desc := s.theme.ShortcutDesc
	shortcuts := []string{
		key.Render("enter") + desc.Render(" send"),
		key.Render("tab") + desc.Render(" switch"),
		key.Render("^s") + desc.Render(" save"),
		key.Render("^c") + desc.Render(" quit"),
	}
	return strings.Join(shortcuts, desc.Render(" | "))
}
