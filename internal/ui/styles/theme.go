// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the duet TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ASCIIBorders forces plain ASCII borders everywhere.
	ASCIIBorders bool

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	LeftBubble   lipgloss.Style
	RightBubble  lipgloss.Style
	SpeakerLabel lipgloss.Style
	Timestamp    lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	TurnLeft     lipgloss.Style
	TurnRight    lipgloss.Style
	SavedBadge   lipgloss.Style
	UnsavedBadge lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// ERROR BOX STYLES
	// ==========================================================================

	ErrorBox     lipgloss.Style
	ErrorTitle   lipgloss.Style
	ErrorMessage lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()
	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// NewThemeWithOptions creates a theme with explicit rendering options.
func NewThemeWithOptions(asciiBorders bool) *Theme {
	t := NewTheme()
	t.ASCIIBorders = asciiBorders
	t.initStyles()
	return t
}

// NewThemeFromConfig builds a theme from user preferences.
// mode is "dark", "light", or "auto"; anything else means auto.
func NewThemeFromConfig(mode string, asciiBorders bool) *Theme {
	t := NewThemeWithOptions(asciiBorders)
	switch mode {
	case "dark":
		t.IsDark = true
		lipgloss.SetHasDarkBackground(true)
	case "light":
		t.IsDark = false
		lipgloss.SetHasDarkBackground(false)
	}
	return t
}

// Border returns the box border style, honoring the ASCII preference.
func (t *Theme) Border() lipgloss.Border {
	if t.ASCIIBorders {
		return lipgloss.NormalBorder()
	}
	return lipgloss.RoundedBorder()
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		BorderStyle(t.Border()).
		BorderForeground(Purple).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Message bubbles: the left speaker hangs on the left margin, the
	// right speaker on the right, like most messaging clients.
	t.LeftBubble = lipgloss.NewStyle().
		Foreground(LeftBubbleFg).
		Background(LeftBubbleBg).
		BorderStyle(t.Border()).
		BorderForeground(LeftBubbleBorder).
		Padding(0, 2).
		MarginRight(4)

	t.RightBubble = lipgloss.NewStyle().
		Foreground(RightBubbleFg).
		Background(RightBubbleBg).
		BorderStyle(t.Border()).
		BorderForeground(RightBubbleBorder).
		Padding(0, 2).
		MarginLeft(4)

	t.SpeakerLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderBottom(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.TurnLeft = lipgloss.NewStyle().
		Foreground(LeftBubbleBorder).
		Bold(true)

	t.TurnRight = lipgloss.NewStyle().
		Foreground(RightBubbleBorder).
		Bold(true)

	t.SavedBadge = lipgloss.NewStyle().
		Foreground(Emerald)

	t.UnsavedBadge = lipgloss.NewStyle().
		Foreground(Amber)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Error boxes
	t.ErrorBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(Rose).
		Background(RoseDeep).
		Padding(1, 2)

	t.ErrorTitle = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.ErrorMessage = lipgloss.NewStyle().
		Foreground(TextPrimary)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)

// BubbleFor returns the bubble style for a speaker slot, where left is
// true for the left identity.
func (t *Theme) BubbleFor(left bool) lipgloss.Style {
	if left {
		return t.LeftBubble
	}
	return t.RightBubble
}
