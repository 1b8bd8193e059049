// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/duet-tui/internal/ui/styles"
	"github.com/jeranaias/duet-tui/internal/ui/tree"
	"github.com/jeranaias/duet-tui/internal/util"
)

// =============================================================================
// INPUT BAR COMPONENT - Pending message entry
// =============================================================================

// InputBar holds the pending message being typed. The prompt shows which
// speaker the message will be attributed to.
type InputBar struct {
	tree.Branch

	input    textinput.Model
	speaker  string
	maxChars int
	width    int
	theme    *styles.Theme
}

// NewInputBar creates a focused input bar prompting for the named speaker.
func NewInputBar(theme *styles.Theme, speaker string) *InputBar {
	ti := textinput.New()
	ti.Placeholder = "Type a message..."
	ti.CharLimit = 4096
	ti.Width = 70
	ti.Prompt = speaker + "> "

	ti.PromptStyle = lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)
	ti.TextStyle = lipgloss.NewStyle().
		Foreground(styles.TextPrimary)
	ti.PlaceholderStyle = lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true)
	ti.Cursor.Style = lipgloss.NewStyle().
		Foreground(styles.Cyan)

	return &InputBar{
		input:    ti,
		speaker:  speaker,
		maxChars: 4096,
		width:    80,
		theme:    theme,
	}
}

// Focus focuses the input.
func (i *InputBar) Focus() tea.Cmd {
	return i.input.Focus()
}

// Blur removes focus from the input.
func (i *InputBar) Blur() {
	i.input.Blur()
}

// SetSpeaker updates the prompt to the named speaker.
func (i *InputBar) SetSpeaker(speaker string) {
	i.speaker = speaker
	i.input.Prompt = speaker + "> "
}

// Speaker returns the speaker name currently shown in the prompt.
func (i *InputBar) Speaker() string {
	return i.speaker
}

// SetWidth sets the input bar width.
func (i *InputBar) SetWidth(width int) {
	i.width = width
	inputWidth := width - util.RuneLen(i.input.Prompt) - 10
	if inputWidth < 20 {
		inputWidth = 20
	}
	i.input.Width = inputWidth
}

// Value returns the pending message text.
func (i *InputBar) Value() string {
	return i.input.Value()
}

// SetValue sets the pending message text.
func (i *InputBar) SetValue(value string) {
	i.input.SetValue(value)
}

// Reset clears the pending message.
func (i *InputBar) Reset() {
	i.input.Reset()
}

// Update handles key events.
func (i *InputBar) Update(msg tea.Msg) (*InputBar, tea.Cmd) {
	var cmd tea.Cmd
	i.input, cmd = i.input.Update(msg)
	return i, cmd
}

// View renders the input bar with a character counter.
func (i *InputBar) View() string {
	counter := i.renderCharCounter(util.RuneLen(i.input.Value()))

	line := i.input.View()
	pad := i.width - util.StringWidth(line) - util.StringWidth(counter) - 4
	if pad > 0 {
		line += lipgloss.NewStyle().Width(pad).Render("")
	}
	line += counter

	return i.theme.InputContainer.Width(i.width - 2).Render(line)
}

// renderCharCounter renders the remaining-character display, amber near the
// limit and rose at it.
func (i *InputBar) renderCharCounter(count int) string {
	style := lipgloss.NewStyle().Foreground(styles.TextMuted)
	switch {
	case count >= i.maxChars:
		style = lipgloss.NewStyle().Foreground(styles.Rose).Bold(true)
	case count > i.maxChars*9/10:
		style = lipgloss.NewStyle().Foreground(styles.Amber)
	case count == 0:
		return ""
	}
	return style.Render(" " + strconv.Itoa(count) + "/" + strconv.Itoa(i.maxChars))
}
